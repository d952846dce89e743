package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/server/svr"
	"striderun.dev/backend/internal/service"
	"striderun.dev/backend/internal/util/rekuest"
)

type Sync struct {
	fx.In

	SyncService *service.Sync
}

func RegisterSync(v1 *svr.V1, c Sync) {
	v1.Post("/sync", c.Sync)
}

func (c Sync) Sync(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	var req types.SyncRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	result, err := c.SyncService.Run(ctx.UserContext(), userID, req.SourceCredentials)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}
