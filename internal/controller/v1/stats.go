package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"striderun.dev/backend/internal/server/svr"
	"striderun.dev/backend/internal/service"
)

type Stats struct {
	fx.In

	StatsService *service.Stats
}

func RegisterStats(v1 *svr.V1, c Stats) {
	stats := v1.Group("/stats")
	stats.Get("/summary", c.Summary)
	stats.Get("/monthly", c.Monthly)
}

func (c Stats) Summary(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	summary, err := c.StatsService.Summary(ctx.UserContext(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(summary)
}

func (c Stats) Monthly(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	monthly, err := c.StatsService.Monthly(ctx.UserContext(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(monthly)
}
