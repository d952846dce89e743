package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
	"striderun.dev/backend/internal/server/svr"
	"striderun.dev/backend/internal/service"
	"striderun.dev/backend/internal/util/rekuest"
)

type Comment struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterComment(v1 *svr.V1, c Comment) {
	comments := v1.Group("/comments")
	comments.Post("", c.CreateComment)
	comments.Delete("/:commentId", c.DeleteComment)
}

func (c Comment) CreateComment(ctx *fiber.Ctx) error {
	var req types.CreateCommentRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	comment, err := c.ActivityService.CreateComment(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(comment)
}

func (c Comment) DeleteComment(ctx *fiber.Ctx) error {
	commentID, err := strconv.Atoi(ctx.Params("commentId"))
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid commentId")
	}

	if err := c.ActivityService.DeleteComment(ctx.UserContext(), commentID); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
