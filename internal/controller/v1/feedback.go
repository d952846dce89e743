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

type Feedback struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterFeedback(v1 *svr.V1, c Feedback) {
	feedback := v1.Group("/feedback")
	feedback.Post("", c.SaveFeedback)
	feedback.Get("/:activityId", c.GetFeedback)
}

func (c Feedback) SaveFeedback(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	var req types.SaveFeedbackRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	feedback, err := c.ActivityService.SaveFeedback(ctx.UserContext(), userID, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(feedback)
}

func (c Feedback) GetFeedback(ctx *fiber.Ctx) error {
	sourceActivityID, err := strconv.ParseInt(ctx.Params("activityId"), 10, 64)
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid activityId")
	}

	feedback, err := c.ActivityService.GetFeedback(ctx.UserContext(), sourceActivityID)
	if err != nil {
		return err
	}

	return ctx.JSON(feedback)
}
