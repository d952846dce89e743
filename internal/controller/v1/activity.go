package v1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"striderun.dev/backend/internal/pkg/apperr"
	"striderun.dev/backend/internal/server/svr"
	"striderun.dev/backend/internal/service"
)

type Activity struct {
	fx.In

	ActivityService *service.Activity
}

func RegisterActivity(v1 *svr.V1, c Activity) {
	activities := v1.Group("/activities")
	activities.Get("", c.GetActivities)
	// static segment must register ahead of the :activityId wildcard
	activities.Get("/laps", c.GetActivityLapsWithComments)
	activities.Get("/:activityId", c.GetActivity)
}

func (c Activity) GetActivities(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	activities, err := c.ActivityService.GetActivities(ctx.UserContext(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(activities)
}

func (c Activity) GetActivity(ctx *fiber.Ctx) error {
	sourceActivityID, err := strconv.ParseInt(ctx.Params("activityId"), 10, 64)
	if err != nil {
		return apperr.ErrInvalidReq.Msg("invalid activityId")
	}

	activity, err := c.ActivityService.GetActivity(ctx.UserContext(), sourceActivityID)
	if err != nil {
		return err
	}

	return ctx.JSON(activity)
}

func (c Activity) GetActivityLapsWithComments(ctx *fiber.Ctx) error {
	userID, err := requestUserID(ctx)
	if err != nil {
		return err
	}

	details, err := c.ActivityService.GetActivityLapsWithComments(ctx.UserContext(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(details)
}
