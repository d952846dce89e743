package service

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
	"striderun.dev/backend/internal/repo"
	"striderun.dev/backend/internal/util"
)

// Activity serves the read side of the synced data set plus the comment and
// feedback attachments owned by the display layer.
type Activity struct {
	ActivityRepo *repo.Activity
	SplitRepo    *repo.ActivitySplit
	CommentRepo  *repo.ActivityComment
	FeedbackRepo *repo.ActivityFeedback
}

func NewActivityService(activityRepo *repo.Activity, splitRepo *repo.ActivitySplit, commentRepo *repo.ActivityComment, feedbackRepo *repo.ActivityFeedback) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
		SplitRepo:    splitRepo,
		CommentRepo:  commentRepo,
		FeedbackRepo: feedbackRepo,
	}
}

func (s *Activity) GetActivities(ctx context.Context, userID int) ([]*model.Activity, error) {
	return s.ActivityRepo.GetActivitiesByUserID(ctx, userID)
}

func (s *Activity) GetActivity(ctx context.Context, sourceActivityID int64) (*model.Activity, error) {
	return s.ActivityRepo.GetActivityBySourceID(ctx, sourceActivityID)
}

// GetActivityLapsWithComments is the display join: every activity of the user
// (newest first) with its formatted laps, comments and coaching feedback.
// Formatting only; no aggregation beyond unit conversion happens here.
func (s *Activity) GetActivityLapsWithComments(ctx context.Context, userID int) ([]*types.ActivityDetail, error) {
	activities, err := s.ActivityRepo.GetActivitiesByUserIDNewestFirst(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]*types.ActivityDetail, 0, len(activities))
	for _, activity := range activities {
		splits, err := s.SplitRepo.GetSplitsBySourceActivityID(ctx, activity.SourceActivityID)
		if err != nil {
			return nil, err
		}

		comments, err := s.CommentRepo.GetCommentsBySourceActivityID(ctx, activity.SourceActivityID)
		if err != nil {
			return nil, err
		}

		detail := &types.ActivityDetail{
			ID:             activity.ActivityID,
			ActivityID:     activity.SourceActivityID,
			ActivityName:   activity.ActivityName,
			LocalStartTime: activity.StartTimeLocal,
			Distance:       util.MetersToKm(activity.Distance.ValueOrZero()),
			Duration:       util.FormatDuration(activity.Duration.ValueOrZero()),
			AverageSpeed:   util.RoundTo2(util.MsToKmh(activity.AverageSpeed.ValueOrZero())),
			MaxSpeed:       util.RoundTo2(util.MsToKmh(activity.MaxSpeed.ValueOrZero())),
			AveragePace:    util.SpeedToPace(util.MsToKmh(activity.AverageSpeed.ValueOrZero())),
			MaxPace:        util.SpeedToPace(util.MsToKmh(activity.MaxSpeed.ValueOrZero())),
			AverageCadence: activity.AverageCadence,
			AverageHR:      activity.AverageHR,
			MaxHR:          activity.MaxHR,
			Laps:           lo.Map(splits, func(sp *model.ActivitySplit, _ int) types.LapView { return lapView(sp) }),
			Comments:       lo.Map(comments, func(c *model.ActivityComment, _ int) types.CommentView { return commentView(c) }),
		}

		feedback, err := s.FeedbackRepo.GetFeedbackBySourceActivityID(ctx, activity.SourceActivityID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		if feedback != nil {
			detail.Feedback = feedback.FeedbackData
		}

		details = append(details, detail)
	}
	return details, nil
}

func (s *Activity) CreateComment(ctx context.Context, req *types.CreateCommentRequest) (*types.CommentView, error) {
	comment, err := s.CommentRepo.CreateComment(ctx, req.ActivityID, req.Comment)
	if err != nil {
		return nil, err
	}
	view := commentView(comment)
	return &view, nil
}

func (s *Activity) DeleteComment(ctx context.Context, commentID int) error {
	return s.CommentRepo.DeleteComment(ctx, commentID)
}

func (s *Activity) SaveFeedback(ctx context.Context, userID int, req *types.SaveFeedbackRequest) (*model.ActivityFeedback, error) {
	return s.FeedbackRepo.SaveFeedback(ctx, userID, req.ActivityID, json.RawMessage(req.FeedbackData))
}

func (s *Activity) GetFeedback(ctx context.Context, sourceActivityID int64) (*model.ActivityFeedback, error) {
	return s.FeedbackRepo.GetFeedbackBySourceActivityID(ctx, sourceActivityID)
}

func lapView(sp *model.ActivitySplit) types.LapView {
	return types.LapView{
		LapIndex:          sp.LapIndex,
		Distance:          util.MetersToKm(sp.Distance.ValueOrZero()),
		Duration:          util.FormatDuration(sp.Duration.ValueOrZero()),
		AverageSpeed:      util.RoundTo2(util.MsToKmh(sp.AverageSpeed.ValueOrZero())),
		MaxSpeed:          util.RoundTo2(util.MsToKmh(sp.MaxSpeed.ValueOrZero())),
		AveragePace:       util.SpeedToPace(util.MsToKmh(sp.AverageSpeed.ValueOrZero())),
		MaxPace:           util.SpeedToPace(util.MsToKmh(sp.MaxSpeed.ValueOrZero())),
		AverageHR:         sp.AverageHR,
		MaxHR:             sp.MaxHR,
		AverageRunCadence: sp.AverageRunCadence,
	}
}

func commentView(c *model.ActivityComment) types.CommentView {
	return types.CommentView{
		ID:        c.CommentID,
		Comment:   c.Comment,
		CreatedAt: c.CreatedAt,
	}
}
