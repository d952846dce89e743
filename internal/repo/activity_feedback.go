package repo

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/repo/selector"
)

type ActivityFeedback struct {
	DB  *bun.DB
	sel selector.S[model.ActivityFeedback]
}

func NewActivityFeedback(db *bun.DB) *ActivityFeedback {
	return &ActivityFeedback{
		DB:  db,
		sel: selector.New[model.ActivityFeedback](db),
	}
}

// SaveFeedback stores the coaching payload for an activity. At most one
// payload exists per activity; a second write is ignored.
func (r *ActivityFeedback) SaveFeedback(ctx context.Context, userID int, sourceActivityID int64, payload json.RawMessage) (*model.ActivityFeedback, error) {
	row := &model.ActivityFeedback{
		UserID:           userID,
		SourceActivityID: sourceActivityID,
		FeedbackData:     payload,
		CreatedAt:        time.Now(),
	}
	_, err := r.DB.NewInsert().
		Model(row).
		On("CONFLICT (source_activity_id) DO NOTHING").
		Returning("feedback_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ActivityFeedback) GetFeedbackBySourceActivityID(ctx context.Context, sourceActivityID int64) (*model.ActivityFeedback, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("source_activity_id = ?", sourceActivityID)
	})
}
