package repo

import (
	"context"

	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/repo/selector"
)

type Activity struct {
	DB  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{
		DB:  db,
		sel: selector.New[model.Activity](db),
	}
}

// CreateActivity inserts one activity within the given commit scope. The
// caller owns the transaction; each activity of a sync run is persisted in
// its own scope so a failure late in a batch keeps earlier inserts.
func (r *Activity) CreateActivity(ctx context.Context, tx bun.IDB, activity *model.Activity) error {
	_, err := tx.NewInsert().
		Model(activity).
		Returning("activity_id").
		Exec(ctx)
	return err
}

// ExistsByUserAndSourceID is the dedup lookup on (user_id, source_activity_id).
// It must run before every insert attempt; a unique-constraint violation is
// not control flow here.
func (r *Activity) ExistsByUserAndSourceID(ctx context.Context, userID int, sourceActivityID int64) (bool, error) {
	exists, err := r.DB.NewSelect().
		Model((*model.Activity)(nil)).
		Where("user_id = ?", userID).
		Where("source_activity_id = ?", sourceActivityID).
		Exists(ctx)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *Activity) GetActivitiesByUserID(ctx context.Context, userID int) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID)
	})
}

// GetActivitiesByUserIDNewestFirst is the display ordering used by the
// laps-with-comments join.
func (r *Activity) GetActivitiesByUserIDNewestFirst(ctx context.Context, userID int) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("user_id = ?", userID).Order("start_time_local DESC")
	})
}

func (r *Activity) GetActivityBySourceID(ctx context.Context, sourceActivityID int64) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("source_activity_id = ?", sourceActivityID)
	})
}
