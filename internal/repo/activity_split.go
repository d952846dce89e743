package repo

import (
	"context"

	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/repo/selector"
)

type ActivitySplit struct {
	DB  *bun.DB
	sel selector.S[model.ActivitySplit]
}

func NewActivitySplit(db *bun.DB) *ActivitySplit {
	return &ActivitySplit{
		DB:  db,
		sel: selector.New[model.ActivitySplit](db),
	}
}

// CreateSplit inserts one lap row. The reconciler hands each lap its own
// commit scope so one bad lap never discards its siblings.
func (r *ActivitySplit) CreateSplit(ctx context.Context, tx bun.IDB, split *model.ActivitySplit) error {
	_, err := tx.NewInsert().
		Model(split).
		Exec(ctx)
	return err
}

func (r *ActivitySplit) GetSplitsBySourceActivityID(ctx context.Context, sourceActivityID int64) ([]*model.ActivitySplit, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("source_activity_id = ?", sourceActivityID).Order("lap_index ASC")
	})
}
