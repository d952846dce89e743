package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/pkg/apperr"
	"striderun.dev/backend/internal/repo/selector"
)

type ActivityComment struct {
	DB  *bun.DB
	sel selector.S[model.ActivityComment]
}

func NewActivityComment(db *bun.DB) *ActivityComment {
	return &ActivityComment{
		DB:  db,
		sel: selector.New[model.ActivityComment](db),
	}
}

func (r *ActivityComment) CreateComment(ctx context.Context, sourceActivityID int64, comment string) (*model.ActivityComment, error) {
	row := &model.ActivityComment{
		SourceActivityID: sourceActivityID,
		Comment:          comment,
		CreatedAt:        time.Now(),
	}
	_, err := r.DB.NewInsert().
		Model(row).
		Returning("comment_id").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ActivityComment) DeleteComment(ctx context.Context, commentID int) error {
	res, err := r.DB.NewDelete().
		Model((*model.ActivityComment)(nil)).
		Where("comment_id = ?", commentID).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *ActivityComment) GetCommentsBySourceActivityID(ctx context.Context, sourceActivityID int64) ([]*model.ActivityComment, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("source_activity_id = ?", sourceActivityID).Order("created_at ASC")
	})
}
