package model

import (
	"time"

	"github.com/uptrace/bun"
)

// ActivityComment is a free-text note attached to an activity.
// Create and delete only; comments are never updated.
type ActivityComment struct {
	bun.BaseModel `bun:"activity_comments,alias:cmt"`

	CommentID        int       `bun:",pk,autoincrement" json:"id"`
	SourceActivityID int64     `bun:"source_activity_id" json:"activityId"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"createdAt"`
}
