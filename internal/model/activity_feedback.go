package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
)

// ActivityFeedback is the coaching payload produced by the external coaching
// collaborator, at most one per activity. Stored opaquely; this engine only
// writes it once and reads it back for display.
type ActivityFeedback struct {
	bun.BaseModel `bun:"activity_feedbacks,alias:fb"`

	FeedbackID       int             `bun:",pk,autoincrement" json:"id"`
	UserID           int             `bun:"user_id" json:"userId"`
	SourceActivityID int64           `bun:"source_activity_id" json:"activityId"`
	FeedbackData     json.RawMessage `bun:"feedback_data,type:jsonb" json:"feedbackData"`
	CreatedAt        time.Time       `json:"createdAt"`
}
