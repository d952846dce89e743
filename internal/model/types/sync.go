package types

// SourceCredentials are the vendor platform credentials for one sync run.
// They are forwarded to the vendor login endpoint and never persisted.
type SourceCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SyncRequest is the inbound body of POST /api/v1/sync.
type SyncRequest struct {
	SourceCredentials
}

// SyncResult summarizes one sync run. SyncedCount counts newly persisted
// activities; TotalActivities counts everything the vendor returned,
// duplicates and skipped records included.
type SyncResult struct {
	Message         string `json:"message"`
	SyncedCount     int    `json:"syncedCount"`
	TotalActivities int    `json:"totalActivities"`
}

// CreateCommentRequest is the inbound body of POST /api/v1/comments.
type CreateCommentRequest struct {
	ActivityID int64  `json:"activityId" validate:"required"`
	Comment    string `json:"comment" validate:"required,max=2000"`
}

// SaveFeedbackRequest stores one opaque coaching payload for an activity.
type SaveFeedbackRequest struct {
	ActivityID   int64  `json:"activityId" validate:"required"`
	FeedbackData string `json:"feedbackData" validate:"required"`
}
