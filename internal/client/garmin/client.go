// Package garmin talks to the vendor Connect API. Only the three calls the
// sync pipeline needs are exposed; session-token mechanics stay behind the
// Client interface.
package garmin

import (
	"context"

	"striderun.dev/backend/internal/model/types"
)

// Client is one authenticated session against the vendor platform.
type Client interface {
	// Login authenticates the session. Nothing else works before it.
	Login(ctx context.Context) error

	// GetActivities lists recent activities, newest first, bounded by limit.
	GetActivities(ctx context.Context, start, limit int) ([]types.SourceActivity, error)

	// GetActivitySplits fetches the lap detail of one activity.
	GetActivitySplits(ctx context.Context, activityID int64) (*types.SourceSplits, error)
}

// Factory builds a Client for one user's credentials. The sync service gets
// the factory injected so tests can substitute a fake vendor.
type Factory func(creds types.SourceCredentials) Client
