package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/app/appconfig"
	"striderun.dev/backend/internal/client/garmin"
	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
)

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, _ *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

type fakeActivityStore struct {
	existing map[int64]bool
	created  []*model.Activity
	failOn   map[int64]error
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{
		existing: map[int64]bool{},
		failOn:   map[int64]error{},
	}
}

func (s *fakeActivityStore) CreateActivity(_ context.Context, _ bun.IDB, activity *model.Activity) error {
	if err := s.failOn[activity.SourceActivityID]; err != nil {
		return err
	}
	s.existing[activity.SourceActivityID] = true
	s.created = append(s.created, activity)
	return nil
}

func (s *fakeActivityStore) ExistsByUserAndSourceID(_ context.Context, _ int, sourceActivityID int64) (bool, error) {
	return s.existing[sourceActivityID], nil
}

type fakeReconciler struct {
	calls []int64
}

func (r *fakeReconciler) Reconcile(_ context.Context, src *types.SourceSplits) int {
	r.calls = append(r.calls, src.ActivityID)
	return len(src.LapDTOs)
}

type fakeClient struct {
	loginErr error
	listErr  error

	activities []types.SourceActivity
	splits     map[int64]*types.SourceSplits
	splitsErr  map[int64]error
}

func (c *fakeClient) Login(context.Context) error {
	return c.loginErr
}

func (c *fakeClient) GetActivities(context.Context, int, int) ([]types.SourceActivity, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.activities, nil
}

func (c *fakeClient) GetActivitySplits(_ context.Context, activityID int64) (*types.SourceSplits, error) {
	if err := c.splitsErr[activityID]; err != nil {
		return nil, err
	}
	return c.splits[activityID], nil
}

func newTestSync(store *fakeActivityStore, rec *fakeReconciler, client garmin.Client) *Sync {
	return &Sync{
		db:         fakeTxRunner{},
		activities: store,
		laps:       rec,
		tf:         NewTransformer(),
		factory:    func(types.SourceCredentials) garmin.Client { return client },
		conf: &appconfig.Config{
			ConfigSpec: appconfig.ConfigSpec{SyncRunTimeout: time.Minute},
		},
	}
}

func sourceActivity(id int64) types.SourceActivity {
	return types.SourceActivity{
		ActivityID:     id,
		ActivityName:   "Run",
		StartTimeLocal: "2026-03-01 08:00:00.0",
		StartTimeGMT:   "2026-03-01 07:00:00.0",
		EndTimeGMT:     "2026-03-01 07:30:00.0",
	}
}

func TestSyncRunIdempotence(t *testing.T) {
	store := newFakeActivityStore()
	rec := &fakeReconciler{}
	s := newTestSync(store, rec, &fakeClient{
		activities: []types.SourceActivity{sourceActivity(111), sourceActivity(222)},
	})

	first, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.NoError(t, err)
	assert.Equal(t, 2, first.SyncedCount)
	assert.Equal(t, 2, first.TotalActivities)

	// unchanged vendor feed: everything dedups away
	second, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.SyncedCount)
	assert.Equal(t, 2, second.TotalActivities)
	assert.Len(t, store.created, 2)
}

func TestSyncSkipsMalformedRecord(t *testing.T) {
	malformed := sourceActivity(222)
	malformed.StartTimeLocal = "not-a-timestamp"

	store := newFakeActivityStore()
	s := newTestSync(store, &fakeReconciler{}, &fakeClient{
		activities: []types.SourceActivity{sourceActivity(111), malformed, sourceActivity(333)},
	})

	result, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 3, result.TotalActivities)
	assert.False(t, store.existing[222])
}

func TestSyncAuthFailureIsFatal(t *testing.T) {
	store := newFakeActivityStore()
	s := newTestSync(store, &fakeReconciler{}, &fakeClient{
		loginErr:   apperr.ErrVendorAuth,
		activities: []types.SourceActivity{sourceActivity(111)},
	})

	_, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrVendorAuth))
	assert.Empty(t, store.created)
}

func TestSyncListFailureIsFatal(t *testing.T) {
	store := newFakeActivityStore()
	s := newTestSync(store, &fakeReconciler{}, &fakeClient{
		listErr: apperr.ErrVendorFetch,
	})

	_, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrVendorFetch))
	assert.Empty(t, store.created)
}

func TestSyncPersistFailureIsIsolated(t *testing.T) {
	store := newFakeActivityStore()
	store.failOn[222] = errors.New("constraint violation")

	s := newTestSync(store, &fakeReconciler{}, &fakeClient{
		activities: []types.SourceActivity{sourceActivity(111), sourceActivity(222), sourceActivity(333)},
	})

	result, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 3, result.TotalActivities)
}

func TestSyncReconcilesLapsPerActivity(t *testing.T) {
	store := newFakeActivityStore()
	rec := &fakeReconciler{}
	s := newTestSync(store, rec, &fakeClient{
		activities: []types.SourceActivity{sourceActivity(111), sourceActivity(222)},
		splits: map[int64]*types.SourceSplits{
			111: {ActivityID: 111, LapDTOs: []types.SourceLap{{LapIndex: 1, StartTimeGMT: "2026-03-01 07:00:00"}}},
		},
	})

	_, err := s.Run(context.Background(), 42, types.SourceCredentials{})
	require.NoError(t, err)
	// activity 222 has no lap payload, so only 111 reaches the reconciler
	assert.Equal(t, []int64{111}, rec.calls)
}
