package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/dchest/uniuri"
	"github.com/go-redsync/redsync/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"golang.org/x/sync/singleflight"

	"striderun.dev/backend/internal/app/appconfig"
	"striderun.dev/backend/internal/client/garmin"
	"striderun.dev/backend/internal/constant"
	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/observability"
	"striderun.dev/backend/internal/repo"
)

// ActivityStore is the activity persistence surface used by the orchestrator.
type ActivityStore interface {
	CreateActivity(ctx context.Context, tx bun.IDB, activity *model.Activity) error
	ExistsByUserAndSourceID(ctx context.Context, userID int, sourceActivityID int64) (bool, error)
}

type lapReconciler interface {
	Reconcile(ctx context.Context, src *types.SourceSplits) int
}

// Sync drives one end-to-end sync run against the vendor platform. Runs for
// the same user are serialized: singleflight collapses concurrent in-process
// calls onto one run, and a redis mutex guards against other instances. The
// dedup read-then-insert is not atomic, so two unserialized runs could both
// pass the existence check for the same record.
type Sync struct {
	db         txRunner
	activities ActivityStore
	laps       lapReconciler
	tf         *Transformer
	factory    garmin.Factory
	rs         *redsync.Redsync
	conf       *appconfig.Config

	sf singleflight.Group
}

func NewSync(db *bun.DB, activityRepo *repo.Activity, reconciler *SplitReconciler, transformer *Transformer, factory garmin.Factory, rs *redsync.Redsync, conf *appconfig.Config) *Sync {
	return &Sync{
		db:         db,
		activities: activityRepo,
		laps:       reconciler,
		tf:         transformer,
		factory:    factory,
		rs:         rs,
		conf:       conf,
	}
}

// Run syncs recent vendor activities for one user and reports how many new
// records landed. Safe to re-run: an unchanged vendor feed yields a zero
// SyncedCount.
func (s *Sync) Run(ctx context.Context, userID int, creds types.SourceCredentials) (*types.SyncResult, error) {
	result, err, _ := s.sf.Do(strconv.Itoa(userID), func() (any, error) {
		return s.run(ctx, userID, creds)
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.SyncResult), nil
}

func (s *Sync) run(ctx context.Context, userID int, creds types.SourceCredentials) (*types.SyncResult, error) {
	l := log.With().
		Str("runId", uniuri.NewLen(8)).
		Int("userId", userID).
		Logger()

	if s.rs != nil {
		mutex := s.rs.NewMutex(
			constant.SyncMutexPrefix+strconv.Itoa(userID),
			redsync.WithExpiry(constant.SyncMutexExpiry),
		)
		if err := mutex.LockContext(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to acquire the per-user sync mutex")
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				l.Warn().Err(err).Msg("failed to release the per-user sync mutex")
			}
		}()
	}

	ctx, cancel := context.WithTimeout(ctx, s.conf.SyncRunTimeout)
	defer cancel()

	timer := prometheus.NewTimer(observability.SyncRunDuration.WithLabelValues())
	defer timer.ObserveDuration()

	client := s.factory(creds)
	if err := client.Login(ctx); err != nil {
		l.Warn().Err(err).Msg("vendor login failed")
		return nil, err
	}

	activities, err := client.GetActivities(ctx, 0, constant.SyncPageSize)
	if err != nil {
		l.Error().Err(err).Msg("vendor activity listing failed")
		return nil, err
	}

	synced := 0
	for i := range activities {
		raw := &activities[i]

		exists, err := s.activities.ExistsByUserAndSourceID(ctx, userID, raw.ActivityID)
		if err != nil {
			return nil, errors.Wrap(err, "dedup lookup failed")
		}
		if exists {
			observability.SyncRecords.WithLabelValues("duplicate").Inc()
			continue
		}

		activity, err := s.tf.Activity(userID, raw)
		if err != nil {
			observability.SyncRecords.WithLabelValues("malformed").Inc()
			l.Warn().
				Err(err).
				Int64("sourceActivityId", raw.ActivityID).
				Str("record", spew.Sdump(raw)).
				Msg("skipping malformed activity record")
			continue
		}

		err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return s.activities.CreateActivity(ctx, tx, activity)
		})
		if err != nil {
			// a row that raced past the dedup check is still a duplicate,
			// not a failure
			if repo.IsUniqueViolation(err) {
				observability.SyncRecords.WithLabelValues("duplicate").Inc()
				continue
			}
			observability.SyncRecords.WithLabelValues("failed").Inc()
			l.Error().
				Err(err).
				Int64("sourceActivityId", raw.ActivityID).
				Msg("failed to persist activity")
			continue
		}

		observability.SyncRecords.WithLabelValues("synced").Inc()
		synced++

		splits, err := client.GetActivitySplits(ctx, raw.ActivityID)
		if err != nil {
			l.Error().
				Err(err).
				Int64("sourceActivityId", raw.ActivityID).
				Msg("vendor lap fetch failed")
			return nil, err
		}
		if splits != nil && len(splits.LapDTOs) > 0 {
			s.laps.Reconcile(ctx, splits)
		}
	}

	l.Info().
		Int("syncedCount", synced).
		Int("totalActivities", len(activities)).
		Msg("sync run finished")

	return &types.SyncResult{
		Message:         fmt.Sprintf("synced %d of %d activities", synced, len(activities)),
		SyncedCount:     synced,
		TotalActivities: len(activities),
	}, nil
}
