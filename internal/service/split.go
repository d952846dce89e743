package service

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/observability"
	"striderun.dev/backend/internal/repo"
)

// txRunner is the commit-scope surface of *bun.DB the services need.
type txRunner interface {
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
}

// SplitStore is the lap persistence surface used by the reconciler.
type SplitStore interface {
	CreateSplit(ctx context.Context, tx bun.IDB, split *model.ActivitySplit) error
	GetSplitsBySourceActivityID(ctx context.Context, sourceActivityID int64) ([]*model.ActivitySplit, error)
}

type SplitReconciler struct {
	db     txRunner
	splits SplitStore
	tf     *Transformer
}

func NewSplitReconciler(db *bun.DB, splitRepo *repo.ActivitySplit, transformer *Transformer) *SplitReconciler {
	return &SplitReconciler{
		db:     db,
		splits: splitRepo,
		tf:     transformer,
	}
}

// Reconcile persists the laps of one freshly synced activity. Each lap commits
// in its own scope: a lap that fails to transform or insert is logged and
// skipped, and the remaining laps still land. Returns the persisted count.
func (s *SplitReconciler) Reconcile(ctx context.Context, src *types.SourceSplits) int {
	persisted := 0
	for i := range src.LapDTOs {
		lap := &src.LapDTOs[i]

		split, err := s.tf.Split(src.ActivityID, lap)
		if err != nil {
			observability.SyncLaps.WithLabelValues("malformed").Inc()
			log.Warn().
				Err(err).
				Int64("sourceActivityId", src.ActivityID).
				Int("lapIndex", lap.LapIndex).
				Msg("skipping malformed lap")
			continue
		}

		err = s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			return s.splits.CreateSplit(ctx, tx, split)
		})
		if err != nil {
			observability.SyncLaps.WithLabelValues("failed").Inc()
			log.Error().
				Err(err).
				Int64("sourceActivityId", src.ActivityID).
				Int("lapIndex", lap.LapIndex).
				Msg("failed to persist lap")
			continue
		}

		observability.SyncLaps.WithLabelValues("persisted").Inc()
		persisted++
	}
	return persisted
}
