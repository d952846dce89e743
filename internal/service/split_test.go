package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
)

type fakeSplitStore struct {
	created     []*model.ActivitySplit
	failOnIndex map[int]error
}

func (s *fakeSplitStore) CreateSplit(_ context.Context, _ bun.IDB, split *model.ActivitySplit) error {
	if err := s.failOnIndex[split.LapIndex]; err != nil {
		return err
	}
	s.created = append(s.created, split)
	return nil
}

func (s *fakeSplitStore) GetSplitsBySourceActivityID(context.Context, int64) ([]*model.ActivitySplit, error) {
	return s.created, nil
}

func sourceLap(index int) types.SourceLap {
	return types.SourceLap{
		LapIndex:     index,
		StartTimeGMT: "2026-03-01T07:00:00.0",
	}
}

func TestSplitReconcilerFaultIsolation(t *testing.T) {
	store := &fakeSplitStore{
		failOnIndex: map[int]error{2: errors.New("insert failed")},
	}
	rec := &SplitReconciler{
		db:     fakeTxRunner{},
		splits: store,
		tf:     NewTransformer(),
	}

	persisted := rec.Reconcile(context.Background(), &types.SourceSplits{
		ActivityID: 111,
		LapDTOs:    []types.SourceLap{sourceLap(1), sourceLap(2), sourceLap(3)},
	})

	// the failing middle lap is skipped, its neighbors still land
	assert.Equal(t, 2, persisted)
	assert.Len(t, store.created, 2)
	assert.Equal(t, 1, store.created[0].LapIndex)
	assert.Equal(t, 3, store.created[1].LapIndex)
}

func TestSplitReconcilerSkipsMalformedLap(t *testing.T) {
	store := &fakeSplitStore{failOnIndex: map[int]error{}}
	rec := &SplitReconciler{
		db:     fakeTxRunner{},
		splits: store,
		tf:     NewTransformer(),
	}

	bad := sourceLap(2)
	bad.StartTimeGMT = "garbage"

	persisted := rec.Reconcile(context.Background(), &types.SourceSplits{
		ActivityID: 111,
		LapDTOs:    []types.SourceLap{sourceLap(1), bad},
	})

	assert.Equal(t, 1, persisted)
	assert.Len(t, store.created, 1)
}
