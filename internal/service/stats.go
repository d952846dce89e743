package service

import (
	"context"

	"github.com/samber/lo"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/repo"
	"striderun.dev/backend/internal/util"
)

// sentinelPace is reported when a bucket has nothing to average over.
const sentinelPace = "00:00"

// Stats computes lifetime and monthly training aggregates from persisted
// activities. Aggregation is read-only and independent of the sync pipeline.
type Stats struct {
	ActivityRepo *repo.Activity
}

func NewStats(activityRepo *repo.Activity) *Stats {
	return &Stats{ActivityRepo: activityRepo}
}

func (s *Stats) Summary(ctx context.Context, userID int) (*types.ActivitySummary, error) {
	activities, err := s.ActivityRepo.GetActivitiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(activities), nil
}

// Monthly groups activities by the calendar month of their local start time
// and applies the lifetime formulas per bucket.
func (s *Stats) Monthly(ctx context.Context, userID int) (map[string]types.MonthlySummary, error) {
	activities, err := s.ActivityRepo.GetActivitiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarizeMonthly(activities), nil
}

func summarize(activities []*model.Activity) *types.ActivitySummary {
	distanceMeters := lo.SumBy(activities, func(a *model.Activity) float64 {
		return a.Distance.ValueOrZero()
	})
	durationSeconds := lo.SumBy(activities, func(a *model.Activity) float64 {
		return a.Duration.ValueOrZero()
	})

	return &types.ActivitySummary{
		TotalActivities: len(activities),
		TotalDistance:   util.MetersToKm(distanceMeters),
		TotalDuration:   util.FormatDuration(durationSeconds),
		AveragePace:     averagePace(util.MetersToKm(distanceMeters), durationSeconds),
	}
}

func summarizeMonthly(activities []*model.Activity) map[string]types.MonthlySummary {
	buckets := lo.GroupBy(activities, func(a *model.Activity) string {
		return a.StartTimeLocal.Format("2006-01")
	})

	monthly := make(map[string]types.MonthlySummary, len(buckets))
	for month, acts := range buckets {
		distanceMeters := lo.SumBy(acts, func(a *model.Activity) float64 {
			return a.Distance.ValueOrZero()
		})
		durationSeconds := lo.SumBy(acts, func(a *model.Activity) float64 {
			return a.Duration.ValueOrZero()
		})

		monthly[month] = types.MonthlySummary{
			TotalDistance: util.MetersToKm(distanceMeters),
			TotalDuration: util.FormatDuration(durationSeconds),
			AveragePace:   averagePace(util.MetersToKm(distanceMeters), durationSeconds),
		}
	}
	return monthly
}

// averagePace derives the display pace from a rounded distance in km and a
// duration in seconds. Empty buckets keep the sentinel instead of a computed
// zero pace.
func averagePace(distanceKm, durationSeconds float64) string {
	if distanceKm <= 0 || durationSeconds <= 0 {
		return sentinelPace
	}
	avgSpeedMs := distanceKm * 1000 / durationSeconds
	return util.SpeedToPace(util.MsToKmh(avgSpeedMs))
}
