package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"striderun.dev/backend/internal/model"
)

func activityAt(start time.Time, distanceMeters, durationSeconds float64) *model.Activity {
	return &model.Activity{
		StartTimeLocal: start,
		Distance:       null.FloatFrom(distanceMeters),
		Duration:       null.FloatFrom(durationSeconds),
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	summary := summarize([]*model.Activity{
		activityAt(start, 5000, 1800),
		activityAt(start.Add(24*time.Hour), 10000, 3600),
	})

	assert.Equal(t, 2, summary.TotalActivities)
	assert.Equal(t, 15.0, summary.TotalDistance)
	assert.Equal(t, "01:30:00.000", summary.TotalDuration)
	assert.Equal(t, "6:00.000", summary.AveragePace)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := summarize(nil)

	assert.Equal(t, 0, summary.TotalActivities)
	assert.Equal(t, 0.0, summary.TotalDistance)
	assert.Equal(t, "00:00:00.000", summary.TotalDuration)
	assert.Equal(t, "00:00", summary.AveragePace)
}

func TestSummarizeZeroDistance(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	summary := summarize([]*model.Activity{
		{StartTimeLocal: start, Duration: null.FloatFrom(1800)},
	})

	assert.Equal(t, 1, summary.TotalActivities)
	assert.Equal(t, "00:00", summary.AveragePace)
}

func TestSummarizeMonthly(t *testing.T) {
	march := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 15, 8, 0, 0, 0, time.UTC)

	monthly := summarizeMonthly([]*model.Activity{
		activityAt(march, 5000, 1800),
		activityAt(march.AddDate(0, 0, 20), 10000, 3600),
		activityAt(april, 10000, 3000),
	})

	require.Len(t, monthly, 2)

	m := monthly["2026-03"]
	assert.Equal(t, 15.0, m.TotalDistance)
	assert.Equal(t, "01:30:00.000", m.TotalDuration)
	assert.Equal(t, "6:00.000", m.AveragePace)

	a := monthly["2026-04"]
	assert.Equal(t, 10.0, a.TotalDistance)
	assert.Equal(t, "00:50:00.000", a.TotalDuration)
	assert.Equal(t, "5:00.000", a.AveragePace)
}

func TestSummarizeMonthlyZeroDurationBucket(t *testing.T) {
	march := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	monthly := summarizeMonthly([]*model.Activity{
		{StartTimeLocal: march, Distance: null.FloatFrom(5000)},
	})

	require.Contains(t, monthly, "2026-03")
	assert.Equal(t, "00:00", monthly["2026-03"].AveragePace)
}
