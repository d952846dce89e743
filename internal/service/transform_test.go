package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
)

func TestTransformerActivity(t *testing.T) {
	tf := NewTransformer()

	src := &types.SourceActivity{
		ActivityID:     111222333,
		ActivityName:   "Morning Run",
		StartTimeLocal: "2026-03-01 08:00:00.0",
		StartTimeGMT:   "2026-03-01 07:00:00.0",
		EndTimeGMT:     "2026-03-01 07:30:00",
		Distance:       null.FloatFrom(5000),
		Duration:       null.FloatFrom(1800),
		HRTimeInZone2:  null.FloatFrom(600),
		HRTimeInZone4:  null.FloatFrom(120),
	}

	activity, err := tf.Activity(42, src)
	require.NoError(t, err)

	assert.Equal(t, int64(111222333), activity.SourceActivityID)
	assert.Equal(t, 42, activity.UserID)
	assert.Equal(t, "Morning Run", activity.ActivityName)

	// the spurious ".0" marker is stripped, not parsed as fractional seconds
	assert.Equal(t, "2026-03-01 08:00:00", activity.StartTimeLocal.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2026-03-01 07:00:00", activity.StartTimeGMT.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2026-03-01 07:30:00", activity.EndTimeGMT.Format("2006-01-02 15:04:05"))

	require.NotNil(t, activity.HRTimeInZones)
	assert.Equal(t, 0.0, activity.HRTimeInZones.Zone1)
	assert.Equal(t, 600.0, activity.HRTimeInZones.Zone2)
	assert.Equal(t, 0.0, activity.HRTimeInZones.Zone3)
	assert.Equal(t, 120.0, activity.HRTimeInZones.Zone4)
	assert.Equal(t, 0.0, activity.HRTimeInZones.Zone5)

	// no power zone data at all keeps the column NULL
	assert.Nil(t, activity.PowerTimeInZones)

	// absent flags default to false
	assert.False(t, activity.Favorite)
	assert.False(t, activity.ManualActivity)
	assert.False(t, activity.ElevationCorrected)
}

func TestTransformerActivityMalformed(t *testing.T) {
	tf := NewTransformer()

	cases := []struct {
		name string
		src  types.SourceActivity
	}{
		{
			name: "missing startTimeLocal",
			src: types.SourceActivity{
				ActivityID:   1,
				StartTimeGMT: "2026-03-01 07:00:00",
				EndTimeGMT:   "2026-03-01 07:30:00",
			},
		},
		{
			name: "unparsable endTimeGMT",
			src: types.SourceActivity{
				ActivityID:     2,
				StartTimeLocal: "2026-03-01 08:00:00",
				StartTimeGMT:   "2026-03-01 07:00:00",
				EndTimeGMT:     "not-a-timestamp",
			},
		},
		{
			name: "missing activityId",
			src: types.SourceActivity{
				StartTimeLocal: "2026-03-01 08:00:00",
				StartTimeGMT:   "2026-03-01 07:00:00",
				EndTimeGMT:     "2026-03-01 07:30:00",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tf.Activity(42, &tc.src)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrMalformedRecord))
		})
	}
}

func TestTransformerActivityTSeparatedTimestamps(t *testing.T) {
	tf := NewTransformer()

	activity, err := tf.Activity(42, &types.SourceActivity{
		ActivityID:     111222333,
		StartTimeLocal: "2025-05-07T23:20:30.0",
		StartTimeGMT:   "2025-05-07T22:20:30.0",
		EndTimeGMT:     "2025-05-07T22:50:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-05-07 23:20:30", activity.StartTimeLocal.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-05-07 22:20:30", activity.StartTimeGMT.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-05-07 22:50:30", activity.EndTimeGMT.Format("2006-01-02 15:04:05"))
}

func TestTransformerSplit(t *testing.T) {
	tf := NewTransformer()

	split, err := tf.Split(111222333, &types.SourceLap{
		LapIndex:     3,
		StartTimeGMT: "2026-03-01 07:10:00.0",
		Distance:     null.FloatFrom(1000),
		Duration:     null.FloatFrom(330),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(111222333), split.SourceActivityID)
	assert.Equal(t, 3, split.LapIndex)
	assert.Equal(t, "2026-03-01 07:10:00", split.StartTimeGMT.Format("2006-01-02 15:04:05"))
	assert.Equal(t, 1000.0, split.Distance.ValueOrZero())

	// the splits endpoint separates date and time with a "T"
	split, err = tf.Split(111222333, &types.SourceLap{
		LapIndex:     4,
		StartTimeGMT: "2025-05-07T22:20:30.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-05-07 22:20:30", split.StartTimeGMT.Format("2006-01-02 15:04:05"))

	_, err = tf.Split(111222333, &types.SourceLap{LapIndex: 5})
	assert.True(t, errors.Is(err, apperr.ErrMalformedRecord))
}
