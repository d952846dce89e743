package service

import (
	"strings"
	"time"

	"gopkg.in/guregu/null.v3"

	"striderun.dev/backend/internal/model"
	"striderun.dev/backend/internal/model/types"
	"striderun.dev/backend/internal/pkg/apperr"
)

// The vendor Connect API renders wall-clock timestamps with either a space
// or a "T" separator depending on the endpoint; activity listings use the
// former, lap detail the latter.
var vendorTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// Activity maps one raw vendor record into the storage model. Returns
// apperr.ErrMalformedRecord when a required timestamp is missing or
// unparseable; the caller skips such records without failing the run.
func (t *Transformer) Activity(userID int, src *types.SourceActivity) (*model.Activity, error) {
	if src.ActivityID == 0 {
		return nil, apperr.ErrMalformedRecord.Msg("record has no activityId")
	}

	startLocal, err := parseVendorTime(src.StartTimeLocal)
	if err != nil {
		return nil, apperr.ErrMalformedRecord.Msg("invalid startTimeLocal %q: %s", src.StartTimeLocal, err)
	}
	startGMT, err := parseVendorTime(src.StartTimeGMT)
	if err != nil {
		return nil, apperr.ErrMalformedRecord.Msg("invalid startTimeGMT %q: %s", src.StartTimeGMT, err)
	}
	endGMT, err := parseVendorTime(src.EndTimeGMT)
	if err != nil {
		return nil, apperr.ErrMalformedRecord.Msg("invalid endTimeGMT %q: %s", src.EndTimeGMT, err)
	}

	return &model.Activity{
		SourceActivityID: src.ActivityID,
		UserID:           userID,
		ActivityName:     src.ActivityName,

		StartTimeLocal: startLocal,
		StartTimeGMT:   startGMT,
		EndTimeGMT:     endGMT,

		ActivityType: src.ActivityType,
		EventType:    src.EventType,

		Distance:        src.Distance,
		Duration:        src.Duration,
		ElapsedDuration: src.ElapsedDuration,
		MovingDuration:  src.MovingDuration,

		ElevationGain:      src.ElevationGain,
		ElevationLoss:      src.ElevationLoss,
		MinElevation:       src.MinElevation,
		MaxElevation:       src.MaxElevation,
		ElevationCorrected: src.ElevationCorrected.ValueOrZero(),

		AverageSpeed: src.AverageSpeed,
		MaxSpeed:     src.MaxSpeed,

		StartLatitude:  src.StartLatitude,
		StartLongitude: src.StartLongitude,
		EndLatitude:    src.EndLatitude,
		EndLongitude:   src.EndLongitude,

		AverageHR:     src.AverageHR,
		MaxHR:         src.MaxHR,
		HRTimeInZones: buildZones(src.HRTimeInZone1, src.HRTimeInZone2, src.HRTimeInZone3, src.HRTimeInZone4, src.HRTimeInZone5),

		AvgPower:         src.AvgPower,
		MaxPower:         src.MaxPower,
		PowerTimeInZones: buildZones(src.PowerTimeInZone1, src.PowerTimeInZone2, src.PowerTimeInZone3, src.PowerTimeInZone4, src.PowerTimeInZone5),

		AerobicTrainingEffect:   src.AerobicTrainingEffect,
		AnaerobicTrainingEffect: src.AnaerobicTrainingEffect,
		TrainingEffectLabel:     src.TrainingEffectLabel,
		VO2MaxValue:             src.VO2MaxValue,

		AverageCadence:         src.AverageRunningCadenceInStepsPerMinute,
		MaxCadence:             src.MaxRunningCadenceInStepsPerMinute,
		AvgVerticalOscillation: src.AvgVerticalOscillation,
		AvgGroundContactTime:   src.AvgGroundContactTime,
		AvgStrideLength:        src.AvgStrideLength,

		Calories:                 src.Calories,
		WaterEstimated:           src.WaterEstimated,
		ActivityTrainingLoad:     src.ActivityTrainingLoad,
		ModerateIntensityMinutes: src.ModerateIntensityMinutes,
		VigorousIntensityMinutes: src.VigorousIntensityMinutes,

		Steps:        src.Steps,
		TimeZoneID:   src.TimeZoneID,
		SportTypeID:  src.SportTypeID,
		DeviceID:     src.DeviceID,
		Manufacturer: src.Manufacturer,
		LapCount:     src.LapCount,
		Privacy:      src.Privacy,

		Favorite:       src.Favorite.ValueOrZero(),
		ManualActivity: src.ManualActivity.ValueOrZero(),
	}, nil
}

// Split maps one raw vendor lap into the storage model, keyed by the parent's
// vendor activity id.
func (t *Transformer) Split(sourceActivityID int64, src *types.SourceLap) (*model.ActivitySplit, error) {
	startGMT, err := parseVendorTime(src.StartTimeGMT)
	if err != nil {
		return nil, apperr.ErrMalformedRecord.Msg("invalid lap startTimeGMT %q: %s", src.StartTimeGMT, err)
	}

	return &model.ActivitySplit{
		SourceActivityID: sourceActivityID,
		LapIndex:         src.LapIndex,

		StartTimeGMT: startGMT,

		Distance:       src.Distance,
		Duration:       src.Duration,
		MovingDuration: src.MovingDuration,

		AverageSpeed: src.AverageSpeed,
		MaxSpeed:     src.MaxSpeed,

		AverageHR: src.AverageHR,
		MaxHR:     src.MaxHR,

		AverageRunCadence: src.AverageRunCadence,
		MaxRunCadence:     src.MaxRunCadence,

		AveragePower: src.AveragePower,
		MaxPower:     src.MaxPower,

		GroundContactTime:   src.GroundContactTime,
		StrideLength:        src.StrideLength,
		VerticalOscillation: src.VerticalOscillation,
		VerticalRatio:       src.VerticalRatio,

		Calories: src.Calories,

		ElevationGain: src.ElevationGain,
		ElevationLoss: src.ElevationLoss,
		MaxElevation:  src.MaxElevation,
		MinElevation:  src.MinElevation,

		StartLatitude:  src.StartLatitude,
		StartLongitude: src.StartLongitude,
		EndLatitude:    src.EndLatitude,
		EndLongitude:   src.EndLongitude,
	}, nil
}

// parseVendorTime parses a vendor wall-clock timestamp. The vendor sometimes
// appends a spurious ".0" fractional marker which is stripped before parsing.
func parseVendorTime(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, ".0")

	var firstErr error
	for _, layout := range vendorTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// buildZones collapses the vendor's flattened per-zone fields. Missing zones
// read as zero seconds; a record with no zone data at all yields nil so the
// column stays NULL instead of an all-zero bucket set.
func buildZones(z1, z2, z3, z4, z5 null.Float) *model.TimeInZones {
	if !z1.Valid && !z2.Valid && !z3.Valid && !z4.Valid && !z5.Valid {
		return nil
	}
	return &model.TimeInZones{
		Zone1: z1.ValueOrZero(),
		Zone2: z2.ValueOrZero(),
		Zone3: z3.ValueOrZero(),
		Zone4: z4.ValueOrZero(),
		Zone5: z5.ValueOrZero(),
	}
}
