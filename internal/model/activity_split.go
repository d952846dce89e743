package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// ActivitySplit is one vendor lap within an activity. The parent is referenced
// by the vendor's source activity id, the only key stable across resyncs.
// LapIndex is unique within a parent's split set.
type ActivitySplit struct {
	bun.BaseModel `bun:"activity_splits,alias:sp"`

	SplitID          int   `bun:",pk,autoincrement" json:"id"`
	SourceActivityID int64 `bun:"source_activity_id" json:"activityId"`
	LapIndex         int   `json:"lapIndex"`

	StartTimeGMT time.Time `bun:"start_time_gmt" json:"startTimeGMT"`

	Distance       null.Float `json:"distance"`
	Duration       null.Float `json:"duration"`
	MovingDuration null.Float `json:"movingDuration"`

	AverageSpeed null.Float `json:"averageSpeed"`
	MaxSpeed     null.Float `json:"maxSpeed"`

	AverageHR null.Float `bun:"average_hr" json:"averageHR"`
	MaxHR     null.Float `bun:"max_hr" json:"maxHR"`

	AverageRunCadence null.Float `json:"averageRunCadence"`
	MaxRunCadence     null.Float `json:"maxRunCadence"`

	AveragePower null.Float `json:"averagePower"`
	MaxPower     null.Float `json:"maxPower"`

	GroundContactTime   null.Float `json:"groundContactTime"`
	StrideLength        null.Float `json:"strideLength"`
	VerticalOscillation null.Float `json:"verticalOscillation"`
	VerticalRatio       null.Float `json:"verticalRatio"`

	Calories null.Float `json:"calories"`

	ElevationGain null.Float `json:"elevationGain"`
	ElevationLoss null.Float `json:"elevationLoss"`
	MaxElevation  null.Float `json:"maxElevation"`
	MinElevation  null.Float `json:"minElevation"`

	StartLatitude  null.Float `json:"startLatitude"`
	StartLongitude null.Float `json:"startLongitude"`
	EndLatitude    null.Float `json:"endLatitude"`
	EndLongitude   null.Float `json:"endLongitude"`
}
