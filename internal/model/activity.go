package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

// Activity is one workout synced from the vendor platform. (UserID,
// SourceActivityID) is unique; rows are insert-only from the sync pipeline.
type Activity struct {
	bun.BaseModel `bun:"activities,alias:act"`

	ActivityID       int    `bun:",pk,autoincrement" json:"id"`
	SourceActivityID int64  `bun:"source_activity_id" json:"activityId"`
	UserID           int    `bun:"user_id" json:"userId"`
	ActivityName     string `json:"activityName"`

	StartTimeLocal time.Time `bun:"start_time_local" json:"startTimeLocal"`
	StartTimeGMT   time.Time `bun:"start_time_gmt" json:"startTimeGMT"`
	EndTimeGMT     time.Time `bun:"end_time_gmt" json:"endTimeGMT"`

	ActivityType json.RawMessage `bun:"activity_type,type:jsonb" json:"activityType,omitempty"`
	EventType    json.RawMessage `bun:"event_type,type:jsonb" json:"eventType,omitempty"`

	Distance        null.Float `json:"distance"`
	Duration        null.Float `json:"duration"`
	ElapsedDuration null.Float `json:"elapsedDuration"`
	MovingDuration  null.Float `json:"movingDuration"`

	ElevationGain      null.Float `json:"elevationGain"`
	ElevationLoss      null.Float `json:"elevationLoss"`
	MinElevation       null.Float `json:"minElevation"`
	MaxElevation       null.Float `json:"maxElevation"`
	ElevationCorrected bool       `bun:",notnull,default:false" json:"elevationCorrected"`

	AverageSpeed null.Float `json:"averageSpeed"`
	MaxSpeed     null.Float `json:"maxSpeed"`

	StartLatitude  null.Float `json:"startLatitude"`
	StartLongitude null.Float `json:"startLongitude"`
	EndLatitude    null.Float `json:"endLatitude"`
	EndLongitude   null.Float `json:"endLongitude"`

	AverageHR     null.Float   `bun:"average_hr" json:"averageHR"`
	MaxHR         null.Float   `bun:"max_hr" json:"maxHR"`
	HRTimeInZones *TimeInZones `bun:"hr_time_in_zones,type:jsonb" json:"hrTimeInZones,omitempty"`

	AvgPower         null.Float   `json:"avgPower"`
	MaxPower         null.Float   `json:"maxPower"`
	PowerTimeInZones *TimeInZones `bun:"power_time_in_zones,type:jsonb" json:"powerTimeInZones,omitempty"`

	AerobicTrainingEffect   null.Float  `json:"aerobicTrainingEffect"`
	AnaerobicTrainingEffect null.Float  `json:"anaerobicTrainingEffect"`
	TrainingEffectLabel     null.String `json:"trainingEffectLabel"`
	VO2MaxValue             null.Float  `bun:"vo2max_value" json:"vo2MaxValue"`

	AverageCadence         null.Float `json:"averageCadence"`
	MaxCadence             null.Float `json:"maxCadence"`
	AvgVerticalOscillation null.Float `json:"avgVerticalOscillation"`
	AvgGroundContactTime   null.Float `json:"avgGroundContactTime"`
	AvgStrideLength        null.Float `json:"avgStrideLength"`

	Calories                 null.Float `json:"calories"`
	WaterEstimated           null.Float `json:"waterEstimated"`
	ActivityTrainingLoad     null.Float `json:"activityTrainingLoad"`
	ModerateIntensityMinutes null.Int   `json:"moderateIntensityMinutes"`
	VigorousIntensityMinutes null.Int   `json:"vigorousIntensityMinutes"`

	Steps        null.Int        `json:"steps"`
	TimeZoneID   null.Int        `bun:"time_zone_id" json:"timeZoneId"`
	SportTypeID  null.Int        `bun:"sport_type_id" json:"sportTypeId"`
	DeviceID     null.Int        `bun:"device_id" json:"deviceId"`
	Manufacturer null.String     `json:"manufacturer"`
	LapCount     null.Int        `json:"lapCount"`
	Privacy      json.RawMessage `bun:"privacy,type:jsonb" json:"privacy,omitempty"`

	Favorite       bool `bun:",notnull,default:false" json:"favorite"`
	ManualActivity bool `bun:",notnull,default:false" json:"manualActivity"`
}
