package types

import (
	"github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"
)

// SourceActivity is one raw workout record as listed by the vendor Connect
// API. Fields are enumerated explicitly instead of accepting an arbitrary
// payload; anything the vendor may omit is optional. Timestamps stay strings
// here: the vendor occasionally appends a spurious `.0` fractional marker
// which the transformer strips before parsing.
type SourceActivity struct {
	ActivityID     int64  `json:"activityId"`
	ActivityName   string `json:"activityName"`
	StartTimeLocal string `json:"startTimeLocal"`
	StartTimeGMT   string `json:"startTimeGMT"`
	EndTimeGMT     string `json:"endTimeGMT"`

	ActivityType json.RawMessage `json:"activityType,omitempty"`
	EventType    json.RawMessage `json:"eventType,omitempty"`

	Distance        null.Float `json:"distance"`
	Duration        null.Float `json:"duration"`
	ElapsedDuration null.Float `json:"elapsedDuration"`
	MovingDuration  null.Float `json:"movingDuration"`

	ElevationGain      null.Float `json:"elevationGain"`
	ElevationLoss      null.Float `json:"elevationLoss"`
	MinElevation       null.Float `json:"minElevation"`
	MaxElevation       null.Float `json:"maxElevation"`
	ElevationCorrected null.Bool  `json:"elevationCorrected"`

	AverageSpeed null.Float `json:"averageSpeed"`
	MaxSpeed     null.Float `json:"maxSpeed"`

	StartLatitude  null.Float `json:"startLatitude"`
	StartLongitude null.Float `json:"startLongitude"`
	EndLatitude    null.Float `json:"endLatitude"`
	EndLongitude   null.Float `json:"endLongitude"`

	AverageHR null.Float `json:"averageHR"`
	MaxHR     null.Float `json:"maxHR"`

	HRTimeInZone1 null.Float `json:"hrTimeInZone_1"`
	HRTimeInZone2 null.Float `json:"hrTimeInZone_2"`
	HRTimeInZone3 null.Float `json:"hrTimeInZone_3"`
	HRTimeInZone4 null.Float `json:"hrTimeInZone_4"`
	HRTimeInZone5 null.Float `json:"hrTimeInZone_5"`

	AvgPower null.Float `json:"avgPower"`
	MaxPower null.Float `json:"maxPower"`

	PowerTimeInZone1 null.Float `json:"powerTimeInZone_1"`
	PowerTimeInZone2 null.Float `json:"powerTimeInZone_2"`
	PowerTimeInZone3 null.Float `json:"powerTimeInZone_3"`
	PowerTimeInZone4 null.Float `json:"powerTimeInZone_4"`
	PowerTimeInZone5 null.Float `json:"powerTimeInZone_5"`

	AerobicTrainingEffect   null.Float  `json:"aerobicTrainingEffect"`
	AnaerobicTrainingEffect null.Float  `json:"anaerobicTrainingEffect"`
	TrainingEffectLabel     null.String `json:"trainingEffectLabel"`
	VO2MaxValue             null.Float  `json:"vO2MaxValue"`

	AverageRunningCadenceInStepsPerMinute null.Float `json:"averageRunningCadenceInStepsPerMinute"`
	MaxRunningCadenceInStepsPerMinute     null.Float `json:"maxRunningCadenceInStepsPerMinute"`
	AvgVerticalOscillation                null.Float `json:"avgVerticalOscillation"`
	AvgGroundContactTime                  null.Float `json:"avgGroundContactTime"`
	AvgStrideLength                       null.Float `json:"avgStrideLength"`

	Calories                 null.Float `json:"calories"`
	WaterEstimated           null.Float `json:"waterEstimated"`
	ActivityTrainingLoad     null.Float `json:"activityTrainingLoad"`
	ModerateIntensityMinutes null.Int   `json:"moderateIntensityMinutes"`
	VigorousIntensityMinutes null.Int   `json:"vigorousIntensityMinutes"`

	Steps        null.Int        `json:"steps"`
	TimeZoneID   null.Int        `json:"timeZoneId"`
	SportTypeID  null.Int        `json:"sportTypeId"`
	DeviceID     null.Int        `json:"deviceId"`
	Manufacturer null.String     `json:"manufacturer"`
	LapCount     null.Int        `json:"lapCount"`
	Privacy      json.RawMessage `json:"privacy,omitempty"`

	Favorite       null.Bool `json:"favorite"`
	ManualActivity null.Bool `json:"manualActivity"`
}

// SourceLap is one raw lap record from the vendor splits endpoint.
type SourceLap struct {
	LapIndex     int    `json:"lapIndex"`
	StartTimeGMT string `json:"startTimeGMT"`

	Distance       null.Float `json:"distance"`
	Duration       null.Float `json:"duration"`
	MovingDuration null.Float `json:"movingDuration"`

	AverageSpeed null.Float `json:"averageSpeed"`
	MaxSpeed     null.Float `json:"maxSpeed"`

	AverageHR null.Float `json:"averageHR"`
	MaxHR     null.Float `json:"maxHR"`

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

// SourceSplits is the vendor response for one activity's lap detail.
type SourceSplits struct {
	ActivityID int64       `json:"activityId"`
	LapDTOs    []SourceLap `json:"lapDTOs"`
}
