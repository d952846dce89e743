package types

import (
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"
)

// ActivitySummary is the lifetime training aggregate for one user.
// TotalDuration and AveragePace carry the formatted display contracts
// (HH:MM:SS.mmm and M:SS.mmm); AveragePace is "00:00" when there is
// nothing to aggregate.
type ActivitySummary struct {
	TotalActivities int     `json:"totalActivities"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalDuration   string  `json:"totalDuration"`
	AveragePace     string  `json:"averagePace"`
}

// MonthlySummary is one calendar-month aggregate bucket, keyed by YYYY-MM.
type MonthlySummary struct {
	TotalDistance float64 `json:"totalDistance"`
	TotalDuration string  `json:"totalDuration"`
	AveragePace   string  `json:"averagePace"`
}

// LapView is one split formatted for display: distance in km, duration as
// HH:MM:SS.mmm, speeds in km/h, paces as M:SS.mmm.
type LapView struct {
	LapIndex          int        `json:"lapIndex"`
	Distance          float64    `json:"distance"`
	Duration          string     `json:"duration"`
	AverageSpeed      float64    `json:"averageSpeed"`
	MaxSpeed          float64    `json:"maxSpeed"`
	AveragePace       string     `json:"averagePace"`
	MaxPace           string     `json:"maxPace"`
	AverageHR         null.Float `json:"averageHR"`
	MaxHR             null.Float `json:"maxHR"`
	AverageRunCadence null.Float `json:"averageRunCadence"`
}

// CommentView is one comment formatted for display.
type CommentView struct {
	ID        int       `json:"id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityDetail joins one activity with its formatted laps, comments and
// the coaching feedback blob, newest activity first in list responses.
type ActivityDetail struct {
	ID             int             `json:"id"`
	ActivityID     int64           `json:"activityId"`
	ActivityName   string          `json:"activityName"`
	LocalStartTime time.Time       `json:"localStartTime"`
	Distance       float64         `json:"distance"`
	Duration       string          `json:"duration"`
	AverageSpeed   float64         `json:"averageSpeed"`
	MaxSpeed       float64         `json:"maxSpeed"`
	AveragePace    string          `json:"averagePace"`
	MaxPace        string          `json:"maxPace"`
	AverageCadence null.Float      `json:"averageCadence"`
	AverageHR      null.Float      `json:"averageHR"`
	MaxHR          null.Float      `json:"maxHR"`
	Laps           []LapView       `json:"laps"`
	Comments       []CommentView   `json:"comments"`
	Feedback       json.RawMessage `json:"feedback,omitempty"`
}
