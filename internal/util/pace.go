package util

import (
	"fmt"
	"math"
)

// FormatDuration renders a duration in seconds as HH:MM:SS.mmm.
// Downstream consumers compare these strings verbatim; do not change the
// rendering without migrating them.
func FormatDuration(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secRemainder := math.Mod(seconds, 60)
	ms := int((secRemainder - math.Floor(secRemainder)) * 1000)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, int(secRemainder), ms)
}

// FormatPace renders seconds-per-kilometer as M:SS.mmm. Minutes are not
// zero-padded.
func FormatPace(secondsPerKm float64) string {
	minutes := int(secondsPerKm / 60)
	secRemainder := math.Mod(secondsPerKm, 60)
	seconds := int(secRemainder)
	ms := int((secRemainder - float64(seconds)) * 1000)
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, ms)
}

// SpeedToPace converts a speed in km/h to a formatted pace. Non-positive
// speeds yield the zero pace "0:00.000".
func SpeedToPace(speedKmh float64) string {
	if speedKmh <= 0 {
		return "0:00.000"
	}
	secondsPerKm := 3600 / speedKmh
	return FormatPace(secondsPerKm)
}

// MetersToKm converts meters to kilometers rounded to two decimals.
func MetersToKm(meters float64) float64 {
	return math.Round(meters/1000*100) / 100
}

// MsToKmh converts meters-per-second to kilometers-per-hour.
func MsToKmh(ms float64) float64 {
	return ms * 3.6
}

// RoundTo2 rounds to two decimals, used for display speeds.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
