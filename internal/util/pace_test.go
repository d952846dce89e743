package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	type testCase struct {
		seconds float64
		expect  string
	}

	testCases := []testCase{
		{0, "00:00:00.000"},
		{59.999, "00:00:59.999"},
		{60, "00:01:00.000"},
		{3661.5, "01:01:01.500"},
		{5400, "01:30:00.000"},
		{86399.75, "23:59:59.750"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, FormatDuration(tc.seconds), "seconds: %v", tc.seconds)
	}
}

func TestFormatPace(t *testing.T) {
	type testCase struct {
		secondsPerKm float64
		expect       string
	}

	testCases := []testCase{
		{330, "5:30.000"},
		{300, "5:00.000"},
		{360, "6:00.000"},
		{59.5, "0:59.500"},
		{615.25, "10:15.250"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, FormatPace(tc.secondsPerKm), "secondsPerKm: %v", tc.secondsPerKm)
	}
}

func TestSpeedToPace(t *testing.T) {
	assert.Equal(t, "5:00.000", SpeedToPace(12))
	assert.Equal(t, "6:00.000", SpeedToPace(10))
	assert.Equal(t, "0:00.000", SpeedToPace(0))
	assert.Equal(t, "0:00.000", SpeedToPace(-3))
}

func TestMetersToKm(t *testing.T) {
	assert.Equal(t, 5.0, MetersToKm(5000))
	assert.Equal(t, 15.0, MetersToKm(15000))
	assert.Equal(t, 5.02, MetersToKm(5021))
	assert.Equal(t, 0.0, MetersToKm(0))
}

func TestMsToKmh(t *testing.T) {
	assert.InDelta(t, 12.0, MsToKmh(3.3333333333333335), 1e-9)
	assert.Equal(t, 3.6, MsToKmh(1))
}
