package model

// TimeInZones is a vendor-defined 5-bucket time-in-zone breakdown, in seconds.
// Buckets missing from the vendor payload default to 0.
type TimeInZones struct {
	Zone1 float64 `json:"zone_1"`
	Zone2 float64 `json:"zone_2"`
	Zone3 float64 `json:"zone_3"`
	Zone4 float64 `json:"zone_4"`
	Zone5 float64 `json:"zone_5"`
}
