package model

import "time"

// FinishRow is a RawDriverRow annotated with its resolved 1-based position
// and millisecond durations. Computed on demand, never persisted.
type FinishRow struct {
	Row RawDriverRow `json:"row"`
	// 1-based display position, 0 when the source row carries no position
	Position   int   `json:"position"`
	IntervalMs int64 `json:"intervalMs"`
	BestLapMs  int64 `json:"bestLapMs"`
}

// StandingRow is the per-driver accumulation across many races.
type StandingRow struct {
	DriverKey  string  `json:"driverKey"`
	DriverName string  `json:"driverName"`
	Team       string  `json:"team"`
	Points     float64 `json:"points"`
	Starts     int     `json:"starts"`
	Wins       int     `json:"wins"`
	Podiums    int     `json:"podiums"`
}

// RatingSnapshot is the driver's rating after a race (point in time,
// not cumulative).
type RatingSnapshot struct {
	Rating       int     `json:"rating"`
	SafetyRating float64 `json:"safetyRating"`
	LicenseGroup int     `json:"licenseGroup"`
}

// RaceEntry is one race from a driver's point of view.
type RaceEntry struct {
	EventID    string    `json:"eventId"`
	SeriesName string    `json:"seriesName"`
	Track      string    `json:"track"`
	StartTime  time.Time `json:"startTime"`
	Position   int       `json:"position"`
	Points     float64   `json:"points"`
}

// DriverProfile spans multiple series for one driver.
type DriverProfile struct {
	DriverKey  string          `json:"driverKey"`
	DriverName string          `json:"driverName"`
	Team       string          `json:"team"`
	Series     []string        `json:"series"`
	Points     float64         `json:"points"`
	Starts     int             `json:"starts"`
	Wins       int             `json:"wins"`
	Podiums    int             `json:"podiums"`
	LastRace   *RaceEntry      `json:"lastRace,omitempty"`
	Rating     *RatingSnapshot `json:"rating,omitempty"`
	// History holds all race entries, newest first
	History []RaceEntry `json:"history"`
}
