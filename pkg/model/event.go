package model

import "time"

// session type names as used by the vendor exports
const (
	SessionRace    = "RACE"
	SessionQualify = "QUALIFY"
)

// origin of an event result document
const (
	OriginJSON = "json"
	OriginCSV  = "csv"
)

// RawDriverRow is one competitor's record within one session as found in the
// vendor export. No field is guaranteed to be present; absent numeric fields
// stay nil and consumers degrade to placeholders.
//
//nolint:tagliatelle // vendor format
type RawDriverRow struct {
	CustID                *int64   `json:"cust_id,omitempty"`
	DisplayName           string   `json:"display_name,omitempty"`
	CarName               string   `json:"car_name,omitempty"`
	FinishPosition        *int     `json:"finish_position,omitempty"`
	FinishPositionInClass *int     `json:"finish_position_in_class,omitempty"`
	StartingPosition      *int     `json:"starting_position,omitempty"`
	LapsComplete          *int     `json:"laps_complete,omitempty"`
	Incidents             *int     `json:"incidents,omitempty"`
	ReasonOut             string   `json:"reason_out,omitempty"`
	Interval              *float64 `json:"interval,omitempty"`
	BestLapTime           *float64 `json:"best_lap_time,omitempty"`

	// points fields, only one of them (if any) is filled by the vendor
	ChampPoints    *float64 `json:"champ_points,omitempty"`
	AggChampPoints *float64 `json:"agg_champ_points,omitempty"`
	LeaguePoints   *float64 `json:"league_points,omitempty"`
	RacePoints     *float64 `json:"race_points,omitempty"`
	Points         *float64 `json:"points,omitempty"`

	// rating snapshot after the race
	NewiRating      *int `json:"newi_rating,omitempty"`
	NewSubLevel     *int `json:"new_sub_level,omitempty"`
	NewLicenseLevel *int `json:"new_license_level,omitempty"`
}

// Session is one named phase of a race event (qualifying, race).
// Results keep the insertion order of the source document.
//
//nolint:tagliatelle // vendor format
type Session struct {
	SimsessionName string         `json:"simsession_name"`
	SimsessionType int            `json:"simsession_type,omitempty"`
	Results        []RawDriverRow `json:"results"`
}

//nolint:tagliatelle // vendor format
type Track struct {
	Name   string `json:"track_name"`
	Config string `json:"config_name,omitempty"`
}

// EventResult is one race event as exported by the vendor. It may arrive
// wrapped in a ResultEnvelope or as the top-level document.
//
//nolint:tagliatelle // vendor format
type EventResult struct {
	StartTime      string    `json:"start_time,omitempty"`
	Track          Track     `json:"track"`
	SeriesName     string    `json:"series_name,omitempty"`
	SeasonName     string    `json:"season_name,omitempty"`
	SessionResults []Session `json:"session_results"`

	// set by the loader, not part of the export
	Origin string `json:"-"`
}

// ResultEnvelope is the optional wrapper some export files use
// around the event payload.
type ResultEnvelope struct {
	Type string       `json:"type"`
	Data *EventResult `json:"data"`
}

// StartedAt parses the event start time. Returns the zero time when the
// field is absent or not in a known layout.
func (e *EventResult) StartedAt() time.Time {
	if e.StartTime == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	} {
		if ts, err := time.Parse(layout, e.StartTime); err == nil {
			return ts
		}
	}
	return time.Time{}
}
