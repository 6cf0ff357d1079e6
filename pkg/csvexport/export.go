package csvexport

import (
	"strconv"
	"strings"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

// preamble keys of interest
const (
	keyStartTime = "Start Time"
	keyTrack     = "Track"
	keyConfig    = "Config"
	keySeries    = "Series"
	keySession   = "Hosted Session Name"
)

// ParseExport turns a raw CSV export into an EventResult with a single race
// session. Preamble and results table are independent: either may be
// missing; only a document with no results table at all yields
// ErrTableNotFound.
func ParseExport(text string) (*model.EventResult, error) {
	lines := Lines(text)

	ev := &model.EventResult{Origin: model.OriginCSV}
	if pre, err := Preamble(lines); err == nil {
		ev.StartTime = pre[keyStartTime]
		ev.Track.Name = pre[keyTrack]
		ev.Track.Config = pre[keyConfig]
		ev.SeriesName = pre[keySeries]
		ev.SeasonName = pre[keySession]
	}

	rows, err := ResultsTable(lines)
	if err != nil {
		return nil, err
	}
	sess := model.Session{SimsessionName: model.SessionRace}
	for _, row := range rows {
		sess.Results = append(sess.Results, toDriverRow(row))
	}
	ev.SessionResults = []model.Session{sess}
	return ev, nil
}

// toDriverRow maps one parsed table row onto the canonical driver row.
// The CSV export counts positions from 1, the canonical form from 0.
func toDriverRow(row map[string]string) model.RawDriverRow {
	ret := model.RawDriverRow{}
	if v, ok := intCell(row, ColFinPos); ok {
		pos := v - 1
		ret.FinishPosition = &pos
	}
	if v, ok := intCell(row, ColStartPos); ok {
		pos := v - 1
		ret.StartingPosition = &pos
	}
	if v, ok := intCell(row, ColCustID); ok {
		id := int64(v)
		ret.CustID = &id
	}
	if v, ok := Column(row, ColDriver); ok {
		ret.DisplayName = v
	}
	if v, ok := Column(row, ColCar); ok {
		ret.CarName = v
	}
	if v, ok := intCell(row, ColLaps); ok {
		ret.LapsComplete = &v
	}
	if v, ok := intCell(row, ColIncidents); ok {
		ret.Incidents = &v
	}
	if v, ok := Column(row, ColOut); ok && v != "" {
		ret.ReasonOut = v
	}
	if v, ok := durationCell(row, ColTimeGap); ok {
		ret.Interval = &v
	}
	if v, ok := durationCell(row, ColBestLap); ok {
		ret.BestLapTime = &v
	}
	if v, ok := floatCell(row, ColPoints); ok {
		ret.Points = &v
	}
	return ret
}

func intCell(row map[string]string, logical string) (int, bool) {
	raw, ok := Column(row, logical)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

func floatCell(row map[string]string, logical string) (float64, bool) {
	raw, ok := Column(row, logical)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// durationCell parses a time/gap cell. The export writes either a plain
// number (seconds or ticks, resolved later by magnitude) or a clock value
// like 1:23.456 which is converted to seconds.
func durationCell(row map[string]string, logical string) (float64, bool) {
	raw, ok := Column(row, logical)
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "+"))
	if raw == "" || raw == "-" {
		return 0, false
	}
	if mins, rest, found := strings.Cut(raw, ":"); found {
		m, err := strconv.Atoi(mins)
		if err != nil {
			return 0, false
		}
		s, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false
		}
		return float64(m)*60 + s, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
