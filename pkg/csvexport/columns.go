package csvexport

import "strings"

// logical columns of the results table
const (
	ColFinPos    = "finPos"
	ColStartPos  = "startPos"
	ColCustID    = "custId"
	ColDriver    = "driver"
	ColCar       = "car"
	ColTimeGap   = "timeGap"
	ColBestLap   = "bestLap"
	ColLaps      = "laps"
	ColIncidents = "incidents"
	ColOut       = "out"
	ColPoints    = "points"
)

// acceptable header spellings per logical column; matched case-insensitive
// and quote-stripped
//
//nolint:gochecknoglobals // static lookup table
var columnAliases = map[string][]string{
	ColFinPos:    {"Fin Pos", "Finish Position", "Pos"},
	ColStartPos:  {"Start Pos", "Starting Position", "Grid"},
	ColCustID:    {"Cust ID", "Customer ID", "CustID"},
	ColDriver:    {"Name", "Driver", "Driver Name"},
	ColCar:       {"Car", "Car Name", "Vehicle"},
	ColTimeGap:   {"Interval", "Time/Gap", "Gap", "Time"},
	ColBestLap:   {"Fastest Lap Time", "Best Lap Time", "Best Lap"},
	ColLaps:      {"# Laps", "Laps", "Laps Complete"},
	ColIncidents: {"Incidents", "Inc"},
	ColOut:       {"Out", "Reason Out", "Status"},
	ColPoints:    {"Points", "Champ Points", "League Points"},
}

// Column resolves a logical column within one parsed row via fuzzy header
// matching. The bool reports whether any alias matched a header cell.
func Column(row map[string]string, logical string) (string, bool) {
	aliases, ok := columnAliases[logical]
	if !ok {
		return "", false
	}
	for _, alias := range aliases {
		for key, value := range row {
			if strings.EqualFold(stripQuotes(key), alias) {
				return value, true
			}
		}
	}
	return "", false
}
