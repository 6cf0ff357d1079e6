package results

import "github.com/virtualgrid/league-results-go/pkg/model"

// FinishPos returns the 0-based finishing position of a row. The class
// scoped field wins over the overall one when both are present.
func FinishPos(row *model.RawDriverRow) (int, bool) {
	if row.FinishPositionInClass != nil {
		return *row.FinishPositionInClass, true
	}
	if row.FinishPosition != nil {
		return *row.FinishPosition, true
	}
	return 0, false
}

// StartPos returns the 0-based starting position of a row.
func StartPos(row *model.RawDriverRow) (int, bool) {
	if row.StartingPosition != nil {
		return *row.StartingPosition, true
	}
	return 0, false
}

// AuthoritativePoints returns organizer assigned points carried by the row
// itself. The vendor uses several field names for this; the first present
// one wins and takes precedence over any points table.
func AuthoritativePoints(row *model.RawDriverRow) (float64, bool) {
	for _, v := range []*float64{
		row.ChampPoints,
		row.AggChampPoints,
		row.LeaguePoints,
		row.RacePoints,
		row.Points,
	} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}
