// Package finish resolves the finishing order of one session and
// annotates rows with display-ready positions and durations.
package finish

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/results"
	"github.com/virtualgrid/league-results-go/pkg/timing"
)

// rows without any position field sort last
const unknownPosKey = math.MaxInt

// Sort returns the rows ordered by finish position. The sort is stable and
// does not mutate its input; rows without a position keep their relative
// order at the end.
func Sort(rows []model.RawDriverRow) []model.RawDriverRow {
	ret := slices.Clone(rows)
	slices.SortStableFunc(ret, func(a, b model.RawDriverRow) int {
		return cmp.Compare(sortKey(&a), sortKey(&b))
	})
	return ret
}

func sortKey(row *model.RawDriverRow) int {
	if pos, ok := results.FinishPos(row); ok {
		return pos
	}
	return unknownPosKey
}

// DisplayPosition renders the 1-based position of a row. The vendor stores
// positions 0-based; re-basing here is mandatory for any user-facing view.
func DisplayPosition(row *model.RawDriverRow) string {
	if pos, ok := results.FinishPos(row); ok {
		return strconv.Itoa(pos + 1)
	}
	return timing.Placeholder
}

// Annotate resolves one session into finish rows: sorted, with 1-based
// position and interval/best-lap normalized to milliseconds using the
// threshold of the event's origin format.
func Annotate(ev *model.EventResult, sess *model.Session) []model.FinishRow {
	threshold := timing.ThresholdJSON
	if ev != nil && ev.Origin == model.OriginCSV {
		threshold = timing.ThresholdCSV
	}
	sorted := Sort(sess.Results)
	ret := make([]model.FinishRow, 0, len(sorted))
	for i := range sorted {
		row := sorted[i]
		fr := model.FinishRow{
			Row:        row,
			IntervalMs: resolveField(row.Interval, threshold),
			BestLapMs:  resolveField(row.BestLapTime, threshold),
		}
		if pos, ok := results.FinishPos(&row); ok {
			fr.Position = pos + 1
		}
		ret = append(ret, fr)
	}
	return ret
}

func resolveField(raw *float64, threshold float64) int64 {
	if raw == nil {
		return timing.Unknown
	}
	return timing.ResolveDuration(*raw, threshold)
}
