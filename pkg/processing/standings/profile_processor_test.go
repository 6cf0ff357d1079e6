package standings

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

func profileRace(start, series string, rows ...model.RawDriverRow) *model.EventResult {
	return &model.EventResult{
		StartTime:  start,
		SeriesName: series,
		Track:      model.Track{Name: "Monza"},
		SessionResults: []model.Session{
			{SimsessionName: "RACE", Results: rows},
		},
	}
}

func TestProfiles_Totals(t *testing.T) {
	proc := NewProfileProcessor(WithProfilePointsEngine(testEngine()))
	proc.ProcessRace("r1", profileRace("2025-03-02T19:00:00Z", "GT Sprint",
		driver("Alice", 0), driver("Bob", 1)))
	proc.ProcessRace("r2", profileRace("2025-03-09T19:00:00Z", "Endurance",
		driver("Alice", 1), driver("Bob", 0)))

	profiles := proc.Profiles()
	require.Len(t, profiles, 2)

	alice := profiles[0]
	assert.Equal(t, "Alice", alice.DriverName)
	assert.InDelta(t, 43.0, alice.Points, 0.001)
	assert.Equal(t, 2, alice.Starts)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 2, alice.Podiums)
	assert.Equal(t, []string{"Endurance", "GT Sprint"}, alice.Series)

	require.Len(t, alice.History, 2)
	// newest first
	assert.Equal(t, "r2", alice.History[0].EventID)
	assert.Equal(t, "r1", alice.History[1].EventID)
}

// the most recent race is decided by start time, not by fold order
func TestProfiles_LastRaceByTimestamp(t *testing.T) {
	newer := profileRace("2025-03-09T19:00:00Z", "GT Sprint", ratedDriver("Alice", 0, 2100))
	older := profileRace("2025-03-02T19:00:00Z", "GT Sprint", ratedDriver("Alice", 0, 1900))

	proc := NewProfileProcessor(WithProfilePointsEngine(testEngine()))
	proc.ProcessRace("newer", newer)
	proc.ProcessRace("older", older)

	profiles := proc.Profiles()
	require.Len(t, profiles, 1)
	require.NotNil(t, profiles[0].LastRace)
	assert.Equal(t, "newer", profiles[0].LastRace.EventID)
	assert.Equal(t,
		time.Date(2025, 3, 9, 19, 0, 0, 0, time.UTC),
		profiles[0].LastRace.StartTime)

	// the rating snapshot follows the most recent race, so the
	// older race must not have overwritten it
	require.NotNil(t, profiles[0].Rating)
	assert.Equal(t, 2100, profiles[0].Rating.Rating)
}

func ratedDriver(name string, pos, rating int) model.RawDriverRow {
	row := driver(name, pos)
	row.NewiRating = lo.ToPtr(rating)
	row.NewSubLevel = lo.ToPtr(499)
	row.NewLicenseLevel = lo.ToPtr(20)
	return row
}

func TestProfiles_RatingMergeKeepsKnownFields(t *testing.T) {
	first := driver("Alice", 0)
	first.NewiRating = lo.ToPtr(1900)
	first.NewSubLevel = lo.ToPtr(350)

	second := driver("Alice", 0)
	second.NewiRating = lo.ToPtr(2000)
	// no sub level in the newer record

	proc := NewProfileProcessor(WithProfilePointsEngine(testEngine()))
	proc.ProcessRace("r1", profileRace("2025-03-02T19:00:00Z", "GT", first))
	proc.ProcessRace("r2", profileRace("2025-03-09T19:00:00Z", "GT", second))

	profiles := proc.Profiles()
	require.Len(t, profiles, 1)
	require.NotNil(t, profiles[0].Rating)
	assert.Equal(t, 2000, profiles[0].Rating.Rating)
	assert.InDelta(t, 3.5, profiles[0].Rating.SafetyRating, 0.001)
}

func TestProfiles_RankedByPoints(t *testing.T) {
	proc := NewProfileProcessor(WithProfilePointsEngine(testEngine()))
	proc.ProcessRace("r1", profileRace("2025-03-02T19:00:00Z", "GT",
		driver("Bob", 1), driver("Alice", 0)))

	profiles := proc.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "Alice", profiles[0].DriverName)
	assert.Equal(t, "Bob", profiles[1].DriverName)
}
