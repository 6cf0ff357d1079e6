package csvexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

const sampleExport = `"Start Time","Track","Config","Series","Hosted Session Name"
"2025-03-02 19:00","Monza","Grand Prix","GT Sprint","VRL Night Race"

"Fin Pos","Cust ID","Name","Car","Start Pos","Interval","Fastest Lap Time","# Laps","Incidents","Out","Points"
"1","4711","Alice","Dallara P217","3","0","1:23.456","24","2","Running","25"
"2","4712","Bob","Dallara P217","1","12.345","1:23.901","24","0","Running","18"
"3","","Carol  Jones","Dallara P217","2","1:02.500","","23","4","Disconnected","15"
`

func TestParseExport(t *testing.T) {
	ev, err := ParseExport(sampleExport)
	require.NoError(t, err)

	assert.Equal(t, model.OriginCSV, ev.Origin)
	assert.Equal(t, "Monza", ev.Track.Name)
	assert.Equal(t, "Grand Prix", ev.Track.Config)
	assert.Equal(t, "GT Sprint", ev.SeriesName)
	assert.Equal(t, "VRL Night Race", ev.SeasonName)

	require.Len(t, ev.SessionResults, 1)
	sess := ev.SessionResults[0]
	assert.Equal(t, model.SessionRace, sess.SimsessionName)
	require.Len(t, sess.Results, 3)

	winner := sess.Results[0]
	require.NotNil(t, winner.FinishPosition)
	// CSV positions are 1-based, canonical form is 0-based
	assert.Equal(t, 0, *winner.FinishPosition)
	require.NotNil(t, winner.CustID)
	assert.Equal(t, int64(4711), *winner.CustID)
	require.NotNil(t, winner.Interval)
	assert.InDelta(t, 0.0, *winner.Interval, 0.0001)
	require.NotNil(t, winner.BestLapTime)
	assert.InDelta(t, 83.456, *winner.BestLapTime, 0.0001)
	require.NotNil(t, winner.Points)
	assert.InDelta(t, 25.0, *winner.Points, 0.0001)

	third := sess.Results[2]
	assert.Nil(t, third.CustID)
	assert.Equal(t, "Carol  Jones", third.DisplayName)
	assert.Equal(t, "Disconnected", third.ReasonOut)
	require.NotNil(t, third.Interval)
	assert.InDelta(t, 62.5, *third.Interval, 0.0001)
	assert.Nil(t, third.BestLapTime)
}

func TestParseExport_NoPreamble(t *testing.T) {
	ev, err := ParseExport("Fin Pos,Name\n1,Alice\n")
	require.NoError(t, err)
	assert.Empty(t, ev.Track.Name)
	require.Len(t, ev.SessionResults, 1)
	assert.Len(t, ev.SessionResults[0].Results, 1)
}

func TestParseExport_NoTable(t *testing.T) {
	_, err := ParseExport("Start Time,Track\nnow,Monza\n")
	assert.ErrorIs(t, err, ErrTableNotFound)
}
