package results

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

func TestShape(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want DocumentShape
	}{
		{
			"wrapped",
			map[string]any{"type": "result", "data": map[string]any{"session_results": []any{}}},
			ShapeWrapped,
		},
		{
			"unwrapped",
			map[string]any{"session_results": []any{}},
			ShapeUnwrapped,
		},
		{"empty object", map[string]any{}, ShapeInvalid},
		{"scalar", "nope", ShapeInvalid},
		{"nil", nil, ShapeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shape(tt.doc))
		})
	}
}

func TestUnwrap_Wrapped(t *testing.T) {
	doc := map[string]any{
		"type": "result",
		"data": map[string]any{
			"series_name":     "GT Sprint",
			"session_results": []any{},
		},
	}
	ev, err := Unwrap(doc)
	require.NoError(t, err)
	assert.Equal(t, "GT Sprint", ev.SeriesName)
	assert.Equal(t, model.OriginJSON, ev.Origin)
}

func TestUnwrap_Unwrapped(t *testing.T) {
	doc := map[string]any{
		"series_name":     "GT Sprint",
		"session_results": []any{},
	}
	ev, err := Unwrap(doc)
	require.NoError(t, err)
	assert.Equal(t, "GT Sprint", ev.SeriesName)
}

func TestUnwrap_Invalid(t *testing.T) {
	_, err := Unwrap(map[string]any{})
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestUnwrapString(t *testing.T) {
	jsonText := `{
	  "type": "result",
	  "data": {
	    "start_time": "2025-03-02T19:00:00Z",
	    "track": {"track_name": "Monza", "config_name": "Grand Prix"},
	    "session_results": [
	      {"simsession_name": "RACE",
	       "results": [
	         {"cust_id": 4711, "display_name": "Alice", "finish_position": 0,
	          "interval": 0, "best_lap_time": 1383340}
	       ]}
	    ]
	  }
	}`
	ev, err := UnwrapString(jsonText)
	require.NoError(t, err)
	assert.Equal(t, "Monza", ev.Track.Name)
	require.Len(t, ev.SessionResults, 1)
	require.Len(t, ev.SessionResults[0].Results, 1)
	row := ev.SessionResults[0].Results[0]
	require.NotNil(t, row.CustID)
	assert.Equal(t, int64(4711), *row.CustID)
	require.NotNil(t, row.FinishPosition)
	assert.Equal(t, 0, *row.FinishPosition)
}

func TestUnwrapString_Garbage(t *testing.T) {
	_, err := UnwrapString("{not json")
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestFindSession(t *testing.T) {
	ev := &model.EventResult{SessionResults: []model.Session{
		{SimsessionName: "Qualify"},
		{SimsessionName: "race"},
	}}

	sess, err := FindSession(ev, model.SessionRace)
	require.NoError(t, err)
	assert.Equal(t, "race", sess.SimsessionName)

	sess, err = FindSession(ev, model.SessionQualify)
	require.NoError(t, err)
	assert.Equal(t, "Qualify", sess.SimsessionName)

	_, err = FindSession(ev, "WARMUP")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFinishPos(t *testing.T) {
	row := model.RawDriverRow{}
	_, ok := FinishPos(&row)
	assert.False(t, ok)

	row.FinishPosition = lo.ToPtr(3)
	pos, ok := FinishPos(&row)
	assert.True(t, ok)
	assert.Equal(t, 3, pos)

	// class scoped position wins over the overall one
	row.FinishPositionInClass = lo.ToPtr(1)
	pos, _ = FinishPos(&row)
	assert.Equal(t, 1, pos)
}

func TestAuthoritativePoints(t *testing.T) {
	row := model.RawDriverRow{}
	_, ok := AuthoritativePoints(&row)
	assert.False(t, ok)

	row.Points = lo.ToPtr(5.0)
	v, ok := AuthoritativePoints(&row)
	assert.True(t, ok)
	assert.InDelta(t, 5.0, v, 0.001)

	// champ points rank first in the fallback chain
	row.ChampPoints = lo.ToPtr(30.0)
	v, _ = AuthoritativePoints(&row)
	assert.InDelta(t, 30.0, v, 0.001)
}
