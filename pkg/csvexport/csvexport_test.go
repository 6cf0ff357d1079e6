//nolint:lll // test data
package csvexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"trims fields", " a , b ,c ", []string{"a", "b", "c"}},
		{"quoted comma", `"Martin, Jr.",42`, []string{"Martin, Jr.", "42"}},
		{"doubled quotes", `"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{"trailing empty field", "a,b,", []string{"a", "b", ""}},
		{"single field no comma", "alone", []string{"alone"}},
		{"empty line", "", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}

func TestPreamble(t *testing.T) {
	lines := []string{
		"some banner",
		`"Start Time","Track","Series","Hosted Session Name"`,
		`"2025-03-02 19:00","Monza","GT Sprint","VRL Night Race"`,
	}
	pre, err := Preamble(lines)
	require.NoError(t, err)
	assert.Equal(t, "Monza", pre["Track"])
	assert.Equal(t, "GT Sprint", pre["Series"])
	assert.Equal(t, "2025-03-02 19:00", pre["Start Time"])
}

func TestPreamble_MissingValuesPadded(t *testing.T) {
	lines := []string{
		`Start Time,Track,Series`,
		`"2025-03-02 19:00","Monza"`,
	}
	pre, err := Preamble(lines)
	require.NoError(t, err)
	assert.Equal(t, "", pre["Series"])
}

func TestPreamble_NotFound(t *testing.T) {
	_, err := Preamble([]string{"Fin Pos,Name", "1,Alice"})
	assert.ErrorIs(t, err, ErrPreambleNotFound)
}

func TestResultsTable(t *testing.T) {
	lines := []string{
		`"Start Time","Track"`,
		`"2025-03-02","Monza"`,
		``,
		`"Fin Pos","Name","Car"`,
		`"1","Alice","Dallara P217"`,
		`"2","Bob","Dallara P217"`,
		``,
		`"Fin Pos","Name","Car"`,
		`"1","Ignored","Ignored"`,
	}
	rows, err := ResultsTable(lines)
	require.NoError(t, err)
	// the second table block after the blank line is ignored
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0]["Name"])
	assert.Equal(t, "2", rows[1]["Fin Pos"])
}

func TestResultsTable_SingleRowThenBlank(t *testing.T) {
	lines := []string{
		"Fin Pos,Driver,Car",
		"1,Alice,MX-5",
		"",
	}
	rows, err := ResultsTable(lines)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0]["Fin Pos"])
	assert.Equal(t, "Alice", rows[0]["Driver"])
	assert.Equal(t, "MX-5", rows[0]["Car"])
}

func TestResultsTable_ShortRowsPadded(t *testing.T) {
	lines := []string{
		"Fin Pos,Name,Car",
		"1,Alice",
	}
	rows, err := ResultsTable(lines)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["Car"])
}

func TestResultsTable_NotFound(t *testing.T) {
	_, err := ResultsTable([]string{"Start Time,Track", "now,Monza"})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestColumn(t *testing.T) {
	row := map[string]string{
		`"Fin Pos"`: "1",
		"NAME":      "Alice",
		"car":       "MX-5",
		"Interval":  "12.345",
	}
	for logical, want := range map[string]string{
		ColFinPos:  "1",
		ColDriver:  "Alice",
		ColCar:     "MX-5",
		ColTimeGap: "12.345",
	} {
		v, ok := Column(row, logical)
		assert.True(t, ok, logical)
		assert.Equal(t, want, v, logical)
	}
	_, ok := Column(row, ColPoints)
	assert.False(t, ok)
}
