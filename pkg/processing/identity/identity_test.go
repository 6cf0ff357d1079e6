package identity

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alice Smith", "Alice Smith"},
		{"padded", "  Alice Smith  ", "Alice Smith"},
		{"inner runs collapse", "Alice   \t Smith", "Alice Smith"},
		{"empty", "", UnknownDriver},
		{"whitespace only", "   ", UnknownDriver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestKey(t *testing.T) {
	withID := model.RawDriverRow{CustID: lo.ToPtr(int64(4711)), DisplayName: "Alice"}
	assert.Equal(t, "4711", Key(&withID))

	nameOnly := model.RawDriverRow{DisplayName: " Alice  Smith "}
	assert.Equal(t, "Alice Smith", Key(&nameOnly))

	// records of the same driver with and without an id key differently;
	// this fragmentation is preserved on purpose
	assert.NotEqual(t, Key(&withID), Key(&model.RawDriverRow{DisplayName: "Alice"}))

	empty := model.RawDriverRow{}
	assert.Equal(t, UnknownDriver, Key(&empty))
}

func TestRosterTeam(t *testing.T) {
	roster := Roster{"Alice Smith": "Apex Racing"}

	row := model.RawDriverRow{DisplayName: "Alice   Smith"}
	assert.Equal(t, "Apex Racing", roster.Team(&row))

	unknown := model.RawDriverRow{DisplayName: "Bob"}
	assert.Equal(t, NoTeam, roster.Team(&unknown))
}
