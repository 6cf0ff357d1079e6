// Package identity collapses the free-text driver names of the vendor
// exports into stable aggregation keys.
package identity

import (
	"strconv"
	"strings"

	"github.com/virtualgrid/league-results-go/pkg/model"
)

// UnknownDriver buckets rows that carry neither a customer id nor a
// display name. Multiple such rows collapse into one entry; this is an
// accepted limitation of the source data.
const UnknownDriver = "Unknown Driver"

// NoTeam is the sentinel for drivers without a roster entry.
const NoTeam = "—"

// NormalizeName trims the name and collapses internal whitespace runs to
// single spaces. Empty input becomes the UnknownDriver placeholder.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return UnknownDriver
	}
	return strings.Join(fields, " ")
}

// Key returns the canonical aggregation key of a row: the customer id when
// present, otherwise the normalized display name. The two key kinds are
// not interchangeable; a driver whose records switch between them
// aggregates into separate buckets.
func Key(row *model.RawDriverRow) string {
	if row.CustID != nil {
		return strconv.FormatInt(*row.CustID, 10)
	}
	return NormalizeName(row.DisplayName)
}

// Roster maps normalized driver names to team names.
type Roster map[string]string

// Team resolves the team of a row's driver, NoTeam when absent.
func (r Roster) Team(row *model.RawDriverRow) string {
	if team, ok := r[NormalizeName(row.DisplayName)]; ok && team != "" {
		return team
	}
	return NoTeam
}
