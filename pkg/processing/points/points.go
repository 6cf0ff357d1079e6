// Package points maps finish positions to championship points.
package points

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/results"
)

// Table holds points by 1-based finish position. Index 0 is unused,
// positions beyond the table earn zero.
type Table []int

// ParseTable builds a table from a comma separated list of points,
// winner first (e.g. "25,18,15").
func ParseTable(scheme string) (Table, error) {
	parts := strings.Split(scheme, ",")
	ret := make(Table, 1, len(parts)+1)
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid points scheme %q: %w", scheme, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

type Engine struct {
	table        Table
	tail         int
	pointsForDNF bool
}

type Option func(e *Engine)

func WithTable(t Table) Option {
	return func(e *Engine) {
		e.table = t
	}
}

// WithTailPoints sets the points earned by every position beyond the
// table's length (default zero).
func WithTailPoints(n int) Option {
	return func(e *Engine) {
		e.tail = n
	}
}

// WithPointsForDNF controls whether non-finishers still earn position
// based points.
func WithPointsForDNF(b bool) Option {
	return func(e *Engine) {
		e.pointsForDNF = b
	}
}

func NewEngine(opts ...Option) *Engine {
	ret := &Engine{pointsForDNF: true}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ForPosition looks up the points for a 1-based finish position.
// Positions beyond the table earn the tail value.
func (e *Engine) ForPosition(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(e.table) {
		return e.tail
	}
	return e.table[pos]
}

// Resolve returns the points a row earns at the given 1-based position.
// Organizer assigned points carried by the row itself win over the table.
func (e *Engine) Resolve(row *model.RawDriverRow, pos int) float64 {
	if v, ok := results.AuthoritativePoints(row); ok {
		return v
	}
	if !e.pointsForDNF && isDNF(row) {
		return 0
	}
	return float64(e.ForPosition(pos))
}

func isDNF(row *model.RawDriverRow) bool {
	return row.ReasonOut != "" && !strings.EqualFold(row.ReasonOut, "Running")
}
