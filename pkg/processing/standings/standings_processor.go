// Package standings folds resolved race results into season standings and
// driver profiles.
package standings

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/finish"
	"github.com/virtualgrid/league-results-go/pkg/processing/identity"
	"github.com/virtualgrid/league-results-go/pkg/processing/points"
	"github.com/virtualgrid/league-results-go/pkg/results"
)

// Processor accumulates per-driver season standings. The accumulator is
// owned by its creator: fold each race exactly once, folding the same race
// twice double-counts.
type Processor struct {
	engine   *points.Engine
	roster   identity.Roster
	rows     map[string]*model.StandingRow
	collator *collate.Collator
}

type ProcessorOption func(p *Processor)

func WithPointsEngine(e *points.Engine) ProcessorOption {
	return func(p *Processor) {
		p.engine = e
	}
}

func WithRoster(r identity.Roster) ProcessorOption {
	return func(p *Processor) {
		p.roster = r
	}
}

func WithCollation(tag language.Tag) ProcessorOption {
	return func(p *Processor) {
		p.collator = collate.New(tag)
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		engine:   points.NewEngine(),
		roster:   identity.Roster{},
		rows:     make(map[string]*model.StandingRow),
		collator: collate.New(language.English),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ProcessRace folds one race into the standings. Events without a race
// session contribute nothing.
func (p *Processor) ProcessRace(ev *model.EventResult) {
	sess, err := results.FindSession(ev, model.SessionRace)
	if err != nil {
		return
	}
	for _, fr := range finish.Annotate(ev, sess) {
		acc := p.row(&fr.Row)
		acc.Points += p.engine.Resolve(&fr.Row, fr.Position)
		acc.Starts++
		if fr.Position == 1 {
			acc.Wins++
		}
		if fr.Position >= 1 && fr.Position <= 3 {
			acc.Podiums++
		}
	}
}

func (p *Processor) row(raw *model.RawDriverRow) *model.StandingRow {
	key := identity.Key(raw)
	if acc, ok := p.rows[key]; ok {
		return acc
	}
	acc := &model.StandingRow{
		DriverKey:  key,
		DriverName: identity.NormalizeName(raw.DisplayName),
		Team:       p.roster.Team(raw),
	}
	p.rows[key] = acc
	return acc
}

// Standings returns the ranked rows: points desc, wins desc, podiums desc,
// driver name asc (locale aware). This four-key order is a contract;
// changing its priority changes publicly visible rankings.
func (p *Processor) Standings() []model.StandingRow {
	ret := lo.MapToSlice(p.rows,
		func(_ string, v *model.StandingRow) model.StandingRow { return *v })
	slices.SortStableFunc(ret, func(a, b model.StandingRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Podiums, a.Podiums); c != 0 {
			return c
		}
		return p.collator.CompareString(a.DriverName, b.DriverName)
	})
	return ret
}
