package standings

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/finish"
	"github.com/virtualgrid/league-results-go/pkg/processing/identity"
	"github.com/virtualgrid/league-results-go/pkg/processing/points"
	"github.com/virtualgrid/league-results-go/pkg/results"
)

// ProfileProcessor extends the standings fold across series: per driver it
// tracks multi-series totals, the full race history and the latest known
// rating snapshot.
type ProfileProcessor struct {
	engine   *points.Engine
	roster   identity.Roster
	profiles map[string]*profileAcc
	collator *collate.Collator
}

type profileAcc struct {
	profile model.DriverProfile
	series  map[string]struct{}
	// start time of the race currently recorded as the most recent one
	lastStart time.Time
}

type ProfileOption func(p *ProfileProcessor)

func WithProfilePointsEngine(e *points.Engine) ProfileOption {
	return func(p *ProfileProcessor) {
		p.engine = e
	}
}

func WithProfileRoster(r identity.Roster) ProfileOption {
	return func(p *ProfileProcessor) {
		p.roster = r
	}
}

func NewProfileProcessor(opts ...ProfileOption) *ProfileProcessor {
	ret := &ProfileProcessor{
		engine:   points.NewEngine(),
		roster:   identity.Roster{},
		profiles: make(map[string]*profileAcc),
		collator: collate.New(language.English),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ProcessRace folds one race into the profiles. The most recent race is
// decided by start time comparison, not by fold order: a race folded later
// with an earlier timestamp never overwrites a later one.
func (p *ProfileProcessor) ProcessRace(eventID string, ev *model.EventResult) {
	sess, err := results.FindSession(ev, model.SessionRace)
	if err != nil {
		return
	}
	startedAt := ev.StartedAt()
	for _, fr := range finish.Annotate(ev, sess) {
		acc := p.acc(&fr.Row)
		pts := p.engine.Resolve(&fr.Row, fr.Position)

		acc.profile.Points += pts
		acc.profile.Starts++
		if fr.Position == 1 {
			acc.profile.Wins++
		}
		if fr.Position >= 1 && fr.Position <= 3 {
			acc.profile.Podiums++
		}
		if ev.SeriesName != "" {
			acc.series[ev.SeriesName] = struct{}{}
		}

		entry := model.RaceEntry{
			EventID:    eventID,
			SeriesName: ev.SeriesName,
			Track:      ev.Track.Name,
			StartTime:  startedAt,
			Position:   fr.Position,
			Points:     pts,
		}
		acc.profile.History = append(acc.profile.History, entry)

		if acc.profile.LastRace == nil || startedAt.After(acc.lastStart) {
			acc.profile.LastRace = &entry
			acc.lastStart = startedAt
			// ratings are a point-in-time snapshot tied to the most
			// recent race, never merged from older ones
			acc.profile.Rating = mergeRating(acc.profile.Rating, &fr.Row)
		}
	}
}

func (p *ProfileProcessor) acc(raw *model.RawDriverRow) *profileAcc {
	key := identity.Key(raw)
	if acc, ok := p.profiles[key]; ok {
		return acc
	}
	acc := &profileAcc{
		profile: model.DriverProfile{
			DriverKey:  key,
			DriverName: identity.NormalizeName(raw.DisplayName),
			Team:       p.roster.Team(raw),
		},
		series: make(map[string]struct{}),
	}
	p.profiles[key] = acc
	return acc
}

// mergeRating builds the snapshot for the most recent race, keeping the
// previous value for any field the row does not carry.
func mergeRating(prev *model.RatingSnapshot, row *model.RawDriverRow) *model.RatingSnapshot {
	if row.NewiRating == nil && row.NewSubLevel == nil && row.NewLicenseLevel == nil {
		return prev
	}
	ret := model.RatingSnapshot{}
	if prev != nil {
		ret = *prev
	}
	if row.NewiRating != nil {
		ret.Rating = *row.NewiRating
	}
	if row.NewSubLevel != nil {
		// sub level is the safety rating scaled by 100
		ret.SafetyRating = float64(*row.NewSubLevel) / 100
	}
	if row.NewLicenseLevel != nil {
		ret.LicenseGroup = *row.NewLicenseLevel
	}
	return &ret
}

// Profiles returns all driver profiles ranked by total points, history
// newest first.
func (p *ProfileProcessor) Profiles() []model.DriverProfile {
	ret := lo.MapToSlice(p.profiles,
		func(_ string, acc *profileAcc) model.DriverProfile {
			profile := acc.profile
			profile.Series = lo.Keys(acc.series)
			slices.Sort(profile.Series)
			profile.History = slices.Clone(profile.History)
			slices.SortStableFunc(profile.History,
				func(a, b model.RaceEntry) int {
					return b.StartTime.Compare(a.StartTime)
				})
			return profile
		})
	slices.SortStableFunc(ret, func(a, b model.DriverProfile) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return p.collator.CompareString(a.DriverName, b.DriverName)
	})
	return ret
}
