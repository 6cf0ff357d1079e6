package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/virtualgrid/league-results-go/log"
	"github.com/virtualgrid/league-results-go/pkg/csvexport"
	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/results"
)

const defaultConcurrency = 8

// LoadedEvent is the outcome of loading one catalog entry. A failed entry
// carries its error here; one broken file never aborts the whole catalog.
type LoadedEvent struct {
	Entry model.IndexEntry
	Event *model.EventResult
	Err   error
}

type loadOptions struct {
	concurrency int
}

type LoadOption func(o *loadOptions)

func WithConcurrency(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// LoadEvents loads all referenced result files concurrently. The returned
// slice preserves catalog order regardless of load completion order.
func (c *Catalog) LoadEvents(ctx context.Context, opts ...LoadOption) ([]LoadedEvent, error) {
	cfg := loadOptions{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	ret := make([]LoadedEvent, len(c.Entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for i := range c.Entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := c.Entries[i]
			ev, err := c.loadEntry(&entry)
			if err != nil {
				log.Default().Named("catalog").Warn("could not load result",
					log.String("id", entry.ID),
					log.String("file", entry.File),
					log.ErrorField(err))
			}
			ret[i] = LoadedEvent{Entry: entry, Event: ev, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadEvent loads a single catalog entry by id.
func (c *Catalog) LoadEvent(id string) (*LoadedEvent, error) {
	entry, err := c.Entry(id)
	if err != nil {
		return nil, err
	}
	ev, err := c.loadEntry(entry)
	return &LoadedEvent{Entry: *entry, Event: ev, Err: err}, nil
}

func (c *Catalog) loadEntry(entry *model.IndexEntry) (*model.EventResult, error) {
	data, err := os.ReadFile(c.resolvePath(entry))
	if err != nil {
		return nil, err
	}
	var ev *model.EventResult
	if strings.EqualFold(filepath.Ext(entry.File), ".csv") {
		ev, err = csvexport.ParseExport(string(data))
	} else {
		ev, err = results.UnwrapString(string(data))
	}
	if err != nil {
		return nil, err
	}
	applyOverrides(entry, ev)
	return ev, nil
}

// applyOverrides lets the catalog entry win over the values embedded in
// the event file.
func applyOverrides(entry *model.IndexEntry, ev *model.EventResult) {
	if entry.Track != "" {
		ev.Track.Name = entry.Track
	}
	if entry.Layout != "" {
		ev.Track.Config = entry.Layout
	}
	if entry.Date != "" && ev.StartTime == "" {
		ev.StartTime = entry.Date
	}
}
