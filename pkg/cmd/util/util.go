// Package util holds the shared setup for the CLI commands.
package util

import (
	"context"
	"fmt"
	"os"

	"github.com/virtualgrid/league-results-go/log"
	"github.com/virtualgrid/league-results-go/pkg/catalog"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/pkg/processing/identity"
	"github.com/virtualgrid/league-results-go/pkg/processing/points"
)

// Env bundles the externally authored inputs after loading.
type Env struct {
	Catalog *catalog.Catalog
	Events  []catalog.LoadedEvent
	Roster  identity.Roster
	Engine  *points.Engine
}

// InitLogger installs the default logger according to the CLI config.
func InitLogger() {
	switch config.LogFormat {
	case "json":
		log.ResetDefault(log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1)))
	default:
		log.ResetDefault(log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1)))
	}
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// Setup loads catalog, events, roster and points configuration.
func Setup(ctx context.Context) (*Env, error) {
	cat, err := catalog.Load(config.Catalog)
	if err != nil {
		return nil, err
	}
	events, err := cat.LoadEvents(ctx, catalog.WithConcurrency(config.MaxLoads))
	if err != nil {
		return nil, err
	}
	roster, err := catalog.LoadRoster(config.Roster)
	if err != nil {
		return nil, err
	}
	table, err := points.ParseTable(config.PointsScheme)
	if err != nil {
		return nil, err
	}
	return &Env{
		Catalog: cat,
		Events:  events,
		Roster:  roster,
		Engine: points.NewEngine(
			points.WithTable(table),
			points.WithPointsForDNF(config.PointsForDNF)),
	}, nil
}

// EventTitle renders the display title of a loaded event.
func EventTitle(le *catalog.LoadedEvent) string {
	if le.Entry.Title != "" {
		return le.Entry.Title
	}
	if le.Event != nil && le.Event.Track.Name != "" {
		return fmt.Sprintf("%s (%s)", le.Event.Track.Name, le.Event.StartTime)
	}
	return le.Entry.ID
}
