package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // by design
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/virtualgrid/league-results-go/log"
	"github.com/virtualgrid/league-results-go/pkg/catalog"
	"github.com/virtualgrid/league-results-go/pkg/cmd/util"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/finish"
	"github.com/virtualgrid/league-results-go/pkg/processing/standings"
	"github.com/virtualgrid/league-results-go/pkg/results"
)

const shutdownTimeout = 5 * time.Second

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "starts the HTTP server providing standings and results as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			util.InitLogger()
			return startServer(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&config.HTTPServerAddr,
		"http-addr",
		"a",
		"localhost:8080",
		"HTTP server listen address")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port",
		0,
		"port to use for providing profiling data")
	return cmd
}

func startServer(ctx context.Context) error {
	if config.ProfilingPort > 0 {
		log.Info("Starting profiling server", log.Int("port", config.ProfilingPort))
		go func() {
			//nolint:gosec // by design
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort),
				nil)
			if err != nil {
				log.Error("Profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	s := &resultsServer{log: log.Default().Named("server")}
	//nolint:gosec // timeouts handled via shutdown
	server := &http.Server{
		Addr:    config.HTTPServerAddr,
		Handler: newCORS().Handler(s.routes()),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", log.String("addr", config.HTTPServerAddr))
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		log.Error("server could not be started", log.ErrorField(err))
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server terminated")
	return nil
}

type resultsServer struct {
	log *log.Logger
}

func (s *resultsServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", s.handleEvents)
	mux.HandleFunc("GET /api/events/{id}/result", s.handleEventResult)
	mux.HandleFunc("GET /api/standings", s.handleStandings)
	mux.HandleFunc("GET /api/profiles", s.handleProfiles)
	return mux
}

// setup reloads catalog and configuration. Every request recomputes from
// the source files; there is no cross-request cache.
func (s *resultsServer) setup(w http.ResponseWriter, req *http.Request) *util.Env {
	env, err := util.Setup(req.Context())
	if err != nil {
		s.log.Error("setup failed", log.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "could not load catalog")
		return nil
	}
	return env
}

func (s *resultsServer) handleEvents(w http.ResponseWriter, req *http.Request) {
	env := s.setup(w, req)
	if env == nil {
		return
	}
	writeJSON(w, env.Catalog.Entries)
}

func (s *resultsServer) handleEventResult(w http.ResponseWriter, req *http.Request) {
	env := s.setup(w, req)
	if env == nil {
		return
	}
	le, err := env.Catalog.LoadEvent(req.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}
	if le.Err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid result file")
		return
	}
	type sessionView struct {
		Name string            `json:"name"`
		Rows []model.FinishRow `json:"rows"`
	}
	ret := struct {
		Entry    model.IndexEntry `json:"entry"`
		Track    model.Track      `json:"track"`
		Series   string           `json:"series"`
		Sessions []sessionView    `json:"sessions"`
	}{Entry: le.Entry, Track: le.Event.Track, Series: le.Event.SeriesName}
	for _, name := range []string{model.SessionQualify, model.SessionRace} {
		sess, err := results.FindSession(le.Event, name)
		if err != nil {
			// missing session renders as empty, not as failure
			continue
		}
		ret.Sessions = append(ret.Sessions, sessionView{
			Name: name,
			Rows: finish.Annotate(le.Event, sess),
		})
	}
	writeJSON(w, ret)
}

func (s *resultsServer) handleStandings(w http.ResponseWriter, req *http.Request) {
	env := s.setup(w, req)
	if env == nil {
		return
	}
	proc := standings.NewProcessor(
		standings.WithPointsEngine(env.Engine),
		standings.WithRoster(env.Roster))
	forEachLoaded(env.Events, func(le *catalog.LoadedEvent) {
		proc.ProcessRace(le.Event)
	})
	writeJSON(w, proc.Standings())
}

func (s *resultsServer) handleProfiles(w http.ResponseWriter, req *http.Request) {
	env := s.setup(w, req)
	if env == nil {
		return
	}
	proc := standings.NewProfileProcessor(
		standings.WithProfilePointsEngine(env.Engine),
		standings.WithProfileRoster(env.Roster))
	forEachLoaded(env.Events, func(le *catalog.LoadedEvent) {
		proc.ProcessRace(le.Entry.ID, le.Event)
	})
	writeJSON(w, proc.Profiles())
}

func forEachLoaded(events []catalog.LoadedEvent, fn func(le *catalog.LoadedEvent)) {
	for i := range events {
		if events[i].Err != nil {
			continue
		}
		fn(&events[i])
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil &&
		!errors.Is(err, http.ErrHandlerTimeout) {
		log.Default().Named("server").Warn("could not write response",
			log.ErrorField(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best effort
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func newCORS() *cors.Cors {
	// read-only API, allow any origin to fetch it
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodHead, http.MethodGet},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		MaxAge:         int(2 * time.Hour / time.Second),
	})
}
