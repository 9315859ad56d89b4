package http

import (
	"net/http"

	"github.com/mauv0809/touchline/internal/config"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/mauv0809/touchline/internal/snapshot"
)

func NewServer(engine match.MatchEngine, snapshots snapshot.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, ring *diag.Ring) *Server {
	server := &Server{
		Engine:         engine,
		Snapshots:      snapshots,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Ring:           ring,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/state", Chain(s.StateHandler(), paramsMiddleware))
	s.Router.Handle("/roster", Chain(s.RosterHandler(), paramsMiddleware))
	s.Router.Handle("/roster/toggle", Chain(s.ToggleStarterHandler(), paramsMiddleware))
	s.Router.Handle("/roster/import", Chain(s.ImportRosterHandler(), paramsMiddleware))
	s.Router.Handle("/roster/export", Chain(s.ExportRosterHandler(), paramsMiddleware))
	s.Router.Handle("/export/minutes", Chain(s.ExportMinutesHandler(), paramsMiddleware))
	s.Router.Handle("/export/subs", Chain(s.ExportSubsHandler(), paramsMiddleware))
	s.Router.Handle("/clock/start", Chain(s.StartClockHandler(), paramsMiddleware))
	s.Router.Handle("/clock/pause", Chain(s.PauseClockHandler(), paramsMiddleware))
	s.Router.Handle("/clock/reset", Chain(s.ResetClockHandler(), paramsMiddleware))
	s.Router.Handle("/clock/set", Chain(s.SetClockHandler(), paramsMiddleware))
	s.Router.Handle("/subclock/reset", Chain(s.ResetSubClockHandler(), paramsMiddleware))
	s.Router.Handle("/sub", Chain(s.MakeSubHandler(), paramsMiddleware))
	s.Router.Handle("/queue", Chain(s.QueueHandler(), paramsMiddleware))
	s.Router.Handle("/queue/perform", Chain(s.PerformSubsHandler(), paramsMiddleware))
	s.Router.Handle("/formation", Chain(s.FormationHandler(), paramsMiddleware))
	s.Router.Handle("/slots/assign", Chain(s.AssignSlotHandler(), paramsMiddleware))
	s.Router.Handle("/slots/swap", Chain(s.SwapSlotsHandler(), paramsMiddleware))
	s.Router.Handle("/slots/move", Chain(s.MoveSlotHandler(), paramsMiddleware))
	s.Router.Handle("/slots/place", Chain(s.PlaceInSlotHandler(), paramsMiddleware))
	s.Router.Handle("/slots/bench", Chain(s.BenchHandler(), paramsMiddleware))
	s.Router.Handle("/slots/eligible", Chain(s.SlotSuggestionsHandler(), paramsMiddleware))
	s.Router.Handle("/stat", Chain(s.StatHandler(), paramsMiddleware))
	s.Router.Handle("/config", Chain(s.ConfigHandler(), paramsMiddleware))
	s.Router.Handle("/reset", Chain(s.ResetMatchHandler(), paramsMiddleware))
	s.Router.Handle("/debug", Chain(s.DebugExportHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
