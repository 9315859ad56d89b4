package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SubsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "touchline_subs_committed_total",
			Help: "The total number of substitutions committed to the event log.",
		}),
		SubsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "touchline_subs_rejected_total",
			Help: "The total number of substitutions rejected by the on-field cap.",
		}),
		FormationChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "touchline_formation_changes_total",
			Help: "The total number of formation switches.",
		}),
		SnapshotWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "touchline_snapshot_writes_total",
			Help: "The total number of state snapshots written to durable storage.",
		}),
		SnapshotFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "touchline_snapshot_failures_total",
			Help: "The total number of snapshot writes that failed.",
		}),
		ClockRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "touchline_clock_running",
			Help: "Whether the match clock is currently running (1) or paused (0).",
		}),
		PlayersOnField: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "touchline_players_on_field",
			Help: "The number of players currently on the field.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "touchline_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SubsCommitted,
		s.SubsRejected,
		s.FormationChanges,
		s.SnapshotWrites,
		s.SnapshotFailures,
		s.ClockRunning,
		s.PlayersOnField,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSubsCommitted() {
	s.SubsCommitted.Inc()
}

func (s *Service) IncSubsRejected() {
	s.SubsRejected.Inc()
}

func (s *Service) IncFormationChanges() {
	s.FormationChanges.Inc()
}

func (s *Service) IncSnapshotWrites() {
	s.SnapshotWrites.Inc()
}

func (s *Service) IncSnapshotFailures() {
	s.SnapshotFailures.Inc()
}

func (s *Service) SetClockRunning(running bool) {
	if running {
		s.ClockRunning.Set(1)
	} else {
		s.ClockRunning.Set(0)
	}
}

func (s *Service) SetPlayersOnField(count int) {
	s.PlayersOnField.Set(float64(count))
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
