package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	SubsCommitted      prometheus.Counter
	SubsRejected       prometheus.Counter
	FormationChanges   prometheus.Counter
	SnapshotWrites     prometheus.Counter
	SnapshotFailures   prometheus.Counter
	ClockRunning       prometheus.Gauge
	PlayersOnField     prometheus.Gauge
	StartupTimeSeconds prometheus.Gauge
}
