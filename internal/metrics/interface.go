package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the engine from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncSubsCommitted()
	IncSubsRejected()
	IncFormationChanges()
	IncSnapshotWrites()
	IncSnapshotFailures()
	SetClockRunning(running bool)
	SetPlayersOnField(count int)
	SetStartupTime(duration float64)
}
