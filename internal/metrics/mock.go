package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	subsCommitted    int
	subsRejected     int
	formationChanges int
	snapshotWrites   int
	snapshotFailures int
	clockRunning     bool
	playersOnField   int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncSubsCommitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subsCommitted++
}

func (m *Mock) IncSubsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subsRejected++
}

func (m *Mock) IncFormationChanges() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.formationChanges++
}

func (m *Mock) IncSnapshotWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotWrites++
}

func (m *Mock) IncSnapshotFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotFailures++
}

func (m *Mock) SetClockRunning(running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clockRunning = running
}

func (m *Mock) SetPlayersOnField(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersOnField = count
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SubsCommitted returns the number of times IncSubsCommitted was called.
func (m *Mock) SubsCommitted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subsCommitted
}

// SubsRejected returns the number of times IncSubsRejected was called.
func (m *Mock) SubsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subsRejected
}

// FormationChanges returns the number of times IncFormationChanges was called.
func (m *Mock) FormationChanges() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.formationChanges
}

// SnapshotWrites returns the number of times IncSnapshotWrites was called.
func (m *Mock) SnapshotWrites() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotWrites
}

// SnapshotFailures returns the number of times IncSnapshotFailures was called.
func (m *Mock) SnapshotFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotFailures
}

// ClockRunning returns the last value passed to SetClockRunning.
func (m *Mock) ClockRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clockRunning
}

// PlayersOnField returns the last value passed to SetPlayersOnField.
func (m *Mock) PlayersOnField() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersOnField
}
