package snapshot

import (
	"database/sql"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/vmihailenco/msgpack/v5"
)

// Namespace keys the single snapshot row this tool keeps.
const Namespace = "touchline"

// store handles all database operations for the durable state snapshot.
type store struct {
	db      *sql.DB
	mu      sync.RWMutex
	now     func() int64
	metrics metrics.Metrics
	ring    *diag.Ring
}

// New creates a snapshot Store on the given database.
func New(db *sql.DB, m metrics.Metrics, ring *diag.Ring) Store {
	if m == nil {
		m = metrics.NewMock()
	}
	if ring == nil {
		ring = diag.NewRing(0)
	}
	return &store{db: db, now: unixNow, metrics: m, ring: ring}
}

func (s *store) Save(snap match.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Version = match.SchemaVersion
	blob, err := msgpack.Marshal(snap)
	if err != nil {
		log.Error("Failed to encode snapshot", "error", err)
		s.metrics.IncSnapshotFailures()
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (namespace, version, state, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET
			version = excluded.version,
			state = excluded.state,
			updated_at = excluded.updated_at;
	`, Namespace, snap.Version, blob, s.now())
	if err != nil {
		log.Error("Failed to write snapshot", "error", err)
		s.metrics.IncSnapshotFailures()
		return err
	}
	s.metrics.IncSnapshotWrites()
	return nil
}

func (s *store) Load() (match.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var version int
	var blob []byte
	err := s.db.QueryRow(
		"SELECT version, state FROM snapshots WHERE namespace = ?", Namespace,
	).Scan(&version, &blob)
	if err == sql.ErrNoRows {
		return match.Snapshot{}, false, nil
	}
	if err != nil {
		return match.Snapshot{}, false, err
	}

	if version != match.SchemaVersion {
		log.Warn("Persisted snapshot has unsupported schema version, starting fresh", "version", version, "want", match.SchemaVersion)
		s.ring.Warn("snapshot schema version mismatch", map[string]any{"version": version, "want": match.SchemaVersion})
		return match.Snapshot{}, false, nil
	}

	var snap match.Snapshot
	if err := msgpack.Unmarshal(blob, &snap); err != nil {
		log.Error("Failed to decode persisted snapshot, starting fresh", "error", err)
		s.ring.Error("snapshot decode failed", map[string]any{"error": err.Error()})
		return match.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM snapshots WHERE namespace = ?", Namespace)
	if err != nil {
		log.Error("Failed to clear snapshot", "error", err)
	}
	return err
}

// Writer returns an engine subscriber that persists every state change.
// The write runs on the notification goroutine and is never awaited by the
// mutator that triggered it.
func Writer(s Store) func(match.Snapshot) {
	return func(snap match.Snapshot) {
		if err := s.Save(snap); err != nil {
			log.Error("Snapshot write-back failed", "error", err)
		}
	}
}

func unixNow() int64 {
	return time.Now().Unix()
}
