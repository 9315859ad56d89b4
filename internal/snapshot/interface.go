package snapshot

import "github.com/mauv0809/touchline/internal/match"

// Store defines the interface for durable match-state persistence.
type Store interface {
	// Save writes the snapshot for the fixed namespace, replacing any
	// previous one.
	Save(snap match.Snapshot) error
	// Load reads the persisted snapshot. ok is false when nothing usable is
	// stored (missing row, schema-version mismatch or an undecodable blob)
	// in which case the engine starts from its default state.
	Load() (snap match.Snapshot, ok bool, err error)
	// Clear drops the persisted snapshot.
	Clear() error
}
