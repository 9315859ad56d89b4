package match

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/metrics"
)

// engine owns all live match state. There is exactly one source of truth:
// mutators update state under the lock and notify subscribers afterwards,
// reads copy out so callers never alias internal slices.
type engine struct {
	mu  sync.RWMutex
	now func() time.Time

	metrics metrics.Metrics
	ring    *diag.Ring

	roster    []Player
	subs      []SubEvent
	tactics   []TacticsSlot
	formation formation.ID
	clock     ClockState
	subClock  ClockState
	gameClock ClockState
	config    Config
	queue     []SubRequest

	listeners []func(Snapshot)
}

// Option configures the engine at construction time.
type Option func(*engine)

// WithNow overrides the wall-clock source. Tests use this to drive the
// clock deterministically.
func WithNow(now func() time.Time) Option {
	return func(e *engine) { e.now = now }
}

// WithMetrics wires a metrics collector.
func WithMetrics(m metrics.Metrics) Option {
	return func(e *engine) { e.metrics = m }
}

// WithRing wires the diagnostic ring that mirrors engine warnings for
// offline bug reports.
func WithRing(r *diag.Ring) Option {
	return func(e *engine) { e.ring = r }
}

// New creates an engine with an empty roster, the default formation laid
// out on the board, and all clocks stopped at zero.
func New(opts ...Option) MatchEngine {
	e := &engine{
		now:       time.Now,
		metrics:   metrics.NewMock(),
		ring:      diag.NewRing(0),
		formation: formation.Default,
		config:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.tactics = slotsFor(e.formation)
	return e
}

// slotsFor builds a fresh, unassigned slot set from the catalog. Unknown
// formations yield an empty board.
func slotsFor(id formation.ID) []TacticsSlot {
	layout, ok := formation.Lookup(id)
	if !ok {
		return []TacticsSlot{}
	}
	slots := make([]TacticsSlot, 0, len(layout.Slots))
	for _, def := range layout.Slots {
		slots = append(slots, TacticsSlot{ID: def.ID, GridArea: def.GridArea})
	}
	return slots
}

// nowSec returns the current wall clock in unix seconds.
func (e *engine) nowSec() float64 {
	return float64(e.now().UnixNano()) / float64(time.Second)
}

func (e *engine) playerIndexLocked(id string) int {
	for i := range e.roster {
		if e.roster[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *engine) slotIndexLocked(id string) int {
	for i := range e.tactics {
		if e.tactics[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *engine) onFieldCountLocked() int {
	n := 0
	for i := range e.roster {
		if e.roster[i].OnField {
			n++
		}
	}
	return n
}

// Subscribe registers a listener invoked after every committed mutation.
// Listeners run on their own goroutine and are never awaited; the durable
// write-back hooks in here.
func (e *engine) Subscribe(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// notifyLocked snapshots state under the lock and fans it out without
// blocking the mutator. Gauges are refreshed here so they track every
// mutation path.
func (e *engine) notifyLocked() {
	e.metrics.SetClockRunning(e.clock.Running)
	e.metrics.SetPlayersOnField(e.onFieldCountLocked())
	if len(e.listeners) == 0 {
		return
	}
	snap := e.snapshotLocked()
	listeners := make([]func(Snapshot), len(e.listeners))
	copy(listeners, e.listeners)
	go func() {
		for _, fn := range listeners {
			fn(snap)
		}
	}()
}

func (e *engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:   SchemaVersion,
		Roster:    make([]Player, len(e.roster)),
		Subs:      make([]SubEvent, len(e.subs)),
		Tactics:   make([]TacticsSlot, len(e.tactics)),
		Formation: e.formation,
		Clock:     e.clock,
		Config:    e.config,
	}
	copy(snap.Roster, e.roster)
	copy(snap.Subs, e.subs)
	copy(snap.Tactics, e.tactics)
	for i := range snap.Roster {
		tags := make([]formation.PositionTag, len(e.roster[i].PositionTags))
		copy(tags, e.roster[i].PositionTags)
		snap.Roster[i].PositionTags = tags
	}
	return snap
}

// Snapshot returns a deep copy of the durable state.
func (e *engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// Restore replaces engine state with a persisted snapshot. The tactics
// board is always rederived from the persisted formation rather than
// trusted as-is, so a corrupt or stale board self-heals to an empty one
// and every player comes back benched.
func (e *engine) Restore(snap Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.formation = snap.Formation
	if _, ok := formation.Lookup(e.formation); !ok {
		log.Warn("Unknown persisted formation, falling back to default", "formation", snap.Formation)
		e.ring.Warn("unknown persisted formation", map[string]any{"formation": string(snap.Formation)})
		e.formation = formation.Default
	}

	e.roster = make([]Player, 0, len(snap.Roster))
	for _, p := range snap.Roster {
		if p.MinutesPlayedSec < 0 {
			p.MinutesPlayedSec = 0
		}
		p.OnField = false
		e.roster = append(e.roster, p)
	}
	e.subs = make([]SubEvent, len(snap.Subs))
	copy(e.subs, snap.Subs)
	e.clock = snap.Clock
	if snap.Config.MaxOnField > 0 {
		e.config = snap.Config
	} else {
		e.config = DefaultConfig()
	}
	e.tactics = slotsFor(e.formation)
	e.queue = nil

	log.Info("Restored match state", "players", len(e.roster), "subs", len(e.subs), "formation", e.formation)
	e.notifyLocked()
}

// Config returns the current match configuration.
func (e *engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// SetConfig applies a partial configuration update.
func (e *engine) SetConfig(patch ConfigPatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if patch.MaxOnField != nil && *patch.MaxOnField > 0 {
		e.config.MaxOnField = *patch.MaxOnField
	}
	if patch.RotationIntervalMinutes != nil && *patch.RotationIntervalMinutes > 0 {
		e.config.RotationIntervalMinutes = *patch.RotationIntervalMinutes
	}
	if patch.MatchTimeMinutes != nil && *patch.MatchTimeMinutes > 0 {
		e.config.MatchTimeMinutes = *patch.MatchTimeMinutes
	}
	e.notifyLocked()
}

// ResetMatch clears everything about the current match but keeps the
// roster (with zeroed minutes, counters and flags) and the configuration.
func (e *engine) ResetMatch() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.roster {
		e.roster[i].MinutesPlayedSec = 0
		e.roster[i].OnField = false
		e.roster[i].Shots = 0
		e.roster[i].Passes = 0
		e.roster[i].Saves = 0
	}
	e.subs = nil
	e.queue = nil
	e.formation = formation.Default
	e.tactics = slotsFor(e.formation)
	e.clock = ClockState{}
	e.subClock = ClockState{}
	e.gameClock = ClockState{}
	log.Info("Match state reset")
	e.notifyLocked()
}
