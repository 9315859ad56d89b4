package match

import (
	"github.com/mauv0809/touchline/internal/formation"
)

// SchemaVersion is bumped whenever the persisted snapshot shape changes.
const SchemaVersion = 1

// Player is one roster entry. MinutesPlayedSec holds time already credited;
// it excludes any interval still running on the match clock.
type Player struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Number           int                     `json:"number,omitempty"`
	PositionTags     []formation.PositionTag `json:"positionTags"`
	OnField          bool                    `json:"isOnField"`
	MinutesPlayedSec float64                 `json:"minutesPlayedSec"`
	Shots            int                     `json:"shots"`
	Passes           int                     `json:"passes"`
	Saves            int                     `json:"saves"`
}

// SubEvent is one committed substitution. Events are append-only: once in
// the log they are never mutated or removed.
type SubEvent struct {
	ID          string `json:"id"`
	TimestampMs int64  `json:"timestampMs"`
	PlayerInID  string `json:"playerInId"`
	PlayerOutID string `json:"playerOutId,omitempty"`
	Note        string `json:"note,omitempty"`
}

// SubRequest is a queued, not-yet-committed substitution. Unlike a SubEvent
// it can still be cancelled.
type SubRequest struct {
	InID  string `json:"inId"`
	OutID string `json:"outId,omitempty"`
}

// TacticsSlot binds a formation slot to a player. PlayerID is a weak
// reference; an empty string means the slot is open.
type TacticsSlot struct {
	ID       string  `json:"id"`
	GridArea string  `json:"gridArea"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	PlayerID string  `json:"playerId,omitempty"`
}

// ClockState is a pausable elapsed-time accumulator. StartedAtSec is the
// unix-seconds anchor of the current run and is zero while stopped.
type ClockState struct {
	Running        bool    `json:"isRunning"`
	StartedAtSec   float64 `json:"startedAtSec,omitempty"`
	AccumulatedSec float64 `json:"accumulatedSec"`
}

// ElapsedSec reads the clock as a pure function of now. It never mutates
// state; callers poll it while the clock runs.
func (c ClockState) ElapsedSec(nowSec float64) float64 {
	if c.Running && c.StartedAtSec > 0 {
		return c.AccumulatedSec + (nowSec - c.StartedAtSec)
	}
	return c.AccumulatedSec
}

// Config is pure match configuration with no derived state.
type Config struct {
	MaxOnField              int `json:"maxOnField"`
	RotationIntervalMinutes int `json:"rotationIntervalMinutes"`
	MatchTimeMinutes        int `json:"matchTimeMinutes"`
}

// DefaultConfig matches a full-size eleven-a-side game.
func DefaultConfig() Config {
	return Config{MaxOnField: 11, RotationIntervalMinutes: 10, MatchTimeMinutes: 90}
}

// ConfigPatch updates individual config fields; nil fields are left alone.
type ConfigPatch struct {
	MaxOnField              *int `json:"maxOnField,omitempty"`
	RotationIntervalMinutes *int `json:"rotationIntervalMinutes,omitempty"`
	MatchTimeMinutes        *int `json:"matchTimeMinutes,omitempty"`
}

// Snapshot is the durable-state shape: everything needed to rebuild the
// engine after a reload. Tactics are persisted but rederived from Formation
// on restore, so a stale board self-heals.
type Snapshot struct {
	Version   int           `json:"version"`
	Roster    []Player      `json:"roster"`
	Subs      []SubEvent    `json:"subs"`
	Tactics   []TacticsSlot `json:"tactics"`
	Formation formation.ID  `json:"formation"`
	Clock     ClockState    `json:"clock"`
	Config    Config        `json:"config"`
}

// SubResult names the outcome of a substitution or placement attempt.
// Capacity violations are an expected outcome, not an error: the offending
// transition is reverted locally and the caller can inspect the result.
type SubResult int

const (
	// SubApplied means the transition committed.
	SubApplied SubResult = iota
	// SubRejectedCapacity means fielding the player would exceed
	// Config.MaxOnField; the on-field flag was reverted and no event logged.
	SubRejectedCapacity
	// SubUnknownPlayer means a referenced player id does not exist; the
	// operation was a no-op.
	SubUnknownPlayer
)

func (r SubResult) String() string {
	switch r {
	case SubApplied:
		return "applied"
	case SubRejectedCapacity:
		return "rejected_capacity"
	case SubUnknownPlayer:
		return "unknown_player"
	default:
		return "unknown"
	}
}

// PlayerPatch updates individual player fields; nil fields are left alone.
// Minutes and counters are managed by the engine and are not patchable.
type PlayerPatch struct {
	Name         *string                  `json:"name,omitempty"`
	Number       *int                     `json:"number,omitempty"`
	PositionTags *[]formation.PositionTag `json:"positionTags,omitempty"`
}
