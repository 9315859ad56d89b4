package match

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/formation"
)

// AssignPlayerToSlot is a pure board operation: it clears the player from
// whatever slot held them, then sets them on slotID (or clears the slot
// when playerID is empty). On-field flags and minutes are untouched;
// callers pair this with MakeSub to keep the roster consistent.
func (e *engine) AssignPlayerToSlot(slotID, playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if playerID != "" {
		for i := range e.tactics {
			if e.tactics[i].PlayerID == playerID {
				e.tactics[i].PlayerID = ""
			}
		}
	}
	if i := e.slotIndexLocked(slotID); i >= 0 {
		e.tactics[i].PlayerID = playerID
	}
	e.notifyLocked()
}

// SwapSlotPlayers exchanges the occupants of two slots. Swapping is always
// allowed, even across visually incompatible positions; eligibility is
// advisory only.
func (e *engine) SwapSlotPlayers(slotAID, slotBID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a := e.slotIndexLocked(slotAID)
	b := e.slotIndexLocked(slotBID)
	if a < 0 || b < 0 {
		return
	}
	e.tactics[a].PlayerID, e.tactics[b].PlayerID = e.tactics[b].PlayerID, e.tactics[a].PlayerID
	e.notifyLocked()
}

// MoveSlot repositions a slot on the board. Display metadata only.
func (e *engine) MoveSlot(slotID string, x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.slotIndexLocked(slotID)
	if i < 0 {
		return
	}
	e.tactics[i].X = x
	e.tactics[i].Y = y
	e.notifyLocked()
}

// BenchPlayer takes a player off the field and clears any slot holding
// them. A pure flag-and-board operation, mirroring AssignPlayerToSlot.
func (e *engine) BenchPlayer(playerID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.benchPlayerLocked(playerID)
	e.notifyLocked()
}

func (e *engine) benchPlayerLocked(playerID string) {
	if i := e.playerIndexLocked(playerID); i >= 0 {
		e.roster[i].OnField = false
	}
	for j := range e.tactics {
		if e.tactics[j].PlayerID == playerID {
			e.tactics[j].PlayerID = ""
		}
	}
}

// BenchPlayerFromSlot benches whoever occupies the slot. Empty slots are a
// no-op.
func (e *engine) BenchPlayerFromSlot(slotID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.slotIndexLocked(slotID)
	if i < 0 || e.tactics[i].PlayerID == "" {
		return
	}
	e.benchPlayerLocked(e.tactics[i].PlayerID)
	e.notifyLocked()
}

// PlacePlayerInSlot is the roster-consistent placement: it moves the slot
// assignment and performs the equivalent of a sub: freezes minutes,
// benches the previous occupant, flips on-field flags and enforces the cap.
// Unlike MakeSub it logs no substitution event.
func (e *engine) PlacePlayerInSlot(slotID, playerID string) SubResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	si := e.slotIndexLocked(slotID)
	pi := e.playerIndexLocked(playerID)
	if si < 0 || pi < 0 {
		log.Warn("Placement references unknown slot or player", "slotID", slotID, "playerID", playerID)
		return SubUnknownPlayer
	}
	prevID := e.tactics[si].PlayerID

	now := e.nowSec()
	if e.clock.Running && e.clock.StartedAtSec > 0 {
		elapsed := now - e.clock.StartedAtSec
		for i := range e.roster {
			if e.roster[i].OnField {
				e.roster[i].MinutesPlayedSec += elapsed
			}
		}
		e.clock.StartedAtSec = now
	}

	prevWasOn := false
	if prevID != "" && prevID != playerID {
		if j := e.playerIndexLocked(prevID); j >= 0 {
			prevWasOn = e.roster[j].OnField
			e.roster[j].OnField = false
		}
	}
	wasOn := e.roster[pi].OnField
	e.roster[pi].OnField = true

	if e.onFieldCountLocked() > e.config.MaxOnField {
		e.roster[pi].OnField = wasOn
		if prevID != "" && prevID != playerID {
			if j := e.playerIndexLocked(prevID); j >= 0 {
				e.roster[j].OnField = prevWasOn
			}
		}
		log.Warn("Cannot place player: maximum number of players on the field reached", "playerID", playerID)
		e.ring.Warn("placement rejected by on-field cap", map[string]any{"playerId": playerID, "slotId": slotID})
		e.metrics.IncSubsRejected()
		e.notifyLocked()
		return SubRejectedCapacity
	}

	for i := range e.tactics {
		if e.tactics[i].PlayerID == playerID {
			e.tactics[i].PlayerID = ""
		}
	}
	e.tactics[si].PlayerID = playerID
	e.notifyLocked()
	return SubApplied
}

// SubstituteFromBench brings a bench player into a slot as a committed
// substitution against the slot's current occupant, event log included.
func (e *engine) SubstituteFromBench(benchPlayerID, slotID string) SubResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	si := e.slotIndexLocked(slotID)
	if si < 0 {
		log.Warn("Bench substitution references unknown slot", "slotID", slotID)
		return SubUnknownPlayer
	}
	prevID := e.tactics[si].PlayerID

	res := e.makeSubLocked(benchPlayerID, prevID)
	if res == SubApplied && prevID == "" {
		// The slot was open, so the event-side tactics pass had no slot to
		// take over; assign it directly.
		for i := range e.tactics {
			if e.tactics[i].PlayerID == benchPlayerID {
				e.tactics[i].PlayerID = ""
			}
		}
		e.tactics[si].PlayerID = benchPlayerID
	}
	e.notifyLocked()
	return res
}

// SetFormation replaces the slot set wholesale from the catalog and
// benches every player. A formation change is always a hard reset of the
// lineup, never a remap.
func (e *engine) SetFormation(id formation.ID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := formation.Lookup(id); !ok {
		log.Warn("Unknown formation requested", "formation", id)
		e.ring.Warn("unknown formation requested", map[string]any{"formation": string(id)})
	}
	e.formation = id
	e.tactics = slotsFor(id)
	for i := range e.roster {
		e.roster[i].OnField = false
	}
	e.metrics.IncFormationChanges()
	log.Info("Formation set", "formation", id, "slots", len(e.tactics))
	e.notifyLocked()
}

// Formation returns the active formation id.
func (e *engine) Formation() formation.ID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.formation
}

// Tactics returns a copy of the current board.
func (e *engine) Tactics() []TacticsSlot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]TacticsSlot, len(e.tactics))
	copy(out, e.tactics)
	return out
}
