package match

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/touchline/internal/formation"
)

// AddPlayer adds a player to the roster. A missing id is generated; minutes
// and per-match counters always start at zero regardless of the input.
func (e *engine) AddPlayer(p Player) Player {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PositionTags == nil {
		p.PositionTags = []formation.PositionTag{}
	}
	p.MinutesPlayedSec = 0
	p.Shots = 0
	p.Passes = 0
	p.Saves = 0
	e.roster = append(e.roster, p)
	log.Debug("Added player", "playerID", p.ID, "name", p.Name)
	e.notifyLocked()
	return p
}

// UpdatePlayer applies a partial update. Returns false for unknown ids.
func (e *engine) UpdatePlayer(id string, patch PlayerPatch) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.playerIndexLocked(id)
	if i < 0 {
		return false
	}
	if patch.Name != nil {
		e.roster[i].Name = *patch.Name
	}
	if patch.Number != nil {
		e.roster[i].Number = *patch.Number
	}
	if patch.PositionTags != nil {
		tags := make([]formation.PositionTag, 0, len(*patch.PositionTags))
		for _, t := range *patch.PositionTags {
			if formation.ValidTag(t) {
				tags = append(tags, t)
			}
		}
		e.roster[i].PositionTags = tags
	}
	e.notifyLocked()
	return true
}

// RemovePlayer drops a player from the roster and clears any tactics slot
// still referencing them. Unknown ids are a no-op.
func (e *engine) RemovePlayer(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.playerIndexLocked(id)
	if i < 0 {
		return false
	}
	e.roster = append(e.roster[:i], e.roster[i+1:]...)
	for j := range e.tactics {
		if e.tactics[j].PlayerID == id {
			e.tactics[j].PlayerID = ""
		}
	}
	log.Debug("Removed player", "playerID", id)
	e.notifyLocked()
	return true
}

// ToggleStarter flips a player's on-field flag directly, enforcing the cap
// when fielding. Used for pre-kickoff lineup building; it does not touch
// minutes or the event log.
func (e *engine) ToggleStarter(id string, onField bool) SubResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.playerIndexLocked(id)
	if i < 0 {
		return SubUnknownPlayer
	}
	if onField && !e.roster[i].OnField && e.onFieldCountLocked() >= e.config.MaxOnField {
		log.Warn("Cannot add player: maximum number of players on the field reached", "playerID", id)
		e.ring.Warn("starter rejected by on-field cap", map[string]any{"playerId": id})
		return SubRejectedCapacity
	}
	e.roster[i].OnField = onField
	e.notifyLocked()
	return SubApplied
}

// ResetRoster removes every player.
func (e *engine) ResetRoster() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.roster = nil
	for j := range e.tactics {
		e.tactics[j].PlayerID = ""
	}
	log.Info("Roster cleared")
	e.notifyLocked()
}

// Players returns a copy of the roster.
func (e *engine) Players() []Player {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Player, len(e.roster))
	copy(out, e.roster)
	return out
}

// PlayerByID looks up one player.
func (e *engine) PlayerByID(id string) (Player, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	i := e.playerIndexLocked(id)
	if i < 0 {
		return Player{}, false
	}
	return e.roster[i], true
}

func (e *engine) adjustCounter(id string, delta int, pick func(*Player) *int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.playerIndexLocked(id)
	if i < 0 {
		return
	}
	c := pick(&e.roster[i])
	*c += delta
	if *c < 0 {
		*c = 0
	}
	e.notifyLocked()
}

// RecordShot increments a player's shot counter.
func (e *engine) RecordShot(id string) {
	e.adjustCounter(id, 1, func(p *Player) *int { return &p.Shots })
}

// DecrementShot decrements a player's shot counter, flooring at zero.
func (e *engine) DecrementShot(id string) {
	e.adjustCounter(id, -1, func(p *Player) *int { return &p.Shots })
}

// RecordPass increments a player's pass counter.
func (e *engine) RecordPass(id string) {
	e.adjustCounter(id, 1, func(p *Player) *int { return &p.Passes })
}

// DecrementPass decrements a player's pass counter, flooring at zero.
func (e *engine) DecrementPass(id string) {
	e.adjustCounter(id, -1, func(p *Player) *int { return &p.Passes })
}

// RecordSave increments a player's save counter.
func (e *engine) RecordSave(id string) {
	e.adjustCounter(id, 1, func(p *Player) *int { return &p.Saves })
}

// DecrementSave decrements a player's save counter, flooring at zero.
func (e *engine) DecrementSave(id string) {
	e.adjustCounter(id, -1, func(p *Player) *int { return &p.Saves })
}
