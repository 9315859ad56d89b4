package match

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// MakeSub brings inID onto the field, optionally taking outID off, as a
// single immediate substitution. Pass an empty outID to sub in with no one
// going out.
func (e *engine) MakeSub(inID, outID string) SubResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	res := e.makeSubLocked(inID, outID)
	e.notifyLocked()
	return res
}

// makeSubLocked is the substitution state machine.
//
// The clock rebase in the first step always commits, even when the cap
// check later rejects the sub: the accrual already happened and rebasing
// only affects how future elapsed time is computed, never credited minutes.
// Only the on-field flags can roll back.
func (e *engine) makeSubLocked(inID, outID string) SubResult {
	in := e.playerIndexLocked(inID)
	if in < 0 {
		log.Warn("Substitution references unknown player", "playerInID", inID)
		e.ring.Warn("sub for unknown player", map[string]any{"playerInId": inID})
		return SubUnknownPlayer
	}

	now := e.nowSec()

	// Freeze live minutes for everyone currently on field, then rebase the
	// anchor so the post-sub field starts a fresh interval.
	if e.clock.Running && e.clock.StartedAtSec > 0 {
		elapsed := now - e.clock.StartedAtSec
		for i := range e.roster {
			if e.roster[i].OnField {
				e.roster[i].MinutesPlayedSec += elapsed
			}
		}
		e.clock.StartedAtSec = now
	}

	out := -1
	if outID != "" {
		out = e.playerIndexLocked(outID)
		if out >= 0 {
			e.roster[out].OnField = false
		}
	}
	wasOnField := e.roster[in].OnField
	e.roster[in].OnField = true

	if e.onFieldCountLocked() > e.config.MaxOnField {
		e.roster[in].OnField = wasOnField
		log.Warn("Cannot sub player: maximum number of players on the field reached, reverting", "playerInID", inID, "playerOutID", outID)
		e.ring.Warn("sub rejected by on-field cap", map[string]any{"playerInId": inID, "playerOutId": outID})
		e.metrics.IncSubsRejected()
		return SubRejectedCapacity
	}

	e.subs = append(e.subs, SubEvent{
		ID:          uuid.NewString(),
		TimestampMs: int64(math.Round(now * 1000)),
		PlayerInID:  inID,
		PlayerOutID: outID,
	})

	// The slot that held the outgoing player now holds the incoming one;
	// any other slot the incoming player occupied is cleared.
	for i := range e.tactics {
		switch e.tactics[i].PlayerID {
		case outID:
			if outID != "" {
				e.tactics[i].PlayerID = inID
			}
		case inID:
			e.tactics[i].PlayerID = ""
		}
	}

	e.metrics.IncSubsCommitted()
	log.Info("Substitution committed", "playerInID", inID, "playerOutID", outID)
	return SubApplied
}

// EnqueueSub adds a pending substitution request. Any queued request
// already referencing either player, on either side, is evicted first so a
// player appears in at most one pending request.
func (e *engine) EnqueueSub(req SubRequest) {
	e.mu.Lock()
	defer e.mu.Unlock()

	keep := e.queue[:0]
	for _, q := range e.queue {
		if q.InID == req.InID || q.OutID == req.InID {
			continue
		}
		if req.OutID != "" && (q.InID == req.OutID || q.OutID == req.OutID) {
			continue
		}
		keep = append(keep, q)
	}
	e.queue = append(keep, req)
	log.Debug("Queued substitution", "playerInID", req.InID, "playerOutID", req.OutID, "queued", len(e.queue))
	e.notifyLocked()
}

// CancelSub removes a pending request matching req exactly. Committed
// events are untouchable; only queued requests can be cancelled.
func (e *engine) CancelSub(req SubRequest) {
	e.mu.Lock()
	defer e.mu.Unlock()

	keep := e.queue[:0]
	for _, q := range e.queue {
		if q == req {
			continue
		}
		keep = append(keep, q)
	}
	e.queue = keep
	e.notifyLocked()
}

// Queue returns a copy of the pending substitution requests in order.
func (e *engine) Queue() []SubRequest {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]SubRequest, len(e.queue))
	copy(out, e.queue)
	return out
}

// PerformSubs commits every queued request in queue order, then clears the
// queue. Each request sees the roster state left by the ones before it, so
// a later request can be rejected by a cap an earlier one filled.
func (e *engine) PerformSubs() []SubResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]SubResult, 0, len(e.queue))
	for _, req := range e.queue {
		results = append(results, e.makeSubLocked(req.InID, req.OutID))
	}
	e.queue = nil
	e.notifyLocked()
	return results
}

// Subs returns a copy of the committed substitution log in commit order.
func (e *engine) Subs() []SubEvent {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]SubEvent, len(e.subs))
	copy(out, e.subs)
	return out
}
