package match

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// StartClock starts the match, sub and game clocks in lockstep, anchoring
// all three to the same instant. No-op if already running.
func (e *engine) StartClock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.clock.Running {
		return
	}
	now := e.nowSec()
	e.clock.Running = true
	e.clock.StartedAtSec = now
	e.subClock.Running = true
	e.subClock.StartedAtSec = now
	e.gameClock.Running = true
	e.gameClock.StartedAtSec = now
	log.Info("Clock started")
	e.notifyLocked()
}

// PauseClock banks the elapsed interval on all three clocks and clears
// their anchors. No-op if not running, so a double pause is safe.
func (e *engine) PauseClock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.clock.Running {
		return
	}
	now := e.nowSec()
	for _, c := range []*ClockState{&e.clock, &e.subClock, &e.gameClock} {
		if c.StartedAtSec > 0 {
			c.AccumulatedSec += now - c.StartedAtSec
		}
		c.StartedAtSec = 0
		c.Running = false
	}
	log.Info("Clock paused", "elapsedSec", e.clock.AccumulatedSec)
	e.notifyLocked()
}

// ResetClock zeroes all three clocks and every player's credited minutes.
func (e *engine) ResetClock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock = ClockState{}
	e.subClock = ClockState{}
	e.gameClock = ClockState{}
	for i := range e.roster {
		e.roster[i].MinutesPlayedSec = 0
	}
	log.Info("Clock reset")
	e.notifyLocked()
}

// SetClock forces the match clock to a given accumulated value, stopped.
// The sub and game clocks are left untouched.
func (e *engine) SetClock(accumulatedSec float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if accumulatedSec < 0 {
		accumulatedSec = 0
	}
	e.clock = ClockState{AccumulatedSec: accumulatedSec}
	e.notifyLocked()
}

// ResetSubClock rebases only the sub clock: zeroed accumulation, anchor at
// now, running state unchanged. Used to dismiss a rotation reminder without
// pausing the match.
func (e *engine) ResetSubClock() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subClock = ClockState{
		Running:        e.subClock.Running,
		StartedAtSec:   e.nowSec(),
		AccumulatedSec: 0,
	}
	e.notifyLocked()
}

// Clock returns the match clock state.
func (e *engine) Clock() ClockState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clock
}

// SubClock returns the rotation-interval clock state.
func (e *engine) SubClock() ClockState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.subClock
}

// GameClock returns the full-game clock state.
func (e *engine) GameClock() ClockState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gameClock
}

// ElapsedSec reads the match clock's elapsed time at this instant.
func (e *engine) ElapsedSec() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.clock.ElapsedSec(e.nowSec())
}

// rotationWindowSec is how long the rotation reminder stays asserted after
// the elapsed time crosses a multiple of the configured interval. It must
// outlast the presentation poll period or the banner can be missed.
const rotationWindowSec = 1.5

// RotationDue reports whether the elapsed match time just crossed a
// multiple of the rotation interval. It is a derived boolean recomputed on
// each poll, never a scheduled callback.
func (e *engine) RotationDue() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.clock.Running || e.config.RotationIntervalMinutes <= 0 {
		return false
	}
	elapsed := e.clock.ElapsedSec(e.nowSec())
	if elapsed <= 0 {
		return false
	}
	interval := float64(e.config.RotationIntervalMinutes) * 60
	return math.Mod(elapsed, interval) < rotationWindowSec
}

// FormatClock renders whole seconds as MM:SS. Minutes grow past two digits
// unbounded; negative inputs clamp to 00:00.
func FormatClock(totalSeconds float64) string {
	s := int(math.Floor(totalSeconds))
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
