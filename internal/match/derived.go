package match

// LiveMinutesSec returns a player's accumulated on-field time in seconds,
// including the in-progress interval when the clock runs and the player is
// on field. Pure and recomputed per call, so presentation layers can poll it.
func (e *engine) LiveMinutesSec(playerID string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.liveMinutesSecLocked(playerID)
}

func (e *engine) liveMinutesSecLocked(playerID string) float64 {
	i := e.playerIndexLocked(playerID)
	if i < 0 {
		return 0
	}
	base := e.roster[i].MinutesPlayedSec
	if e.clock.Running && e.clock.StartedAtSec > 0 && e.roster[i].OnField {
		return base + (e.nowSec() - e.clock.StartedAtSec)
	}
	return base
}

// FormattedLiveMinutes renders a player's live minutes as MM:SS.
func (e *engine) FormattedLiveMinutes(playerID string) string {
	return FormatClock(e.LiveMinutesSec(playerID))
}

// AverageLiveMinutesSec returns the mean live minutes across the roster,
// the equal-play reference line. Zero for an empty roster.
func (e *engine) AverageLiveMinutesSec() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.roster) == 0 {
		return 0
	}
	var total float64
	for i := range e.roster {
		total += e.liveMinutesSecLocked(e.roster[i].ID)
	}
	return total / float64(len(e.roster))
}
