package match_test

import (
	"testing"
	"time"

	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPlayer(t *testing.T) {
	e, _ := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada", Number: 7, MinutesPlayedSec: 999, Shots: 5})

	assert.NotEmpty(t, p.ID, "a missing id is generated")
	assert.Zero(t, p.MinutesPlayedSec, "minutes always start at zero")
	assert.Zero(t, p.Shots, "counters always start at zero")

	withID := e.AddPlayer(match.Player{ID: "fixed-id", Name: "Ben"})
	assert.Equal(t, "fixed-id", withID.ID)
	assert.Len(t, e.Players(), 2)
}

func TestUpdatePlayer(t *testing.T) {
	e, _ := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada"})

	name := "Ada L."
	number := 10
	tags := []formation.PositionTag{formation.GK, formation.PositionTag("BOGUS"), formation.CB}
	ok := e.UpdatePlayer(p.ID, match.PlayerPatch{Name: &name, Number: &number, PositionTags: &tags})
	require.True(t, ok)

	got, found := e.PlayerByID(p.ID)
	require.True(t, found)
	assert.Equal(t, "Ada L.", got.Name)
	assert.Equal(t, 10, got.Number)
	assert.Equal(t, []formation.PositionTag{formation.GK, formation.CB}, got.PositionTags, "invalid tags are dropped")

	assert.False(t, e.UpdatePlayer("ghost", match.PlayerPatch{Name: &name}))
}

func TestRemovePlayer_ClearsSlots(t *testing.T) {
	e, _ := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada"})
	e.AssignPlayerToSlot("gk", p.ID)

	require.True(t, e.RemovePlayer(p.ID))

	assert.Empty(t, e.Players())
	for _, slot := range e.Tactics() {
		assert.Empty(t, slot.PlayerID)
	}
	assert.False(t, e.RemovePlayer(p.ID), "removing twice fails cleanly")
}

func TestToggleStarter_EnforcesCap(t *testing.T) {
	e, _ := setupEngine(t)

	two := 2
	e.SetConfig(match.ConfigPatch{MaxOnField: &two})
	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	c := e.AddPlayer(match.Player{Name: "Cal"})

	assert.Equal(t, match.SubApplied, e.ToggleStarter(a.ID, true))
	assert.Equal(t, match.SubApplied, e.ToggleStarter(b.ID, true))
	assert.Equal(t, match.SubRejectedCapacity, e.ToggleStarter(c.ID, true))

	pc, _ := e.PlayerByID(c.ID)
	assert.False(t, pc.OnField)

	// Benching below the cap and re-toggling an already fielded player both work.
	assert.Equal(t, match.SubApplied, e.ToggleStarter(a.ID, true))
	assert.Equal(t, match.SubApplied, e.ToggleStarter(b.ID, false))
	assert.Equal(t, match.SubApplied, e.ToggleStarter(c.ID, true))

	assert.Equal(t, match.SubUnknownPlayer, e.ToggleStarter("ghost", true))
}

func TestResetRoster(t *testing.T) {
	e, _ := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada"})
	e.AssignPlayerToSlot("gk", p.ID)

	e.ResetRoster()

	assert.Empty(t, e.Players())
	for _, slot := range e.Tactics() {
		assert.Empty(t, slot.PlayerID)
	}
}

func TestStatCounters_FloorAtZero(t *testing.T) {
	e, _ := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada"})

	e.RecordShot(p.ID)
	e.RecordShot(p.ID)
	e.RecordPass(p.ID)
	e.RecordSave(p.ID)
	e.DecrementShot(p.ID)

	got, _ := e.PlayerByID(p.ID)
	assert.Equal(t, 1, got.Shots)
	assert.Equal(t, 1, got.Passes)
	assert.Equal(t, 1, got.Saves)

	e.DecrementPass(p.ID)
	e.DecrementPass(p.ID)
	got, _ = e.PlayerByID(p.ID)
	assert.Zero(t, got.Passes, "counters never go negative")

	// Unknown ids are ignored.
	e.RecordShot("ghost")
}

func TestLiveMinutes_Derived(t *testing.T) {
	e, clk := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.ToggleStarter(a.ID, true)

	e.StartClock()
	clk.Advance(100 * time.Second)

	assert.InDelta(t, 100, e.LiveMinutesSec(a.ID), 0.001, "on-field player accrues while running")
	assert.Zero(t, e.LiveMinutesSec(b.ID), "benched player does not")
	assert.InDelta(t, 50, e.AverageLiveMinutesSec(), 0.001)
	assert.Equal(t, "01:40", e.FormattedLiveMinutes(a.ID))

	e.PauseClock()
	clk.Advance(time.Hour)
	assert.InDelta(t, 100, e.LiveMinutesSec(a.ID), 0.001, "paused clock stops accrual")

	assert.Zero(t, e.LiveMinutesSec("ghost"))
}

func TestAverageLiveMinutes_EmptyRoster(t *testing.T) {
	e, _ := setupEngine(t)
	assert.Zero(t, e.AverageLiveMinutesSec())
}
