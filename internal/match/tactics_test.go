package match_test

import (
	"testing"
	"time"

	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotByID(t *testing.T, e match.MatchEngine, id string) match.TacticsSlot {
	t.Helper()
	for _, s := range e.Tactics() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("slot %q not found", id)
	return match.TacticsSlot{}
}

func TestAssignPlayerToSlot_UniqueAcrossBoard(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	e.AssignPlayerToSlot("gk", a.ID)
	e.AssignPlayerToSlot("lcb", a.ID)

	assert.Empty(t, slotByID(t, e, "gk").PlayerID, "a player occupies at most one slot")
	assert.Equal(t, a.ID, slotByID(t, e, "lcb").PlayerID)

	e.AssignPlayerToSlot("lcb", "")
	assert.Empty(t, slotByID(t, e, "lcb").PlayerID)
}

func TestSwapSlotPlayers(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.AssignPlayerToSlot("gk", a.ID)
	e.AssignPlayerToSlot("st", b.ID)

	e.SwapSlotPlayers("gk", "st")

	assert.Equal(t, b.ID, slotByID(t, e, "gk").PlayerID)
	assert.Equal(t, a.ID, slotByID(t, e, "st").PlayerID)

	// Swapping into an empty slot just moves the player.
	e.SwapSlotPlayers("st", "lcb")
	assert.Empty(t, slotByID(t, e, "st").PlayerID)
	assert.Equal(t, a.ID, slotByID(t, e, "lcb").PlayerID)
}

func TestMoveSlot(t *testing.T) {
	e, _ := setupEngine(t)

	e.MoveSlot("gk", 12.5, 88)
	slot := slotByID(t, e, "gk")
	assert.Equal(t, 12.5, slot.X)
	assert.Equal(t, 88.0, slot.Y)

	// Unknown slots are ignored.
	e.MoveSlot("nope", 1, 1)
}

func TestBenchPlayer(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("gk", a.ID)

	e.BenchPlayer(a.ID)

	p, _ := e.PlayerByID(a.ID)
	assert.False(t, p.OnField)
	assert.Empty(t, slotByID(t, e, "gk").PlayerID)
}

func TestBenchPlayerFromSlot(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("st", a.ID)

	e.BenchPlayerFromSlot("st")
	p, _ := e.PlayerByID(a.ID)
	assert.False(t, p.OnField)
	assert.Empty(t, slotByID(t, e, "st").PlayerID)

	// Empty slot is a no-op.
	e.BenchPlayerFromSlot("st")
}

func TestPlacePlayerInSlot(t *testing.T) {
	e, clk := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("st", a.ID)
	e.StartClock()
	clk.Advance(time.Minute)

	res := e.PlacePlayerInSlot("st", b.ID)
	require.Equal(t, match.SubApplied, res)

	pa, _ := e.PlayerByID(a.ID)
	pb, _ := e.PlayerByID(b.ID)
	assert.False(t, pa.OnField, "the previous occupant is benched")
	assert.True(t, pb.OnField)
	assert.InDelta(t, 60, pa.MinutesPlayedSec, 0.001, "minutes are frozen like a sub")
	assert.Equal(t, b.ID, slotByID(t, e, "st").PlayerID)
	assert.Empty(t, e.Subs(), "placement logs no substitution event")
}

func TestPlacePlayerInSlot_CapacityRejection(t *testing.T) {
	e, _ := setupEngine(t)

	one := 1
	e.SetConfig(match.ConfigPatch{MaxOnField: &one})
	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("gk", a.ID)

	res := e.PlacePlayerInSlot("st", b.ID)
	assert.Equal(t, match.SubRejectedCapacity, res)

	pa, _ := e.PlayerByID(a.ID)
	pb, _ := e.PlayerByID(b.ID)
	assert.True(t, pa.OnField)
	assert.False(t, pb.OnField)
	assert.Empty(t, slotByID(t, e, "st").PlayerID, "the board is untouched on rejection")
}

func TestSubstituteFromBench(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("cm", a.ID)

	res := e.SubstituteFromBench(b.ID, "cm")
	require.Equal(t, match.SubApplied, res)

	assert.Equal(t, b.ID, slotByID(t, e, "cm").PlayerID)
	pa, _ := e.PlayerByID(a.ID)
	assert.False(t, pa.OnField)

	events := e.Subs()
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, events[0].PlayerInID)
	assert.Equal(t, a.ID, events[0].PlayerOutID)
}

func TestSubstituteFromBench_OpenSlot(t *testing.T) {
	e, _ := setupEngine(t)

	b := e.AddPlayer(match.Player{Name: "Ben"})
	res := e.SubstituteFromBench(b.ID, "st")
	require.Equal(t, match.SubApplied, res)

	assert.Equal(t, b.ID, slotByID(t, e, "st").PlayerID)
	events := e.Subs()
	require.Len(t, events, 1)
	assert.Empty(t, events[0].PlayerOutID)
}

func TestSetFormation_HardReset(t *testing.T) {
	e, _ := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	e.ToggleStarter(a.ID, true)
	e.AssignPlayerToSlot("gk", a.ID)

	e.SetFormation(formation.F352)

	assert.Equal(t, formation.F352, e.Formation())
	layout, _ := formation.Lookup(formation.F352)
	require.Len(t, e.Tactics(), len(layout.Slots))
	for _, slot := range e.Tactics() {
		assert.Empty(t, slot.PlayerID)
	}
	p, _ := e.PlayerByID(a.ID)
	assert.False(t, p.OnField, "a formation change benches everyone")
}

func TestSetFormation_UnknownYieldsEmptyBoard(t *testing.T) {
	e, _ := setupEngine(t)

	e.SetFormation(formation.ID("5-5-5"))

	assert.Equal(t, formation.ID("5-5-5"), e.Formation())
	assert.Empty(t, e.Tactics())
}
