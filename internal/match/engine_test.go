package match_test

import (
	"testing"
	"time"

	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the engine's wall clock deterministically.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func setupEngine(t *testing.T) (match.MatchEngine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	e := match.New(match.WithNow(clk.Now))
	return e, clk
}

func TestNewEngine_Defaults(t *testing.T) {
	e, _ := setupEngine(t)

	assert.Equal(t, formation.Default, e.Formation())
	assert.Empty(t, e.Players())
	assert.Empty(t, e.Subs())
	assert.Empty(t, e.Queue())
	assert.False(t, e.Clock().Running)

	cfg := e.Config()
	assert.Equal(t, 11, cfg.MaxOnField)
	assert.Equal(t, 10, cfg.RotationIntervalMinutes)
	assert.Equal(t, 90, cfg.MatchTimeMinutes)

	layout, ok := formation.Lookup(formation.Default)
	require.True(t, ok)
	assert.Len(t, e.Tactics(), len(layout.Slots))
	for _, slot := range e.Tactics() {
		assert.Empty(t, slot.PlayerID, "a fresh board should have no assignments")
	}
}

func TestSetConfig_PartialPatch(t *testing.T) {
	e, _ := setupEngine(t)

	five := 5
	e.SetConfig(match.ConfigPatch{MaxOnField: &five})

	cfg := e.Config()
	assert.Equal(t, 5, cfg.MaxOnField)
	assert.Equal(t, 10, cfg.RotationIntervalMinutes, "untouched fields keep their value")

	zero := 0
	e.SetConfig(match.ConfigPatch{MaxOnField: &zero})
	assert.Equal(t, 5, e.Config().MaxOnField, "non-positive values are ignored")
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	e, clk := setupEngine(t)

	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})
	e.ToggleStarter(a.ID, true)
	e.StartClock()
	clk.Advance(90 * time.Second)
	e.MakeSub(b.ID, a.ID)
	e.PauseClock()

	snap := e.Snapshot()
	assert.Equal(t, match.SchemaVersion, snap.Version)

	restored := match.New(match.WithNow(clk.Now))
	restored.Restore(snap)

	players := restored.Players()
	require.Len(t, players, 2)
	for _, p := range players {
		assert.False(t, p.OnField, "restore benches everyone")
	}
	assert.InDelta(t, 90, restored.LiveMinutesSec(a.ID), 0.001)
	assert.Len(t, restored.Subs(), 1)
	assert.InDelta(t, 90, restored.ElapsedSec(), 0.001)
	assert.Equal(t, snap.Formation, restored.Formation())
	assert.Empty(t, restored.Queue())
}

func TestRestore_UnknownFormationFallsBack(t *testing.T) {
	e, _ := setupEngine(t)

	snap := e.Snapshot()
	snap.Formation = formation.ID("9-9-9")
	e.Restore(snap)

	assert.Equal(t, formation.Default, e.Formation())
	layout, _ := formation.Lookup(formation.Default)
	assert.Len(t, e.Tactics(), len(layout.Slots))
}

func TestRestore_ZeroConfigFallsBack(t *testing.T) {
	e, _ := setupEngine(t)

	snap := e.Snapshot()
	snap.Config = match.Config{}
	e.Restore(snap)

	assert.Equal(t, match.DefaultConfig(), e.Config())
}

func TestResetMatch_KeepsRoster(t *testing.T) {
	e, clk := setupEngine(t)

	p := e.AddPlayer(match.Player{Name: "Ada"})
	e.ToggleStarter(p.ID, true)
	e.RecordShot(p.ID)
	e.StartClock()
	clk.Advance(time.Minute)
	e.PauseClock()
	e.SetFormation(formation.F442)
	e.EnqueueSub(match.SubRequest{InID: p.ID})

	e.ResetMatch()

	players := e.Players()
	require.Len(t, players, 1)
	assert.False(t, players[0].OnField)
	assert.Zero(t, players[0].MinutesPlayedSec)
	assert.Zero(t, players[0].Shots)
	assert.Empty(t, e.Subs())
	assert.Empty(t, e.Queue())
	assert.Equal(t, formation.Default, e.Formation())
	assert.Zero(t, e.ElapsedSec())
	assert.False(t, e.Clock().Running)
}

func TestEngine_MetricsCounters(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	m := metrics.NewMock()
	e := match.New(match.WithNow(clk.Now), match.WithMetrics(m))

	one := 1
	e.SetConfig(match.ConfigPatch{MaxOnField: &one})
	a := e.AddPlayer(match.Player{Name: "Ada"})
	b := e.AddPlayer(match.Player{Name: "Ben"})

	e.MakeSub(a.ID, "")
	e.MakeSub(b.ID, "")
	e.SetFormation(formation.F442)

	assert.Equal(t, 1, m.SubsCommitted())
	assert.Equal(t, 1, m.SubsRejected())
	assert.Equal(t, 1, m.FormationChanges())
	assert.Zero(t, m.PlayersOnField(), "the formation change benched everyone")

	e.StartClock()
	assert.True(t, m.ClockRunning())
	e.PauseClock()
	assert.False(t, m.ClockRunning())
}

func TestSubscribe_NotifiedOnMutation(t *testing.T) {
	e, _ := setupEngine(t)

	snaps := make(chan match.Snapshot, 8)
	e.Subscribe(func(s match.Snapshot) { snaps <- s })

	e.AddPlayer(match.Player{Name: "Ada"})

	select {
	case snap := <-snaps:
		require.Len(t, snap.Roster, 1)
		assert.Equal(t, "Ada", snap.Roster[0].Name)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot notification")
	}
}
