package snapshot_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/touchline/internal/database"
	"github.com/mauv0809/touchline/internal/formation"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary in-memory SQLite database for testing.
func setupTestStore(t *testing.T) (snapshot.Store, *sql.DB, func()) {
	t.Helper()

	db, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	store := snapshot.New(db, nil, nil)
	teardown := func() {
		db.Close()
	}

	return store, db, teardown
}

func TestSaveAndLoad(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	snap := match.Snapshot{
		Roster: []match.Player{
			{ID: "p1", Name: "Ada", Number: 7, PositionTags: []formation.PositionTag{formation.GK}, MinutesPlayedSec: 123.5},
		},
		Subs: []match.SubEvent{
			{ID: "s1", TimestampMs: 1700000000000, PlayerInID: "p1"},
		},
		Formation: formation.F442,
		Clock:     match.ClockState{AccumulatedSec: 600},
		Config:    match.DefaultConfig(),
	}

	require.NoError(t, store.Save(snap))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, match.SchemaVersion, got.Version)
	require.Len(t, got.Roster, 1)
	assert.Equal(t, "Ada", got.Roster[0].Name)
	assert.InDelta(t, 123.5, got.Roster[0].MinutesPlayedSec, 0.001)
	assert.Equal(t, formation.F442, got.Formation)
	assert.InDelta(t, 600, got.Clock.AccumulatedSec, 0.001)
	require.Len(t, got.Subs, 1)
	assert.Equal(t, "p1", got.Subs[0].PlayerInID)
}

func TestSave_Upserts(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Save(match.Snapshot{Formation: formation.F433}))
	require.NoError(t, store.Save(match.Snapshot{Formation: formation.F352}))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count))
	assert.Equal(t, 1, count, "repeated saves overwrite the single row")

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, formation.F352, got.Formation)
}

func TestLoad_NoRow(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_SchemaVersionMismatch(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	_, err := db.Exec(
		"INSERT INTO snapshots (namespace, version, state, updated_at) VALUES (?, ?, ?, ?)",
		snapshot.Namespace, match.SchemaVersion+1, []byte{0x80}, 0,
	)
	require.NoError(t, err)

	_, ok, err := store.Load()
	require.NoError(t, err, "an unsupported version is not an error, just a fresh start")
	assert.False(t, ok)
}

func TestLoad_CorruptBlob(t *testing.T) {
	store, db, teardown := setupTestStore(t)
	defer teardown()

	_, err := db.Exec(
		"INSERT INTO snapshots (namespace, version, state, updated_at) VALUES (?, ?, ?, ?)",
		snapshot.Namespace, match.SchemaVersion, []byte("not msgpack"), 0,
	)
	require.NoError(t, err)

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Save(match.Snapshot{}))
	require.NoError(t, store.Clear())

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriter_PersistsEngineState(t *testing.T) {
	store, _, teardown := setupTestStore(t)
	defer teardown()

	writer := snapshot.Writer(store)
	writer(match.Snapshot{Formation: formation.F442Diamond})

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, formation.F442Diamond, got.Formation)
}
