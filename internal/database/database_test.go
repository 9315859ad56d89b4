package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer db.Close()

	// Check if the 'snapshots' table was created
	var snapshotsTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'").Scan(&snapshotsTableName)
	require.NoError(t, err, "Querying for snapshots table should not produce an error")
	assert.Equal(t, "snapshots", snapshotsTableName, "The 'snapshots' table should be created")
}
