package database

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB initializes the database and ensures the schema is up to date.
func InitDB(dbPath string, primaryUrl string, authToken string) (*sql.DB, error) {
	// For local-only databases, dbPath is the filename.
	// For embedded replicas, dbPath is the local file, and primaryUrl is the remote.
	// We handle the local-only case separately for clarity.
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err := sql.Open("libsql", "file:"+dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if err = createTables(db); err != nil {
			db.Close() // Close on error
			return nil, fmt.Errorf("failed to create tables for local db: %w", err)
		}
		return db, nil
	}
	log.Info("Initializing Turso database", "url", primaryUrl)
	db, err := sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open db %s: %s", primaryUrl, err)
		return nil, fmt.Errorf("failed to open db %s: %w", primaryUrl, err)
	}
	if err = createTables(db); err != nil {
		db.Close() // Close on error
		return nil, fmt.Errorf("failed to create tables for remote db: %w", err)
	}
	return db, nil
}

func createTables(db *sql.DB) error {
	createSnapshotsTable := `
	CREATE TABLE IF NOT EXISTS snapshots (
		namespace TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		state BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	if _, err := db.Exec(createSnapshotsTable); err != nil {
		return err
	}
	log.Info("Database initialized successfully")
	return nil
}
