package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/touchline/internal/database"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/mauv0809/touchline/internal/roster"
	"github.com/mauv0809/touchline/internal/snapshot"
)

// Seeds the snapshot store from a roster CSV so a fresh deployment
// starts with a squad already loaded instead of an empty state.
func main() {
	csvPath := flag.String("roster", "roster.csv", "path to the roster CSV to import")
	dbPath := flag.String("db", "", "local database file (defaults to DB_NAME)")
	flag.Parse()

	log.Info("Starting snapshot seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	name := *dbPath
	if name == "" {
		name = os.Getenv("DB_NAME")
		if name == "" {
			name = "touchline.db"
		}
	}

	db, err := database.InitDB(name, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open roster CSV: %s", err)
	}
	defer f.Close()

	players, err := roster.ImportRoster(f)
	if err != nil {
		log.Fatalf("Failed to parse roster CSV: %s", err)
	}
	if len(players) == 0 {
		log.Fatal("Roster CSV contained no players, nothing to seed")
	}

	engine := match.New()
	for _, p := range players {
		engine.AddPlayer(p)
	}
	log.Info("Imported roster", "players", len(players))

	store := snapshot.New(db, metrics.NewMock(), diag.NewRing(0))
	if err := store.Save(engine.Snapshot()); err != nil {
		log.Fatalf("Failed to save seeded snapshot: %s", err)
	}

	log.Info("Seeded snapshot successfully.", "db", name, "players", len(players))
}
