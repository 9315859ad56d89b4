package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/touchline/internal/config"
	"github.com/mauv0809/touchline/internal/database"
	"github.com/mauv0809/touchline/internal/diag"
	"github.com/mauv0809/touchline/internal/match"
	"github.com/mauv0809/touchline/internal/metrics"
	"github.com/mauv0809/touchline/internal/snapshot"

	server "github.com/mauv0809/touchline/internal/http"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	ring := diag.NewRing(0)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	snapshots := snapshot.New(db, metricsSvc, ring)

	engine := match.New(
		match.WithMetrics(metricsSvc),
		match.WithRing(ring),
	)
	engine.SetConfig(match.ConfigPatch{
		MaxOnField:              &cfg.Match.MaxOnField,
		RotationIntervalMinutes: &cfg.Match.RotationIntervalMinutes,
		MatchTimeMinutes:        &cfg.Match.MatchTimeMinutes,
	})

	// Rehydrate the previous session. A missing or unusable snapshot means
	// the engine simply keeps its defaults.
	if snap, ok, err := snapshots.Load(); err != nil {
		log.Error("Failed to load persisted state, starting fresh", "error", err)
		ring.Error("snapshot load failed", map[string]any{"error": err.Error()})
	} else if ok {
		engine.Restore(snap)
	}

	// Every committed mutation is written back, fire-and-forget.
	engine.Subscribe(snapshot.Writer(snapshots))

	s := server.NewServer(engine, snapshots, metricsSvc, metricsHandler, cfg, ring)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Flush the latest state before going down.
		if err := snapshots.Save(engine.Snapshot()); err != nil {
			log.Error("Final snapshot write failed", "error", err)
		}

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
