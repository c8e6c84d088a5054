package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/edvart/padel-americano/internal/config"
	"github.com/edvart/padel-americano/internal/roundrecorder"
	"github.com/edvart/padel-americano/internal/store"
	"github.com/edvart/padel-americano/internal/tournament"
	"github.com/edvart/padel-americano/internal/web"
)

func main() {
	cfg := config.Load()
	log := cfg.NewLogger()

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		log.WithError(err).Fatal("Failed to create data directory")
	}

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Initialize tournament and seed it from persisted state
	tour := tournament.New(log, nil)

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	roster, err := db.ListPlayers(bootCtx)
	if err != nil {
		log.WithError(err).Fatal("Failed to load roster")
	}
	history, err := db.ListRounds(bootCtx)
	if err != nil {
		log.WithError(err).Fatal("Failed to load round history")
	}
	courts, err := db.GetCourts(bootCtx)
	if err != nil {
		log.WithError(err).Fatal("Failed to load court setting")
	}
	bootCancel()

	tour.Seed(roster, history, courts)
	log.WithField("players", len(roster)).WithField("rounds", len(history)).Info("State loaded")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start recorder before the tournament so no event is missed
	recorder := roundrecorder.New(db, log)
	go recorder.Run(ctx, tour.Events())

	// Start tournament actor
	go tour.Run(ctx)

	// Initialize web server
	server := web.NewServer(tour, log, web.Config{CORSOrigins: cfg.CORSOrigins})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	// Handle shutdown signals
	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Info("Shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("HTTP server shutdown error")
		}
	}()

	log.WithField("port", cfg.Port).Info("Server running")
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("HTTP server error")
	}

	log.Info("Server stopped")
}
