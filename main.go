package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/db"
	"github.com/danielhkuo/votaciones/events"
	"github.com/danielhkuo/votaciones/registry"
	"github.com/danielhkuo/votaciones/router"
	"github.com/danielhkuo/votaciones/store"
)

func main() {
	var err error

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the storage handle; there is no degraded mode
	conn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}

	votes := store.New(conn, cfg.DatabaseType)
	defer func() {
		if err := votes.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
		slog.Info("Database closed")
	}()

	// Schema failures are logged inside Initialize and do not stop startup
	votes.Initialize(context.Background())

	reg, err := registry.Load(cfg.CandidatesFile)
	if err != nil {
		slog.Error("failed to load candidates", "error", err, "file", cfg.CandidatesFile)
		votes.Close()
		os.Exit(1)
	}
	slog.Info("Candidates loaded", "count", len(reg.List()))

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.Dial(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			slog.Warn("vote events disabled", "error", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
			slog.Info("Publishing vote events", "queue", cfg.AMQPQueue)
		}
	}

	server := http.Server{
		Handler: router.NewRouter(reg, votes, publisher),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("Shutting down")
		// In-flight requests are not drained
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
