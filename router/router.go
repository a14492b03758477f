// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/votaciones/events"
	"github.com/danielhkuo/votaciones/handlers"
	"github.com/danielhkuo/votaciones/middleware"
)

// NewRouter builds the HTTP handler for the whole API, wrapped in CORS.
func NewRouter(registry handlers.CandidateLister, votes handlers.VoteRecorder, publisher events.Publisher) http.Handler {
	mux := http.NewServeMux()

	candidatesHandler := handlers.NewCandidatesHandler(registry)
	votingHandler := handlers.NewVotingHandler(votes, publisher)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/candidatos", middleware.WithLogging(candidatesHandler.List))
	mux.HandleFunc("POST /api/votar", middleware.WithLogging(votingHandler.Vote))

	// Root endpoint, exact match only
	mux.HandleFunc("GET /{$}", middleware.WithLogging(handlers.Index))

	return middleware.CORS(mux)
}
