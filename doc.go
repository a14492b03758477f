// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Votaciones API server.

Votaciones serves a fixed list of candidates and records one row per vote
in a relational store.

# Starting the Server

With no configuration the server listens on port 3001 and stores votes in
db/votaciones.db (SQLite):

	go run .

Or with flags:

	go run . -p 8080 -d /var/lib/votaciones/votos.db -c candidatos.json

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - CANDIDATES_FILE (-c): JSON candidate list (default: built-in)
  - RABBITMQ_URL (-amqp): Publish vote events when set
  - RABBITMQ_QUEUE (-queue): Queue for vote events (default: votos)

A .env file in the working directory is loaded first.

# Lifecycle

Failing to open the database or load the candidates stops the process.
Failing to create the votos table is only logged. On SIGINT or SIGTERM the
listener is closed without draining requests, then the database handle is
released.

# Architecture

  - handlers: HTTP request handlers (candidates, voting, index)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - registry: Candidate list
  - store: Vote recording
  - events: RabbitMQ vote events
  - db: Connection and schema creation
  - cliparse: Configuration parsing
*/
package main
