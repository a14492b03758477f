// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

An optional .env file can be loaded first; values already in the
environment win:

	cliparse.LoadEnvFile(".env")

# CLI Flags

	-p      Server port
	-d      Database URL (postgres) or file path (sqlite)
	-t      Database type: sqlite or postgres
	-c      Candidates JSON file
	-amqp   RabbitMQ URL for vote events
	-queue  RabbitMQ queue name

# Environment Variables

Flags fall back to environment variables, then to defaults:

	PORT            → -p      (default 3001)
	DATABASE_URL    → -d      (default db/votaciones.db)
	DATABASE_TYPE   → -t      (default sqlite)
	CANDIDATES_FILE → -c      (default built-in list)
	RABBITMQ_URL    → -amqp   (default: events disabled)
	RABBITMQ_QUEUE  → -queue  (default votos)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when PORT is not a valid port number, when the
database type is unknown, or when postgres is selected without a URL.
*/
package cliparse
