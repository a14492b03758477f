// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the storage handle and creates the schema.

# Opening

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg)

  - sqlite: modernc.org/sqlite, file-backed. The directory is created if
    missing and the pool is capped at one connection.
  - postgres: github.com/lib/pq.

# Schema Creation

CreateSchema creates the single votos table:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

	votos
	  id            auto-increment primary key
	  candidato_id  integer, required
	  fecha         timestamp, defaults to insertion time

Rows are only ever inserted. Nothing updates or deletes them.
*/
package db
