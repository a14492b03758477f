// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/votaciones/cliparse"
)

// Open opens and pings the storage handle described by cfg.
//
// For sqlite the parent directory of the database file is created when
// missing, and the pool is limited to a single connection so every writer
// shares one handle.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		return openSQLite(cfg.DatabaseURL)
	case cliparse.DatabasePostgres:
		return openPostgres(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
}

func openSQLite(path string) (*sql.DB, error) {
	file := sqliteFilePath(path)
	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	slog.Info("connected to sqlite", "path", path, "size", fileSize(file))
	return conn, nil
}

func openPostgres(url string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}

	slog.Info("connected to postgres")
	return conn, nil
}

// sqliteFilePath returns the on-disk file for a sqlite DSN, or "" for
// in-memory databases.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

func fileSize(path string) string {
	if path == "" {
		return "in-memory"
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "new"
	}
	if err != nil {
		return "unknown"
	}
	return humanize.Bytes(uint64(info.Size()))
}
