// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/votaciones/cliparse"
)

func TestOpen_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "votaciones.db")

	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file at %s: %v", path, err)
	}
}

func TestOpen_UnknownType(t *testing.T) {
	if _, err := Open(cliparse.Config{DatabaseType: "mysql", DatabaseURL: "x"}); err == nil {
		t.Error("expected error for unknown database type")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votaciones.db")
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: path})
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	// Simulate several restarts against the same file
	for i := 0; i < 3; i++ {
		if err := CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	var count int
	err = conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'votos'`).Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly one votos table, got %d", count)
	}
}

func TestCreateSchema_UnknownType(t *testing.T) {
	conn, err := Open(cliparse.Config{DatabaseType: cliparse.DatabaseSQLite, DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := CreateSchema(context.Background(), conn, "oracle"); err == nil {
		t.Error("expected error for unknown schema type")
	}
}

func TestSQLiteFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"db/votaciones.db", "db/votaciones.db"},
		{"file:db/votaciones.db?_pragma=busy_timeout(5000)", "db/votaciones.db"},
		{":memory:", ""},
		{"file::memory:", ""},
	}

	for _, tt := range tests {
		if got := sqliteFilePath(tt.dsn); got != tt.want {
			t.Errorf("sqliteFilePath(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}
