// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"

	"github.com/danielhkuo/votaciones/db"
)

// VoteStore is an append-only log of votes backed by the votos table.
type VoteStore struct {
	db           *sql.DB
	databaseType string
	ready        atomic.Bool
}

func New(conn *sql.DB, databaseType string) *VoteStore {
	return &VoteStore{db: conn, databaseType: databaseType}
}

// Initialize ensures the votos table exists and marks the store ready.
//
// A schema failure is logged and otherwise ignored: the store still becomes
// ready and later writes surface the problem as a StorageError.
func (s *VoteStore) Initialize(ctx context.Context) {
	if err := db.CreateSchema(ctx, s.db, s.databaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
	} else {
		slog.Info("votos table ready")
	}
	s.ready.Store(true)
}

func (s *VoteStore) Ready() bool {
	return s.ready.Load()
}

// RecordVote appends a vote for candidateID and returns the id the database
// assigned to it. The candidate id is not checked against the registry.
func (s *VoteStore) RecordVote(ctx context.Context, candidateID int64) (int64, error) {
	if candidateID == 0 {
		return 0, ErrCandidateIDRequired
	}
	if !s.Ready() {
		return 0, &StorageError{Op: "insert", Err: ErrNotInitialized}
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO votos (candidato_id) VALUES ($1) RETURNING id
	`, candidateID).Scan(&id)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	return id, nil
}

// Close releases the storage handle.
func (s *VoteStore) Close() error {
	return s.db.Close()
}
