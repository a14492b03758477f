// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/models"
	"github.com/danielhkuo/votaciones/testutil"
)

func newReadyStore(t *testing.T) *VoteStore {
	t.Helper()

	conn := testutil.OpenTestDB(t)
	s := New(conn, cliparse.DatabaseSQLite)
	s.Initialize(context.Background())
	return s
}

func TestRecordVote_IncreasingIDs(t *testing.T) {
	s := newReadyStore(t)
	ctx := context.Background()

	var last int64
	for i, candidate := range []int64{1, 2, 1, 1, 2, 7} {
		id, err := s.RecordVote(ctx, candidate)
		if err != nil {
			t.Fatalf("vote %d failed: %v", i, err)
		}
		if id <= last {
			t.Errorf("vote %d: id %d not greater than previous %d", i, id, last)
		}
		last = id
	}
}

func TestRecordVote_FirstIDIsOne(t *testing.T) {
	s := newReadyStore(t)

	id, err := s.RecordVote(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}
}

func TestRecordVote_RoundTrip(t *testing.T) {
	s := newReadyStore(t)

	id, err := s.RecordVote(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}

	var rec models.VoteRecord
	err = s.db.QueryRow(`
		SELECT id, candidato_id, fecha FROM votos WHERE id = $1
	`, id).Scan(&rec.ID, &rec.CandidatoID, &rec.Fecha)
	if err != nil {
		t.Fatalf("Failed to read back vote: %v", err)
	}
	if rec.ID != id {
		t.Errorf("expected id %d, got %d", id, rec.ID)
	}
	if rec.CandidatoID != 2 {
		t.Errorf("expected candidato_id 2, got %d", rec.CandidatoID)
	}
	if rec.Fecha.IsZero() {
		t.Error("expected fecha to be set")
	}
	if age := time.Since(rec.Fecha); age < -time.Minute || age > time.Minute {
		t.Errorf("expected fecha near insert time, got %s", rec.Fecha)
	}
}

func TestRecordVote_ZeroRejected(t *testing.T) {
	s := newReadyStore(t)

	_, err := s.RecordVote(context.Background(), 0)
	if !errors.Is(err, ErrCandidateIDRequired) {
		t.Fatalf("expected ErrCandidateIDRequired, got %v", err)
	}
	if n := testutil.TotalVotes(t, s.db); n != 0 {
		t.Errorf("rejected vote should not be stored, found %d rows", n)
	}
}

func TestRecordVote_NotInitialized(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := New(conn, cliparse.DatabaseSQLite)

	_, err := s.RecordVote(context.Background(), 1)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRecordVote_StorageErrorPassesMessage(t *testing.T) {
	conn := testutil.OpenTestDB(t)
	s := New(conn, cliparse.DatabaseSQLite)
	s.Initialize(context.Background())

	if _, err := conn.Exec(`DROP TABLE votos`); err != nil {
		t.Fatal(err)
	}

	_, err := s.RecordVote(context.Background(), 1)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if storageErr.Error() != storageErr.Err.Error() {
		t.Errorf("expected verbatim driver message, got %q", storageErr.Error())
	}
	if storageErr.Op != "insert" {
		t.Errorf("expected op insert, got %s", storageErr.Op)
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	conn := testutil.OpenTestDB(t)
	ctx := context.Background()

	first := New(conn, cliparse.DatabaseSQLite)
	first.Initialize(ctx)
	if _, err := first.RecordVote(ctx, 1); err != nil {
		t.Fatal(err)
	}

	// A second store on the same handle simulates a restart
	second := New(conn, cliparse.DatabaseSQLite)
	second.Initialize(ctx)
	if !second.Ready() {
		t.Fatal("expected store to be ready after second Initialize")
	}

	id, err := second.RecordVote(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if id != 2 {
		t.Errorf("expected id 2 after restart, got %d", id)
	}
}

func TestInitialize_SchemaFailureIsNotFatal(t *testing.T) {
	conn := testutil.OpenTestDB(t)
	s := New(conn, "unsupported")

	s.Initialize(context.Background())
	if !s.Ready() {
		t.Fatal("store should still become ready after schema failure")
	}

	_, err := s.RecordVote(context.Background(), 1)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError from missing table, got %v", err)
	}
}

func TestRecordVote_Concurrent(t *testing.T) {
	s := newReadyStore(t)
	ctx := context.Background()

	const n = 20
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(candidate int64) {
			defer wg.Done()
			id, err := s.RecordVote(ctx, candidate)
			if err != nil {
				t.Errorf("concurrent vote failed: %v", err)
				return
			}
			ids <- id
		}(int64(i%2 + 1))
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestParseCandidateID(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr error
	}{
		{"number", float64(1), 1, nil},
		{"large number", float64(42), 42, nil},
		{"negative number", float64(-3), -3, nil},
		{"int64", int64(5), 5, nil},
		{"nil", nil, 0, ErrCandidateIDRequired},
		{"zero", float64(0), 0, ErrCandidateIDRequired},
		{"false", false, 0, ErrCandidateIDRequired},
		{"empty string", "", 0, ErrCandidateIDRequired},
		{"fraction", 1.5, 0, ErrInvalidCandidateID},
		{"true", true, 0, ErrInvalidCandidateID},
		{"string", "1", 0, ErrInvalidCandidateID},
		{"object", map[string]any{"id": 1}, 0, ErrInvalidCandidateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCandidateID(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
