// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"math"
)

var (
	ErrCandidateIDRequired = errors.New("candidate id is required")
	ErrInvalidCandidateID  = errors.New("candidate id must be an integer")
	ErrNotInitialized      = errors.New("vote store not initialized")
)

// StorageError reports a failed read or write against the vote table.
// Error returns the underlying message unchanged; it is shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseCandidateID converts a decoded JSON value into a candidate id.
//
// Falsy values (nil, false, 0, "") are treated as missing and return
// ErrCandidateIDRequired, so a candidate numbered 0 can never receive votes.
// Any other non-integral value returns ErrInvalidCandidateID.
func ParseCandidateID(v any) (int64, error) {
	switch id := v.(type) {
	case nil:
		return 0, ErrCandidateIDRequired
	case bool:
		if !id {
			return 0, ErrCandidateIDRequired
		}
		return 0, ErrInvalidCandidateID
	case string:
		if id == "" {
			return 0, ErrCandidateIDRequired
		}
		return 0, ErrInvalidCandidateID
	case float64:
		if id == 0 || math.IsNaN(id) {
			return 0, ErrCandidateIDRequired
		}
		if id != math.Trunc(id) || id >= math.MaxInt64 || id < math.MinInt64 {
			return 0, ErrInvalidCandidateID
		}
		return int64(id), nil
	case int64:
		if id == 0 {
			return 0, ErrCandidateIDRequired
		}
		return id, nil
	case int:
		if id == 0 {
			return 0, ErrCandidateIDRequired
		}
		return int64(id), nil
	default:
		return 0, ErrInvalidCandidateID
	}
}
