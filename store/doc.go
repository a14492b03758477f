// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store records votes.

A VoteStore wraps the process-wide storage handle. It starts uninitialized
and becomes ready after Initialize:

	votes := store.New(conn, cfg.DatabaseType)
	votes.Initialize(ctx)
	id, err := votes.RecordVote(ctx, 1)

# Errors

  - ErrCandidateIDRequired: the id was missing or falsy
  - ErrInvalidCandidateID: the id was present but not an integer
  - *StorageError: the insert failed; Error() is the driver's message

There is no update, delete, or tally operation.
*/
package store
