// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/votaciones/events"
	"github.com/danielhkuo/votaciones/middleware"
	"github.com/danielhkuo/votaciones/models"
	"github.com/danielhkuo/votaciones/store"
)

// VoteRecorder is implemented by *store.VoteStore
type VoteRecorder interface {
	RecordVote(ctx context.Context, candidateID int64) (int64, error)
}

// DefaultPublishTimeout bounds how long a vote event may take to publish
const DefaultPublishTimeout = 5 * time.Second

type VotingHandler struct {
	votes          VoteRecorder
	publisher      events.Publisher
	publishTimeout time.Duration
}

func NewVotingHandler(votes VoteRecorder, publisher events.Publisher) *VotingHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &VotingHandler{votes: votes, publisher: publisher, publishTimeout: DefaultPublishTimeout}
}

// Vote handles POST /api/votar
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	// Bodies not declared as JSON are ignored and read as {}
	var req models.VoteRequest
	if middleware.IsJSON(r) {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
			return
		}
	}

	candidateID, err := store.ParseCandidateID(req.CandidatoID)
	if err != nil {
		writeVoteError(w, err)
		return
	}

	// In-flight inserts are not cancelled when the client goes away
	ctx := context.WithoutCancel(r.Context())

	voteID, err := h.votes.RecordVote(ctx, candidateID)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "candidato_id", candidateID, "request_id", requestID)
		writeVoteError(w, err)
		return
	}

	slog.Info("vote recorded", "vote_id", voteID, "candidato_id", candidateID, "request_id", requestID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success: true,
		ID:      voteID,
	})

	// The client has its answer before the broker is involved
	if err := http.NewResponseController(w).Flush(); err != nil {
		slog.Debug("response flush not supported", "error", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, h.publishTimeout)
	defer cancel()
	if err := h.publisher.PublishVote(publishCtx, events.NewVoteEvent(voteID, candidateID)); err != nil {
		slog.Warn("failed to publish vote event", "error", err, "vote_id", voteID, "request_id", requestID)
	}
}

func writeVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrCandidateIDRequired):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgCandidateIDRequired)
	case errors.Is(err, store.ErrInvalidCandidateID):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgCandidateIDInvalid)
	default:
		// Storage failures are reported with the driver's own message
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
