// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/votaciones/middleware"
	"github.com/danielhkuo/votaciones/models"
)

// CandidateLister is implemented by *registry.Registry
type CandidateLister interface {
	List() []models.Candidate
}

type CandidatesHandler struct {
	registry CandidateLister
}

func NewCandidatesHandler(registry CandidateLister) *CandidatesHandler {
	return &CandidatesHandler{registry: registry}
}

// List handles GET /api/candidatos
func (h *CandidatesHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.registry.List())
}
