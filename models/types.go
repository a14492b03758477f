package models

import "time"

// Client-facing messages
const (
	MsgCandidateIDRequired = "Se requiere candidatoId"
	MsgCandidateIDInvalid  = "candidatoId debe ser un número entero"
	MsgInvalidJSON         = "JSON inválido"
)

// Request types

// VoteRequest keeps candidatoId untyped so missing and falsy values can be
// told apart from a wrong type.
type VoteRequest struct {
	CandidatoID any `json:"candidatoId"`
}

// Response types

type VoteResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// Domain types

type Candidate struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Partido string `json:"partido"`
}

type VoteRecord struct {
	ID          int64     `json:"id"`
	CandidatoID int64     `json:"candidatoId"`
	Fecha       time.Time `json:"fecha"`
}

// VoteEvent is published after a vote is stored
type VoteEvent struct {
	EventID     string    `json:"eventId"`
	VoteID      int64     `json:"voteId"`
	CandidatoID int64     `json:"candidatoId"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
