// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names are Spanish to match the public API.

# Request Types

  - VoteRequest: candidatoId

# Response Types

  - VoteResponse: success, id
  - ErrorResponse: error

# Domain Types

  - Candidate: id, nombre, partido
  - VoteRecord: one stored vote (id, candidatoId, fecha)
  - VoteEvent: notification sent after a vote is stored

# Messages

	MsgCandidateIDRequired = "Se requiere candidatoId"
	MsgCandidateIDInvalid  = "candidatoId debe ser un número entero"
	MsgInvalidJSON         = "JSON inválido"
*/
package models
