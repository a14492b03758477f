// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting API.

# Handler Types

  - CandidatesHandler: serves the candidate registry
  - VotingHandler: accepts vote submissions
  - Index: HTML page describing the endpoints

Handlers receive their dependencies through constructors:

	candidates := handlers.NewCandidatesHandler(reg)
	voting := handlers.NewVotingHandler(votes, publisher)

# Voting

	POST /api/votar {"candidatoId": 1}

	200 {"success": true, "id": 1}
	400 {"error": "Se requiere candidatoId"}       missing, null, 0, false or ""
	400 {"error": "candidatoId debe ser un número entero"}
	400 {"error": "JSON inválido"}
	500 {"error": "<database error message>"}

Only application/json bodies are read; anything else counts as {}. A body
with data after its JSON value is invalid.

The candidate id is not checked against the registry. Once the response has
been flushed a VoteEvent is published with DefaultPublishTimeout; publish
errors are only logged.
*/
package handlers
