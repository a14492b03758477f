// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting API.

# Route Registration

NewRouter wires the handlers onto an http.ServeMux and wraps it in CORS:

	handler := router.NewRouter(reg, votes, publisher)

# Endpoints

	GET  /               - HTML index of endpoints
	GET  /health         - "OK"
	GET  /api/candidatos - Candidate list
	POST /api/votar      - Record a vote

Every route except /health goes through middleware.WithLogging.
*/
package router
