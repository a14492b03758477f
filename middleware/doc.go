// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by the handlers.

# Logging

WithLogging logs the start and end of each request with slog and tags it
with a request id (X-Request-ID, generated with uuid when absent):

	mux.HandleFunc("POST /api/votar", middleware.WithLogging(h.Vote))

Handlers can read the id with RequestID(r.Context()).

# Responses

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Se requiere candidatoId")
	middleware.HTMLResponse(w, page)

ErrorResponse always writes {"error": message}.

# Request Parsing

	var req models.VoteRequest
	err := middleware.ParseJSONBody(r, &req)

An empty body is not an error.

# CORS

CORS wraps the whole mux and allows any origin. Preflight OPTIONS requests
are answered directly.
*/
package middleware
