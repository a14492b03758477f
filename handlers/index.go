// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/votaciones/middleware"
)

const indexPage = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Sistema de Votaciones 2025</title></head>
<body>
  <h1>Sistema de Votaciones 2025</h1>
  <p>API operativa. Endpoints:</p>
  <ul>
    <li><a href="/api/candidatos">GET /api/candidatos</a></li>
    <li>POST /api/votar (body: {"candidatoId": number})</li>
  </ul>
</body>
</html>
`

// Index handles GET / with a page listing the API endpoints
func Index(w http.ResponseWriter, r *http.Request) {
	middleware.HTMLResponse(w, indexPage)
}
