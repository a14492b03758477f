// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry holds the read-only candidate list.

The list is loaded once at startup, either from a JSON file or from the
built-in candidatos.json:

	reg, err := registry.Load(cfg.CandidatesFile)

File format:

	[
	  { "id": 1, "nombre": "...", "partido": "..." }
	]

Ids must be positive and unique. List returns the candidates in file order
and never changes for the life of the process.
*/
package registry
