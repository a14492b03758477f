// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danielhkuo/votaciones/models"
)

//go:embed candidatos.json
var defaultCandidates []byte

var ErrNoCandidates = errors.New("candidate list is empty")

// Registry is the fixed list of candidates for the lifetime of the process
type Registry struct {
	candidates []models.Candidate
}

// Load reads the candidate list from path, or the built-in list when path
// is empty.
func Load(path string) (*Registry, error) {
	data := defaultCandidates
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse builds a Registry from a JSON array of candidates
func Parse(data []byte) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var candidates []models.Candidate
	if err := dec.Decode(&candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	seen := make(map[int64]bool, len(candidates))
	for _, c := range candidates {
		if c.ID <= 0 {
			return nil, fmt.Errorf("candidate %q: id must be positive, got %d", c.Nombre, c.ID)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate candidate id %d", c.ID)
		}
		seen[c.ID] = true
	}

	return &Registry{candidates: candidates}, nil
}

// List returns the candidates in definition order. The slice is a copy.
func (r *Registry) List() []models.Candidate {
	out := make([]models.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}
