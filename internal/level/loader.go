package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPath marks a bad map file reference: a path without the .json
// marker (rejected before any read) or a file that cannot be read at all.
var ErrInvalidPath = errors.New("invalid map file path")

// ParseError wraps malformed serialized map data.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse map %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError marks a map that parsed but is semantically invalid: negative
// dimensions, mismatched tile rows, an out-of-bounds start point.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid map %s: %s", e.Path, e.Reason)
}

// Load reads, validates, and default-fills a map file. It performs no
// writes. Errors abort only the caller's start-game transition; see the
// error types above for the taxonomy.
func Load(path string) (*MapDescription, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}
	var m MapDescription
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := m.validate(); err != nil {
		return nil, &SchemaError{Path: path, Reason: err.Error()}
	}
	m.fillDefaults()
	return &m, nil
}

// validate enforces the structural invariants. Tile values are opaque
// classification codes and are deliberately not range-checked.
func (m *MapDescription) validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %dx%d", m.Width, m.Height)
	}
	if len(m.Tiles) > 0 {
		if len(m.Tiles) != m.Height {
			return fmt.Errorf("expected %d tile rows, got %d", m.Height, len(m.Tiles))
		}
		for y, row := range m.Tiles {
			if len(row) != m.Width {
				return fmt.Errorf("tile row %d: expected %d cells, got %d", y, m.Width, len(row))
			}
		}
	}
	if m.Start.X < 0 || m.Start.X >= m.Width || m.Start.Y < 0 || m.Start.Y >= m.Height {
		return fmt.Errorf("start (%d,%d) outside %dx%d grid", m.Start.X, m.Start.Y, m.Width, m.Height)
	}
	for i, o := range m.Obstacles {
		if o.Radius < 0 {
			return fmt.Errorf("obstacle %d: negative radius %v", i, o.Radius)
		}
	}
	return nil
}
