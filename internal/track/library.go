package track

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMalformedLibrary marks a part-library file that could not be read or
// does not have the expected shape. Callers are expected to log it and keep
// going with the empty library Load returns alongside it.
var ErrMalformedLibrary = errors.New("malformed track part library")

// Geometry is the mesh for one track part: a vertex list and triangle faces
// indexing into it. Values are immutable after Load; Lookup hands out the
// shared slices, so callers must not mutate them.
type Geometry struct {
	Vertices []mgl32.Vec3 `json:"vertices"`
	Faces    [][3]int     `json:"faces"`
}

// Library is a name-indexed table of reusable track-part geometry.
type Library struct {
	parts map[string]Geometry
}

// Empty returns a library with no parts. Every Lookup misses.
func Empty() *Library {
	return &Library{parts: map[string]Geometry{}}
}

// New returns a library over an in-memory parts table.
func New(parts map[string]Geometry) *Library {
	if parts == nil {
		return Empty()
	}
	return &Library{parts: parts}
}

// Load reads a JSON mapping of part name to geometry from path. On any
// failure it returns an empty, usable library plus an error wrapping
// ErrMalformedLibrary, so rendering can continue with every segment falling
// into the unknown-part branch.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("%w: read %s: %v", ErrMalformedLibrary, path, err)
	}
	var parts map[string]Geometry
	if err := json.Unmarshal(data, &parts); err != nil {
		return Empty(), fmt.Errorf("%w: parse %s: %v", ErrMalformedLibrary, path, err)
	}
	for name, geo := range parts {
		for _, face := range geo.Faces {
			for _, idx := range face {
				if idx < 0 || idx >= len(geo.Vertices) {
					return Empty(), fmt.Errorf("%w: part %q: face index %d out of range (%d vertices)",
						ErrMalformedLibrary, name, idx, len(geo.Vertices))
				}
			}
		}
	}
	if parts == nil {
		parts = map[string]Geometry{}
	}
	return &Library{parts: parts}, nil
}

// Lookup returns the geometry for a part name. A miss is a normal,
// recoverable condition; the caller chooses the fallback.
func (l *Library) Lookup(name string) (Geometry, bool) {
	geo, ok := l.parts[name]
	return geo, ok
}

// Len returns the number of loaded parts.
func (l *Library) Len() int {
	return len(l.parts)
}

// Names returns the part names in sorted order, for menus and diagnostics.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.parts))
	for name := range l.parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
