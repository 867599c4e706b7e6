package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMap(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTileGridMap(t *testing.T) {
	path := writeMap(t, "arena.json", `{
		"name": "arena",
		"width": 5, "height": 5,
		"tiles": [
			[1,1,1,1,1],
			[1,0,0,0,1],
			[1,0,0,0,1],
			[1,0,0,0,1],
			[1,1,1,1,1]
		],
		"start": {"x": 2, "y": 2}
	}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Tiles[0][0])
	assert.Equal(t, 0, m.Tiles[2][2])
	assert.Equal(t, Point{X: 2, Y: 2}, m.Start)
	// Absent sections come back empty, not nil.
	assert.NotNil(t, m.Track)
	assert.Empty(t, m.Track)
	assert.NotNil(t, m.Checkpoints)
	assert.NotNil(t, m.Obstacles)
}

func TestLoadTrackMapSegmentDefaults(t *testing.T) {
	path := writeMap(t, "circuit.json", `{
		"name": "circuit",
		"width": 10, "height": 10,
		"start": {"x": 5, "y": 5},
		"track": [
			{"position": [1, 0, 2]},
			{"type": "curve", "position": [3, 0, 4], "rotation": [0, 90, 0], "scale": [2, 1, 1]}
		]
	}`)

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Track, 2)

	first := m.Track[0]
	assert.Equal(t, DefaultPartType, first.Type)
	assert.Equal(t, mgl32.Vec3{1, 0, 2}, first.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, first.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, first.Scale)

	second := m.Track[1]
	assert.Equal(t, "curve", second.Type)
	assert.Equal(t, mgl32.Vec3{0, 90, 0}, second.Rotation)
	assert.Equal(t, mgl32.Vec3{2, 1, 1}, second.Scale)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("levels/track.map")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPath))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPath))
}

func TestLoadParseError(t *testing.T) {
	path := writeMap(t, "broken.json", `{"width": 5,`)
	_, err := Load(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadSchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative width", `{"width": -1, "height": 5, "start": {"x": 0, "y": 0}}`},
		{"zero height", `{"width": 5, "height": 0, "start": {"x": 0, "y": 0}}`},
		{"row count mismatch", `{"width": 2, "height": 3, "tiles": [[0,0],[0,0]], "start": {"x": 0, "y": 0}}`},
		{"row length mismatch", `{"width": 2, "height": 2, "tiles": [[0,0],[0]], "start": {"x": 0, "y": 0}}`},
		{"start out of bounds", `{"width": 5, "height": 5, "start": {"x": 5, "y": 2}}`},
		{"negative obstacle radius", `{"width": 5, "height": 5, "start": {"x": 1, "y": 1},
			"obstacles": [{"position": {"x": 2, "y": 2}, "radius": -1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMap(t, "bad.json", tt.content)
			_, err := Load(path)
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr, "want SchemaError, got %v", err)
		})
	}
}

func TestLoadTreatsTileValuesAsOpaque(t *testing.T) {
	// Tile codes beyond the generator's 0/1 convention are not rejected.
	path := writeMap(t, "coded.json", `{
		"width": 2, "height": 2,
		"tiles": [[7, 42], [-3, 0]],
		"start": {"x": 0, "y": 0}
	}`)
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, m.Tiles[0][1])
	assert.Equal(t, -3, m.Tiles[1][0])
}
