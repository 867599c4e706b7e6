package track

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLibrary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLibrary(t *testing.T) {
	path := writeLibrary(t, `{
		"straight": {"vertices": [[0,0,0],[1,0,0],[0,1,0]], "faces": [[0,1,2]]},
		"curve": {"vertices": [[0,0,0],[1,0,0],[1,0,1],[0,0,1]], "faces": [[0,1,2],[0,2,3]]}
	}`)

	lib, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, []string{"curve", "straight"}, lib.Names())

	geo, ok := lib.Lookup("straight")
	require.True(t, ok)
	assert.Len(t, geo.Vertices, 3)
	assert.Equal(t, [][3]int{{0, 1, 2}}, geo.Faces)

	_, ok = lib.Lookup("loop-the-loop")
	assert.False(t, ok)
}

func TestLoadLibraryMissingFile(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, ErrMalformedLibrary)
	// The returned library is empty but usable.
	require.NotNil(t, lib)
	assert.Equal(t, 0, lib.Len())
	_, ok := lib.Lookup("straight")
	assert.False(t, ok)
}

func TestLoadLibraryMalformedJSON(t *testing.T) {
	path := writeLibrary(t, `{"straight": [1,2,3]}`)
	lib, err := Load(path)
	require.ErrorIs(t, err, ErrMalformedLibrary)
	assert.Equal(t, 0, lib.Len())
}

func TestLoadLibraryFaceIndexOutOfRange(t *testing.T) {
	path := writeLibrary(t, `{
		"bad": {"vertices": [[0,0,0],[1,0,0]], "faces": [[0,1,2]]}
	}`)
	lib, err := Load(path)
	require.ErrorIs(t, err, ErrMalformedLibrary)
	assert.Equal(t, 0, lib.Len())
}

func TestLoadLibraryNegativeFaceIndex(t *testing.T) {
	path := writeLibrary(t, `{
		"bad": {"vertices": [[0,0,0],[1,0,0],[0,1,0]], "faces": [[0,-1,2]]}
	}`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrMalformedLibrary)
}
