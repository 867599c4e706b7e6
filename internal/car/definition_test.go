package car

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: GT-1\ncolor: blue\nscale: 1.5\npart: wedge\n"), 0o644))

	d, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "GT-1", d.Name)
	assert.Equal(t, rl.Blue, d.BodyColor())
	assert.Equal(t, float32(1.5), d.Scale)
	assert.Equal(t, "wedge", d.Part)
}

func TestLoadDefinitionDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	d, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "bare", d.Name, "name defaults to the file name")
	assert.Equal(t, float32(1), d.Scale)
	assert.Equal(t, rl.Red, d.BodyColor(), "unknown color falls back to red")
}

func TestLoadDirSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.yaml"), []byte("name: OK\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(":\n\t- nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	defs, errs := LoadDir(dir)
	require.Len(t, defs, 1)
	assert.Equal(t, "OK", defs[0].Name)
	assert.Len(t, errs, 1)
}

func TestLoadDirMissing(t *testing.T) {
	defs, errs := LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.Nil(t, defs)
	assert.Len(t, errs, 1)
}
