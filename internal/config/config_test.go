package config

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, int32(1280), cfg.Window.Width)
	assert.Equal(t, int32(60), cfg.Window.TargetFPS)
	assert.InDelta(t, 250.0/3.6, cfg.Car.MaxSpeed, 1e-9)
	assert.InDelta(t, 70.0/3.6, cfg.Car.DriftSpeedThreshold, 1e-9)
	assert.Equal(t, []string{"up", "w"}, cfg.Keys.MoveForward)
	assert.Equal(t, "levels", cfg.Paths.Levels)
	assert.False(t, cfg.Debug.ShowFPS)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("window.width", 800)
	v.Set("keys.change_camera", []string{"space"})

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, []string{"space"}, cfg.Keys.ChangeCamera)
}

func TestResolveKeybinds(t *testing.T) {
	keys := Keybinds{
		MoveForward:  []string{"up", "W"},
		MoveBackward: []string{"down", "s"},
		TurnLeft:     []string{"left", "a"},
		TurnRight:    []string{"right", "d"},
		ChangeCamera: []string{"c"},
	}
	resolved, err := keys.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []int32{rl.KeyUp, rl.KeyW}, resolved.MoveForward)
	assert.Equal(t, []int32{rl.KeyC}, resolved.ChangeCamera)
}

func TestResolveUnknownKeyFailsAtLoad(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("keys.turn_left", []string{"joystick-7"})

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joystick-7")
	assert.Contains(t, err.Error(), "turn_left")
}
