package config

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/viper"
)

// Config holds every runtime setting the game consumes. It is built once at
// startup (defaults, then config file, then flags/env via viper) and passed
// into the game loop and input handler at construction time. Nothing reads
// configuration through package-level state.
type Config struct {
	Window Window     `mapstructure:"window"`
	Car    CarPhysics `mapstructure:"car"`
	Keys   Keybinds   `mapstructure:"keys"`
	Paths  Paths      `mapstructure:"paths"`
	Debug  Debug      `mapstructure:"debug"`
}

// Window controls the raylib window and frame pacing.
type Window struct {
	Width     int32  `mapstructure:"width"`
	Height    int32  `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	TargetFPS int32  `mapstructure:"target_fps"`
}

// CarPhysics holds the tuning constants for the turning/drift helper.
// Speeds are in m/s; the drift threshold and max speed correspond to
// 70 km/h and 250 km/h.
type CarPhysics struct {
	Speed               float64 `mapstructure:"speed"`
	Acceleration        float64 `mapstructure:"acceleration"`
	Braking             float64 `mapstructure:"braking"`
	MaxSpeed            float64 `mapstructure:"max_speed"`
	DriftFactor         float64 `mapstructure:"drift_factor"`
	DriftSpeedThreshold float64 `mapstructure:"drift_speed_threshold"`
}

// Keybinds names the recognized input actions. Each action may list several
// key names (e.g. arrow keys and WASD); Resolve maps them to raylib key codes.
type Keybinds struct {
	MoveForward  []string `mapstructure:"move_forward"`
	MoveBackward []string `mapstructure:"move_backward"`
	TurnLeft     []string `mapstructure:"turn_left"`
	TurnRight    []string `mapstructure:"turn_right"`
	ChangeCamera []string `mapstructure:"change_camera"`
}

// Paths points at the flat-file game data.
type Paths struct {
	Levels string `mapstructure:"levels"`
	Cars   string `mapstructure:"cars"`
	Parts  string `mapstructure:"parts"`
}

// Debug toggles the engine overlays.
type Debug struct {
	ShowFPS      bool `mapstructure:"show_fps"`
	ShowMemAlloc bool `mapstructure:"show_memalloc"`
}

// SetDefaults registers the default value for every key on v so a bare run
// (no file, no flags) behaves like the stock prototype.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "racer")
	v.SetDefault("window.target_fps", 60)

	v.SetDefault("car.speed", 0.2)
	v.SetDefault("car.acceleration", 0.02)
	v.SetDefault("car.braking", 0.03)
	v.SetDefault("car.max_speed", 250.0/3.6)
	v.SetDefault("car.drift_factor", 0.7)
	v.SetDefault("car.drift_speed_threshold", 70.0/3.6)

	v.SetDefault("keys.move_forward", []string{"up", "w"})
	v.SetDefault("keys.move_backward", []string{"down", "s"})
	v.SetDefault("keys.turn_left", []string{"left", "a"})
	v.SetDefault("keys.turn_right", []string{"right", "d"})
	v.SetDefault("keys.change_camera", []string{"c"})

	v.SetDefault("paths.levels", "levels")
	v.SetDefault("paths.cars", "assets/cars")
	v.SetDefault("paths.parts", "assets/parts/trackparts.json")

	v.SetDefault("debug.show_fps", false)
	v.SetDefault("debug.show_memalloc", false)
}

// Load resolves the final configuration from v (defaults must already be
// set). Keybinds are validated here so a typo fails at startup, not when the
// key is first pressed.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.Keys.Resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// keyNames maps the recognized key names to raylib key codes. Names are
// matched case-insensitively.
var keyNames = map[string]int32{
	"up":     rl.KeyUp,
	"down":   rl.KeyDown,
	"left":   rl.KeyLeft,
	"right":  rl.KeyRight,
	"w":      rl.KeyW,
	"a":      rl.KeyA,
	"s":      rl.KeyS,
	"d":      rl.KeyD,
	"c":      rl.KeyC,
	"space":  rl.KeySpace,
	"enter":  rl.KeyEnter,
	"escape": rl.KeyEscape,
	"shift":  rl.KeyLeftShift,
	"p":      rl.KeyP,
}

// ResolvedKeys holds the raylib key codes per action, ready for per-frame
// IsKeyDown polling.
type ResolvedKeys struct {
	MoveForward  []int32
	MoveBackward []int32
	TurnLeft     []int32
	TurnRight    []int32
	ChangeCamera []int32
}

// Resolve maps key names to raylib key codes. An unrecognized name is a
// configuration error listing the valid options.
func (k Keybinds) Resolve() (ResolvedKeys, error) {
	var out ResolvedKeys
	var err error
	if out.MoveForward, err = resolveList("move_forward", k.MoveForward); err != nil {
		return out, err
	}
	if out.MoveBackward, err = resolveList("move_backward", k.MoveBackward); err != nil {
		return out, err
	}
	if out.TurnLeft, err = resolveList("turn_left", k.TurnLeft); err != nil {
		return out, err
	}
	if out.TurnRight, err = resolveList("turn_right", k.TurnRight); err != nil {
		return out, err
	}
	if out.ChangeCamera, err = resolveList("change_camera", k.ChangeCamera); err != nil {
		return out, err
	}
	return out, nil
}

func resolveList(action string, names []string) ([]int32, error) {
	codes := make([]int32, 0, len(names))
	for _, name := range names {
		code, ok := keyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("keybind %s: unknown key %q (recognized: %s)",
				action, name, strings.Join(knownKeyNames(), ", "))
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func knownKeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for n := range keyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
