package car

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML definition for a selectable car
// (e.g. assets/cars/roadster.yaml). Part names a mesh in the track-part
// library used to draw the car; when the part is missing the renderer falls
// back to a flat-color box.
type Definition struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color,omitempty"`
	Scale float32 `yaml:"scale,omitempty"`
	Part  string  `yaml:"part,omitempty"`
}

// namedColors are the recognized color names for car definitions.
var namedColors = map[string]rl.Color{
	"red":    rl.Red,
	"green":  rl.Green,
	"blue":   rl.Blue,
	"yellow": rl.Yellow,
	"orange": rl.Orange,
	"purple": rl.Purple,
	"white":  rl.White,
	"black":  rl.Black,
	"gray":   rl.Gray,
}

// BodyColor resolves the definition's color name. Unknown or empty names
// fall back to red.
func (d Definition) BodyColor() rl.Color {
	if c, ok := namedColors[strings.ToLower(d.Color)]; ok {
		return c
	}
	return rl.Red
}

// LoadDefinition parses one car YAML file. Name defaults to the file name,
// scale to 1.
func LoadDefinition(path string) (Definition, error) {
	var d Definition
	data, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read car definition: %w", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("parse car definition %s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if d.Scale == 0 {
		d.Scale = 1
	}
	return d, nil
}

// LoadDir loads every .yaml car definition under dir, sorted by file name.
// Unreadable or malformed files are skipped and reported in the returned
// error list; an empty directory yields an empty slice, not an error.
func LoadDir(dir string) ([]Definition, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("read car directory: %w", err)}
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	defs := make([]Definition, 0, len(names))
	var errs []error
	for _, name := range names {
		d, err := LoadDefinition(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, d)
	}
	return defs, errs
}
