package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateEnclosed builds a rectangular bordered tile grid: every border
// cell is wallTile, every interior cell emptyTile, start at the integer
// center. Pure; persisting the result is the caller's business (see Save).
func GenerateEnclosed(width, height, wallTile, emptyTile int) MapDescription {
	tiles := make([][]int, height)
	for y := 0; y < height; y++ {
		row := make([]int, width)
		for x := 0; x < width; x++ {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				row[x] = wallTile
			} else {
				row[x] = emptyTile
			}
		}
		tiles[y] = row
	}
	m := MapDescription{
		Name:   "Enclosed Generated Map",
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Start:  Point{X: width / 2, Y: height / 2},
	}
	m.fillDefaults()
	return m
}

// Save writes m to path in the map file format, creating parent directories
// as needed. Save then Load yields an equal MapDescription.
func Save(m *MapDescription, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
