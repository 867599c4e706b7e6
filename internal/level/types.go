package level

import (
	"encoding/json"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPartType is the track part used when a segment does not name one.
const DefaultPartType = "straight"

// MapDescription is a parsed, validated, fully default-filled level file.
// One schema covers both historical map shapes: a tile-grid map (Tiles set,
// Track empty) and a track-segment map (Track set, Tiles empty); either
// section may be present, both may coexist. After Load or GenerateEnclosed
// every slice field is non-nil, so consumers never special-case missing
// sections.
type MapDescription struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Tiles       [][]int       `json:"tiles,omitempty"`
	Start       Point         `json:"start"`
	Track       []SegmentSpec `json:"track"`
	Checkpoints []Rect        `json:"checkpoints"`
	Obstacles   []Obstacle    `json:"obstacles"`
}

// Point is a tile coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned checkpoint area in tile coordinates.
type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Obstacle is a circular blocker on the track.
type Obstacle struct {
	Position Point   `json:"position"`
	Radius   float64 `json:"radius"`
}

// SegmentSpec places one named track part in the world. Render order is
// array order; there is no other ordering constraint.
type SegmentSpec struct {
	Type     string     `json:"type"`
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Vec3 `json:"rotation"` // degrees, applied X then Y then Z
	Scale    mgl32.Vec3 `json:"scale"`
}

// UnmarshalJSON fills segment defaults at parse time: missing type means
// "straight", missing scale means (1,1,1). Rotation and position default to
// zero vectors naturally.
func (s *SegmentSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type     string      `json:"type"`
		Position mgl32.Vec3  `json:"position"`
		Rotation mgl32.Vec3  `json:"rotation"`
		Scale    *mgl32.Vec3 `json:"scale"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Type = raw.Type
	if s.Type == "" {
		s.Type = DefaultPartType
	}
	s.Position = raw.Position
	s.Rotation = raw.Rotation
	if raw.Scale != nil {
		s.Scale = *raw.Scale
	} else {
		s.Scale = mgl32.Vec3{1, 1, 1}
	}
	return nil
}

// fillDefaults is the one centralized pass that turns a syntactically valid
// payload into a fully populated description: absent sections become empty
// slices, never nil.
func (m *MapDescription) fillDefaults() {
	if m.Tiles == nil {
		m.Tiles = [][]int{}
	}
	if m.Track == nil {
		m.Track = []SegmentSpec{}
	}
	if m.Checkpoints == nil {
		m.Checkpoints = []Rect{}
	}
	if m.Obstacles == nil {
		m.Obstacles = []Obstacle{}
	}
}
