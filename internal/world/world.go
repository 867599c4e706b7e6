// Package world turns a loaded map description into the in-session World:
// the resolved track, checkpoints, obstacles, and the initial car and camera
// state. The World is owned by the game loop for one session, read every
// frame by the render pipeline, and never mutated by it.
package world

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"racer/internal/car"
	"racer/internal/level"
)

// cameraHeight is the default camera elevation above the start point.
const cameraHeight = 5

// World is the fully-resolved session state derived from one map.
type World struct {
	Track       []level.SegmentSpec
	Checkpoints []level.Rect
	Obstacles   []level.Obstacle

	CameraPosition mgl32.Vec3
	Car            *car.State
}

// Build expands a map description into a World. It is total: every field of
// a syntactically valid description has a defined default, so Build never
// fails. Slices are cloned so the World stays valid after the description is
// discarded, and are empty rather than nil when the source section is
// absent.
func Build(m *level.MapDescription) *World {
	w := &World{
		Track:       slices.Clone(m.Track),
		Checkpoints: slices.Clone(m.Checkpoints),
		Obstacles:   slices.Clone(m.Obstacles),
	}
	if w.Track == nil {
		w.Track = []level.SegmentSpec{}
	}
	if w.Checkpoints == nil {
		w.Checkpoints = []level.Rect{}
	}
	if w.Obstacles == nil {
		w.Obstacles = []level.Obstacle{}
	}

	start := mgl32.Vec3{float32(m.Start.X), 0, float32(m.Start.Y)}
	w.CameraPosition = start.Add(mgl32.Vec3{0, cameraHeight, 0})
	w.Car = &car.State{Position: start}
	return w
}
