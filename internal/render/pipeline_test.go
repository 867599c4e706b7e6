package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"racer/internal/level"
	"racer/internal/track"
	"racer/internal/world"
)

type meshCall struct {
	vertices []mgl32.Vec3
	faces    [][3]int
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
}

// recorder captures RenderMesh submissions in order.
type recorder struct {
	calls []meshCall
}

func (r *recorder) RenderMesh(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3) {
	r.calls = append(r.calls, meshCall{vertices, faces, position, rotation, scale})
}

func triangleLibrary() *track.Library {
	return track.New(map[string]track.Geometry{
		"straight": {
			Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Faces:    [][3]int{{0, 1, 2}},
		},
	})
}

func TestDrawTrackSingleSegmentIdentityTransform(t *testing.T) {
	lib := triangleLibrary()
	w := &world.World{Track: []level.SegmentSpec{
		{Type: "straight", Position: mgl32.Vec3{0, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}},
	}}
	rec := &recorder{}

	DrawTrack(rec, w, lib, zap.NewNop())

	require.Len(t, rec.calls, 1)
	call := rec.calls[0]
	assert.Equal(t, []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, call.vertices)
	assert.Equal(t, [][3]int{{0, 1, 2}}, call.faces)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, call.position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, call.rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, call.scale)
}

func TestDrawTrackSkipsUnknownPartAndContinues(t *testing.T) {
	lib := triangleLibrary()
	w := &world.World{Track: []level.SegmentSpec{
		{Type: "hyperloop", Scale: mgl32.Vec3{1, 1, 1}},
		{Type: "straight", Position: mgl32.Vec3{5, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}},
	}}
	rec := &recorder{}
	core, logs := observer.New(zap.WarnLevel)

	DrawTrack(rec, w, lib, zap.New(core))

	// Exactly one submission (the known segment) and exactly one diagnostic.
	require.Len(t, rec.calls, 1)
	assert.Equal(t, mgl32.Vec3{5, 0, 0}, rec.calls[0].position)
	assert.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "unknown track part type, skipping segment", entry.Message)
	assert.Equal(t, "hyperloop", entry.ContextMap()["type"])
}

func TestDrawTrackEmptyTypeFallsBackToStraight(t *testing.T) {
	lib := triangleLibrary()
	w := &world.World{Track: []level.SegmentSpec{{Scale: mgl32.Vec3{1, 1, 1}}}}
	rec := &recorder{}

	DrawTrack(rec, w, lib, zap.NewNop())
	assert.Len(t, rec.calls, 1)
}

func TestDrawTrackPreservesArrayOrder(t *testing.T) {
	lib := triangleLibrary()
	w := &world.World{Track: []level.SegmentSpec{
		{Type: "straight", Position: mgl32.Vec3{1, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}},
		{Type: "straight", Position: mgl32.Vec3{2, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}},
		{Type: "straight", Position: mgl32.Vec3{3, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}},
	}}
	rec := &recorder{}

	DrawTrack(rec, w, lib, zap.NewNop())

	require.Len(t, rec.calls, 3)
	for i, call := range rec.calls {
		assert.Equal(t, float32(i+1), call.position.X())
	}
}

func TestDrawTrackEmptyWorld(t *testing.T) {
	rec := &recorder{}
	DrawTrack(rec, &world.World{Track: []level.SegmentSpec{}}, track.Empty(), zap.NewNop())
	assert.Empty(t, rec.calls)
}
