package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"racer/internal/level"
	"racer/internal/track"
	"racer/internal/world"
)

// MeshRenderer is the slice of the renderer capability the track pipeline
// needs. Kept narrow so tests can record submissions without a window.
type MeshRenderer interface {
	RenderMesh(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3)
}

// DrawTrack submits one mesh draw per track segment, in array order. A
// segment whose part type is not in the library is logged and skipped; a
// single bad segment never aborts the frame. No segment is reordered or
// rendered twice.
func DrawTrack(r MeshRenderer, w *world.World, lib *track.Library, logger *zap.Logger) {
	for i, seg := range w.Track {
		partType := seg.Type
		if partType == "" {
			partType = level.DefaultPartType
		}
		geo, ok := lib.Lookup(partType)
		if !ok {
			logger.Warn("unknown track part type, skipping segment",
				zap.Int("segment", i),
				zap.String("type", partType))
			continue
		}
		r.RenderMesh(geo.Vertices, geo.Faces, seg.Position, seg.Rotation, seg.Scale)
	}
}
