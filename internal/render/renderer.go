// Package render implements the renderer capability boundary the game core
// draws through, plus the track render pipeline that walks a World and
// submits mesh draw calls. The raylib renderer is the only implementation;
// tests substitute a recording fake for the mesh-submission subset.
package render

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Renderer is the drawing capability the core consumes. Set3DMode and
// Set2DMode bracket the 3D portion of a frame; Clear and Present bracket the
// whole frame.
type Renderer interface {
	Clear()
	Set3DMode()
	Set2DMode()
	RenderMesh(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3)
	RenderGround()
	RenderSkybox(cameraPosition mgl32.Vec3)
	Present()
}

const (
	groundExtent = 2000
	skyboxScale  = 1000
)

// grassTexturePath is tried for the ground; a missing or broken file
// degrades to a flat-color plane.
const grassTexturePath = "assets/textures/grass.png"

// skyboxTexturePath is tried for the skybox cubemap; a missing file means no
// skybox is drawn (the clear color stands in for the sky).
const skyboxTexturePath = "assets/skybox/skybox.png"

// skyColor is the clear color, doubling as the sky when no skybox loads.
var skyColor = rl.NewColor(92, 148, 252, 255)

// trackColor is the flat shade for track-part meshes.
var trackColor = rl.NewColor(70, 70, 78, 255)

// groundColor tints the ground plane; it is the placeholder shade when the
// grass texture is unavailable.
var groundColor = rl.NewColor(88, 160, 72, 255)

// Raylib draws through raylib's immediate-mode API. GPU resources (ground
// model, skybox) are loaded lazily on first use so construction can happen
// before the window exists.
type Raylib struct {
	Camera rl.Camera3D
	log    *zap.Logger

	in3D bool

	groundTried bool
	groundModel rl.Model
	groundOK    bool
	groundTex   bool

	skyTried bool
	skyMesh  rl.Mesh
	skyMtl   rl.Material
	skyOK    bool
}

// NewRaylib returns a renderer with a perspective camera. The camera is
// repositioned by the game loop each frame.
func NewRaylib(logger *zap.Logger) *Raylib {
	r := &Raylib{log: logger}
	r.Camera.Position = rl.NewVector3(0, 5, 10)
	r.Camera.Target = rl.NewVector3(0, 0, 0)
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	r.Camera.Fovy = 45
	r.Camera.Projection = rl.CameraPerspective
	return r
}

// Clear starts a frame: begins drawing and paints the clear color.
func (r *Raylib) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)
}

// Set3DMode enters perspective projection with the current camera.
func (r *Raylib) Set3DMode() {
	if r.in3D {
		return
	}
	rl.BeginMode3D(r.Camera)
	r.in3D = true
}

// Set2DMode leaves 3D mode; subsequent draws are screen-space.
func (r *Raylib) Set2DMode() {
	if !r.in3D {
		return
	}
	rl.EndMode3D()
	r.in3D = false
}

// Present finishes the frame. raylib blocks here until the target FPS
// budget has elapsed; it is the only wait in the loop.
func (r *Raylib) Present() {
	if r.in3D {
		rl.EndMode3D()
		r.in3D = false
	}
	rl.EndDrawing()
}

// RenderMesh draws a track-part mesh with the fixed transform order
// translate, rotate X, rotate Y, rotate Z, scale on the rlgl matrix stack.
// The order is significant: changing it silently skews every placed part.
func (r *Raylib) RenderMesh(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3) {
	r.renderMeshColored(vertices, faces, position, rotation, scale, trackColor)
}

// RenderMeshColored is RenderMesh with an explicit color, used by the game
// loop for the car body. Not part of the capability interface.
func (r *Raylib) RenderMeshColored(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3, color rl.Color) {
	r.renderMeshColored(vertices, faces, position, rotation, scale, color)
}

func (r *Raylib) renderMeshColored(vertices []mgl32.Vec3, faces [][3]int, position, rotation, scale mgl32.Vec3, color rl.Color) {
	rl.PushMatrix()
	rl.Translatef(position.X(), position.Y(), position.Z())
	rl.Rotatef(rotation.X(), 1, 0, 0)
	rl.Rotatef(rotation.Y(), 0, 1, 0)
	rl.Rotatef(rotation.Z(), 0, 0, 1)
	rl.Scalef(scale.X(), scale.Y(), scale.Z())
	rl.DisableBackfaceCulling()
	for _, face := range faces {
		rl.DrawTriangle3D(vec3(vertices[face[0]]), vec3(vertices[face[1]]), vec3(vertices[face[2]]), color)
	}
	rl.EnableBackfaceCulling()
	rl.PopMatrix()
}

// RenderGround draws a large plane at Y=0: grass-textured when the texture
// loads, flat green otherwise. The load is attempted once.
func (r *Raylib) RenderGround() {
	if !r.groundTried {
		r.groundTried = true
		r.groundModel = rl.LoadModelFromMesh(rl.GenMeshPlane(groundExtent, groundExtent, 1, 1))
		r.groundOK = true
		if _, err := os.Stat(filepath.Clean(grassTexturePath)); err == nil {
			tex := rl.LoadTexture(grassTexturePath)
			if rl.IsTextureValid(tex) {
				rl.SetMaterialTexture(r.groundModel.Materials, rl.MapDiffuse, tex)
				r.groundTex = true
			}
		}
		if !r.groundTex {
			r.log.Warn("ground texture unavailable, using flat color", zap.String("path", grassTexturePath))
		}
	}
	if !r.groundOK {
		return
	}
	tint := rl.White
	if !r.groundTex {
		tint = groundColor
	}
	rl.DrawModel(r.groundModel, rl.NewVector3(0, 0, 0), 1, tint)
}

// RenderSkybox draws a large cube centered on the camera so the sky never
// parallaxes. Missing skybox asset is recoverable: nothing is drawn and the
// clear color shows through.
func (r *Raylib) RenderSkybox(cameraPosition mgl32.Vec3) {
	if !r.skyTried {
		r.skyTried = true
		if _, err := os.Stat(filepath.Clean(skyboxTexturePath)); err == nil {
			img := rl.LoadImage(skyboxTexturePath)
			if img != nil && img.Width > 0 && img.Height > 0 {
				tex := rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
				rl.UnloadImage(img)
				if rl.IsTextureValid(tex) {
					r.skyMesh = rl.GenMeshCube(1, 1, 1)
					r.skyMtl = rl.LoadMaterialDefault()
					rl.SetMaterialTexture(&r.skyMtl, rl.MapCubemap, tex)
					r.skyOK = true
				}
			}
		}
		if !r.skyOK {
			r.log.Info("skybox unavailable, sky is the clear color", zap.String("path", skyboxTexturePath))
		}
	}
	if !r.skyOK {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(cameraPosition.X(), cameraPosition.Y(), cameraPosition.Z())
	rl.DrawMesh(r.skyMesh, r.skyMtl, rl.MatrixMultiply(scale, trans))
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
