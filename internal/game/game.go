// Package game ties the pieces together: one single-threaded loop that polls
// input, updates the current screen's state, and draws, in that order, every
// frame. Map loading happens synchronously on the loop thread when a level
// is confirmed; loader failures bounce back to the start menu with a
// diagnostic and never crash the process.
package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"racer/internal/car"
	"racer/internal/config"
	"racer/internal/debug"
	"racer/internal/level"
	"racer/internal/render"
	"racer/internal/track"
	"racer/internal/ui"
	"racer/internal/world"
)

// Follow-camera placement relative to the car.
const (
	followDistance = 10.0
	followHeight   = 4.0
	overheadHeight = 30.0
)

// Game owns the window, the menus, and the in-game session. One session's
// World lives from a confirmed level start until the player returns to the
// menu.
type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	input *InputHandler

	renderer  *render.Raylib
	lib       *track.Library
	mainMenu  *ui.MainMenu
	startMenu *ui.StartMenu
	overlay   *debug.Overlay

	state State

	// Session state, valid while state == StatePlaying.
	world    *world.World
	carDef   *car.Definition
	tracker  car.TurnTracker
	paused   bool
	overhead bool

	exit bool
}

// New builds the game from an explicit configuration. The track-part
// library is loaded here once; a malformed library is logged and the game
// continues with an empty one (every segment then hits the unknown-part
// branch).
func New(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	keys, err := cfg.Keys.Resolve()
	if err != nil {
		return nil, err
	}
	lib, err := track.Load(cfg.Paths.Parts)
	if err != nil {
		logger.Warn("track part library unusable, continuing with empty library",
			zap.String("path", cfg.Paths.Parts), zap.Error(err))
	} else {
		logger.Info("track part library loaded",
			zap.Int("parts", lib.Len()), zap.Strings("names", lib.Names()))
	}
	return &Game{
		cfg:       cfg,
		log:       logger,
		input:     NewInputHandler(keys),
		renderer:  render.NewRaylib(logger),
		lib:       lib,
		mainMenu:  ui.NewMainMenu(logger),
		startMenu: ui.NewStartMenu(cfg.Paths.Levels, cfg.Paths.Cars),
		overlay:   debug.NewOverlay(cfg.Debug.ShowFPS, cfg.Debug.ShowMemAlloc),
		state:     StateMainMenu,
	}, nil
}

// Run opens the window and blocks in the frame loop until the window closes
// or Exit Game is chosen. raylib's target-FPS wait in Present is the only
// blocking point per frame.
func (g *Game) Run() {
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // Esc navigates menus; quit via window button or Exit Game
	rl.SetTargetFPS(g.cfg.Window.TargetFPS)

	for !rl.WindowShouldClose() && !g.exit {
		g.frame()
	}
}

// frame runs one update+draw cycle for the current state.
func (g *Game) frame() {
	switch g.state {
	case StateMainMenu:
		g.frameMainMenu()
	case StateStartMenu:
		g.frameStartMenu()
	case StateOptions, StateMultiplayer, StateCredits:
		g.framePlaceholder()
	case StatePlaying:
		g.framePlaying()
	}
}

func (g *Game) frameMainMenu() {
	action := g.mainMenu.Update()
	g.renderer.Clear()
	g.mainMenu.Draw()
	g.overlay.Draw()
	g.renderer.Present()

	switch action {
	case ui.ActionStart:
		g.setState(StateStartMenu)
	case ui.ActionOptions:
		g.setState(StateOptions)
	case ui.ActionMultiplayer:
		g.setState(StateMultiplayer)
	case ui.ActionCredits:
		g.setState(StateCredits)
	case ui.ActionExit:
		g.exit = true
	}
}

func (g *Game) frameStartMenu() {
	res := g.startMenu.Update()
	g.renderer.Clear()
	g.startMenu.Draw()
	g.overlay.Draw()
	g.renderer.Present()

	switch {
	case res.Back:
		g.setState(StateMainMenu)
	case res.Confirmed:
		g.startSession(res.LevelPath, res.Car)
	}
}

func (g *Game) framePlaceholder() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.setState(StateMainMenu)
	}
	g.renderer.Clear()
	switch g.state {
	case StateOptions:
		ui.DrawPlaceholder("Settings")
	case StateMultiplayer:
		ui.DrawPlaceholder("Multiplayer")
	case StateCredits:
		ui.DrawPlaceholder("Credits")
	}
	g.overlay.Draw()
	g.renderer.Present()
}

// startSession loads the map and builds a fresh World. Loader errors abort
// only this transition: the start menu stays up showing the diagnostic.
func (g *Game) startSession(levelPath string, def *car.Definition) {
	m, err := level.Load(levelPath)
	if err != nil {
		g.log.Error("level failed to load", zap.String("path", levelPath), zap.Error(err))
		g.startMenu.Message = err.Error()
		return
	}
	g.world = world.Build(m)
	g.carDef = def
	g.tracker = car.TurnTracker{}
	g.paused = false
	g.overhead = false
	g.startMenu.Message = ""
	g.log.Info("session started",
		zap.String("level", m.Name),
		zap.Int("segments", len(g.world.Track)),
		zap.Int("checkpoints", len(g.world.Checkpoints)),
		zap.Int("obstacles", len(g.world.Obstacles)))
	g.setState(StatePlaying)
}

func (g *Game) framePlaying() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.endSession()
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if g.input.CameraTogglePressed() {
		g.overhead = !g.overhead
	}

	dt := float64(rl.GetFrameTime())
	in := g.input.Sample()
	if !g.paused {
		g.world.Car.Step(in, g.cfg.Car, dt)
		g.tracker.Update(in.Left != in.Right, dt)
	}
	g.placeCamera()

	g.renderer.Clear()
	g.renderer.Set3DMode()
	camPos := mgl32.Vec3{g.renderer.Camera.Position.X, g.renderer.Camera.Position.Y, g.renderer.Camera.Position.Z}
	g.renderer.RenderSkybox(camPos)
	g.renderer.RenderGround()
	render.DrawTrack(g.renderer, g.world, g.lib, g.log)
	g.drawObstacles()
	g.drawCheckpoints()
	g.drawCar()
	g.renderer.Set2DMode()
	g.drawHUD()
	g.overlay.Draw()
	g.renderer.Present()
}

// endSession discards the session World and returns to the start menu.
func (g *Game) endSession() {
	g.world = nil
	g.carDef = nil
	g.setState(StateStartMenu)
}

// placeCamera follows behind the car, or hovers overhead after the camera
// toggle.
func (g *Game) placeCamera() {
	c := g.world.Car
	target := rl.NewVector3(c.Position.X(), c.Position.Y(), c.Position.Z())
	if g.overhead {
		g.renderer.Camera.Position = rl.NewVector3(c.Position.X(), c.Position.Y()+overheadHeight, c.Position.Z()+0.01)
	} else {
		rad := c.Heading * math.Pi / 180
		g.renderer.Camera.Position = rl.NewVector3(
			c.Position.X()-float32(math.Cos(rad)*followDistance),
			c.Position.Y()+followHeight,
			c.Position.Z()+float32(math.Sin(rad)*followDistance),
		)
	}
	g.renderer.Camera.Target = target
}

// drawCar renders the chosen car's library mesh, or a flat-color box when
// the part is missing (resource fallback, not an error).
func (g *Game) drawCar() {
	c := g.world.Car
	rotation := mgl32.Vec3{0, float32(c.Heading), 0}
	color := rl.Red
	scale := float32(1)
	partName := ""
	if g.carDef != nil {
		color = g.carDef.BodyColor()
		scale = g.carDef.Scale
		partName = g.carDef.Part
	}
	if partName != "" {
		if geo, ok := g.lib.Lookup(partName); ok {
			g.renderer.RenderMeshColored(geo.Vertices, geo.Faces, c.Position, rotation, mgl32.Vec3{scale, scale, scale}, color)
			return
		}
		g.log.Warn("car part missing from library, using placeholder box", zap.String("part", partName))
	}
	pos := rl.NewVector3(c.Position.X(), c.Position.Y()+0.5, c.Position.Z())
	rl.DrawCube(pos, 2*scale, 1*scale, 1*scale, color)
}

// drawObstacles renders each obstacle as a cylinder of its radius.
func (g *Game) drawObstacles() {
	for _, o := range g.world.Obstacles {
		pos := rl.NewVector3(float32(o.Position.X), 0, float32(o.Position.Y))
		rl.DrawCylinder(pos, float32(o.Radius), float32(o.Radius), 1.5, 12, rl.Gray)
	}
}

// drawCheckpoints renders checkpoint areas as wire boxes.
func (g *Game) drawCheckpoints() {
	for _, cp := range g.world.Checkpoints {
		center := rl.NewVector3(cp.X+cp.Width/2, 1, cp.Y+cp.Height/2)
		rl.DrawCubeWires(center, cp.Width, 2, cp.Height, rl.Yellow)
	}
}

func (g *Game) drawHUD() {
	c := g.world.Car
	speed := fmt.Sprintf("%.0f km/h", math.Abs(c.Speed)*3.6)
	rl.DrawText(speed, 20, int32(rl.GetScreenHeight())-40, 24, rl.White)
	if c.Drifting {
		rl.DrawText("DRIFT", 20, int32(rl.GetScreenHeight())-70, 24, rl.Orange)
	}
	if g.tracker.SpeedGainActive() {
		rl.DrawText("sustained turn", 20, int32(rl.GetScreenHeight())-100, 20, rl.Yellow)
	}
	if g.paused {
		w := rl.MeasureText("PAUSED", 48)
		rl.DrawText("PAUSED", int32(rl.GetScreenWidth())/2-w/2, int32(rl.GetScreenHeight())/2-24, 48, rl.White)
	}
}

func (g *Game) setState(s State) {
	if g.state != s {
		g.log.Debug("state change", zap.Stringer("from", g.state), zap.Stringer("to", s))
		g.state = s
	}
}
