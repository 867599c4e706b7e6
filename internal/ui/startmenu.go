package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"

	"racer/internal/car"
)

// StartResult is the outcome of one start-menu frame. Confirmed carries the
// chosen level path and car; Back returns to the main menu.
type StartResult struct {
	Confirmed bool
	Back      bool
	LevelPath string
	Car       *car.Definition
}

// StartMenu is the level/car selection screen shown after Start: a level
// list on the left, a car picker with a preview box on the right.
type StartMenu struct {
	levelsDir string
	carsDir   string

	Levels        []string
	SelectedLevel int
	Cars          []car.Definition
	SelectedCar   int

	// Message is the last start-game diagnostic (e.g. a map that failed to
	// load); drawn until the next successful confirm.
	Message string

	levelRows []rl.Rectangle
}

// NewStartMenu scans the level and car directories once; Refresh rescans.
func NewStartMenu(levelsDir, carsDir string) *StartMenu {
	m := &StartMenu{levelsDir: levelsDir, carsDir: carsDir}
	m.Refresh()
	return m
}

// Refresh rescans levels and cars, clamping the selections. Called on every
// Update so externally added level files show up, matching the prototype.
func (m *StartMenu) Refresh() {
	m.Levels = listLevels(m.levelsDir)
	if m.SelectedLevel >= len(m.Levels) {
		m.SelectedLevel = len(m.Levels) - 1
	}
	if m.SelectedLevel < 0 && len(m.Levels) > 0 {
		m.SelectedLevel = 0
	}
	if len(m.Cars) == 0 {
		defs, _ := car.LoadDir(m.carsDir)
		m.Cars = defs
	}
	if m.SelectedCar >= len(m.Cars) {
		m.SelectedCar = len(m.Cars) - 1
	}
	if m.SelectedCar < 0 && len(m.Cars) > 0 {
		m.SelectedCar = 0
	}
}

func listLevels(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json")
	})
	sort.Strings(names)
	return names
}

// Update handles selection input for one frame. Up/Down wrap through
// levels, Left/Right step through cars, Enter confirms, Esc backs out;
// clicking a level row selects it.
func (m *StartMenu) Update() StartResult {
	m.Refresh()

	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		if len(m.Levels) > 0 {
			m.SelectedLevel = (m.SelectedLevel - 1 + len(m.Levels)) % len(m.Levels)
		}
	case rl.IsKeyPressed(rl.KeyDown):
		if len(m.Levels) > 0 {
			m.SelectedLevel = (m.SelectedLevel + 1) % len(m.Levels)
		}
	case rl.IsKeyPressed(rl.KeyLeft):
		if m.SelectedCar > 0 {
			m.SelectedCar--
		}
	case rl.IsKeyPressed(rl.KeyRight):
		if m.SelectedCar < len(m.Cars)-1 {
			m.SelectedCar++
		}
	case rl.IsKeyPressed(rl.KeyEnter):
		if m.SelectedLevel >= 0 && m.SelectedLevel < len(m.Levels) {
			res := StartResult{
				Confirmed: true,
				LevelPath: filepath.Join(m.levelsDir, m.Levels[m.SelectedLevel]),
			}
			if m.SelectedCar >= 0 && m.SelectedCar < len(m.Cars) {
				def := m.Cars[m.SelectedCar]
				res.Car = &def
			}
			return res
		}
		m.Message = "no level selected"
	case rl.IsKeyPressed(rl.KeyEscape):
		return StartResult{Back: true}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for i, row := range m.levelRows {
			if rl.CheckCollisionPointRec(mouse, row) {
				m.SelectedLevel = i
				break
			}
		}
	}
	return StartResult{}
}

// Start-menu layout.
const (
	startFontSize   int32 = 24
	levelPanelX           = 40
	levelPanelY           = 80
	levelPanelWidth       = 400
	levelRowStartY        = 150
	levelRowStep          = 40
	carBoxWidth           = 400
	carBoxHeight          = 220
)

// Draw renders the level list, the car picker, and any pending diagnostic.
func (m *StartMenu) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	rl.ClearBackground(rl.NewColor(10, 20, 60, 255))

	// Level selection panel.
	rl.DrawRectangle(levelPanelX, levelPanelY, levelPanelWidth, screenH-2*levelPanelY, rl.NewColor(40, 40, 80, 220))
	rl.DrawText("Level Selection", levelPanelX+20, levelPanelY+20, startFontSize, rl.White)
	m.levelRows = m.levelRows[:0]
	for i, name := range m.Levels {
		color := rl.NewColor(200, 200, 200, 255)
		if i == m.SelectedLevel {
			color = rl.Green
		}
		y := int32(levelRowStartY + i*levelRowStep)
		rl.DrawText(name, levelPanelX+40, y, startFontSize, color)
		m.levelRows = append(m.levelRows, rl.Rectangle{
			X: levelPanelX + 40, Y: float32(y),
			Width: float32(rl.MeasureText(name, startFontSize)), Height: float32(startFontSize),
		})
	}
	if len(m.Levels) == 0 {
		rl.DrawText("no levels found", levelPanelX+40, levelRowStartY, startFontSize, rl.Gray)
	}

	// Car selection box with a flat preview placeholder.
	boxX := screenW - carBoxWidth - 40
	boxY := screenH - carBoxHeight - 120
	rl.DrawRectangle(boxX, boxY, carBoxWidth, carBoxHeight, rl.NewColor(30, 30, 90, 220))
	rl.DrawText("Car Selection", boxX+20, boxY+20, startFontSize, rl.White)
	previewX := boxX + carBoxWidth/2
	previewY := boxY + carBoxHeight/2 + 10
	drawArrow(previewX-110, previewY, true)
	drawArrow(previewX+110, previewY, false)
	if m.SelectedCar >= 0 && m.SelectedCar < len(m.Cars) {
		def := m.Cars[m.SelectedCar]
		rl.DrawRectangle(previewX-90, previewY-50, 180, 100, def.BodyColor())
		name := def.Name
		nameW := rl.MeasureText(name, startFontSize)
		rl.DrawText(name, previewX-nameW/2, boxY+carBoxHeight-40, startFontSize, rl.Yellow)
	} else {
		rl.DrawText("no cars found", previewX-80, previewY-12, startFontSize, rl.Gray)
	}

	// Instructions and the last diagnostic, if any.
	inst := "UP/DOWN or click: level   LEFT/RIGHT: car   ENTER: start   ESC: back"
	instW := rl.MeasureText(inst, 20)
	rl.DrawText(inst, screenW/2-instW/2, screenH-40, 20, rl.White)
	if m.Message != "" {
		msgW := rl.MeasureText(m.Message, 20)
		rl.DrawText(m.Message, screenW/2-msgW/2, screenH-70, 20, rl.Red)
	}
}

// drawArrow draws a left- or right-pointing car-picker triangle.
func drawArrow(tipX, tipY int32, left bool) {
	dir := int32(30)
	if left {
		dir = -30
	}
	tip := rl.NewVector2(float32(tipX), float32(tipY))
	a := rl.NewVector2(float32(tipX-dir), float32(tipY-20))
	b := rl.NewVector2(float32(tipX-dir), float32(tipY+20))
	if left {
		rl.DrawTriangle(tip, a, b, rl.Yellow)
	} else {
		rl.DrawTriangle(tip, b, a, rl.Yellow)
	}
}
