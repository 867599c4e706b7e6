package ui

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Action is what the main menu asks the game loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionMultiplayer
	ActionOptions
	ActionCredits
	ActionExit
)

// Main-menu layout, mirrored from the prototype: a left-aligned button
// column.
const (
	menuLeftX         = 60
	menuTopY          = 60
	menuButtonWidth   = 200
	menuButtonHeight  = 50
	menuButtonSpacing = 20
)

// backgroundTexturePath is tried once for the menu backdrop; a missing file
// degrades to a flat fill.
const backgroundTexturePath = "assets/textures/background.png"

// MainMenu is the entry screen: a background and the Start / Multiplayer /
// Options / Credits / Exit Game column.
type MainMenu struct {
	buttons []*Button
	actions []Action
	log     *zap.Logger

	bgTried bool
	bg      rl.Texture2D
	bgOK    bool
}

// NewMainMenu lays out the button column. Texture loading is deferred to the
// first Draw so construction can precede the window.
func NewMainMenu(logger *zap.Logger) *MainMenu {
	labels := []string{"Start", "Multiplayer", "Options", "Credits", "Exit Game"}
	actions := []Action{ActionStart, ActionMultiplayer, ActionOptions, ActionCredits, ActionExit}
	m := &MainMenu{actions: actions, log: logger}
	for i, label := range labels {
		y := float32(menuTopY + i*(menuButtonHeight+menuButtonSpacing))
		m.buttons = append(m.buttons, NewButton(label, rl.Rectangle{
			X: menuLeftX, Y: y, Width: menuButtonWidth, Height: menuButtonHeight,
		}))
	}
	return m
}

// Update advances hover animation and returns the action for a click, if
// any.
func (m *MainMenu) Update() Action {
	mouse := rl.GetMousePosition()
	for _, b := range m.buttons {
		b.Update(mouse)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		for i, b := range m.buttons {
			if b.Clicked(mouse, true) {
				return m.actions[i]
			}
		}
	}
	return ActionNone
}

// Draw renders the backdrop and the button column.
func (m *MainMenu) Draw() {
	if !m.bgTried {
		m.bgTried = true
		if _, err := os.Stat(filepath.Clean(backgroundTexturePath)); err == nil {
			m.bg = rl.LoadTexture(backgroundTexturePath)
			m.bgOK = rl.IsTextureValid(m.bg)
		}
		if !m.bgOK {
			m.log.Info("menu background unavailable, using flat fill",
				zap.String("path", backgroundTexturePath))
		}
	}
	if m.bgOK {
		screenW := float32(rl.GetScreenWidth())
		screenH := float32(rl.GetScreenHeight())
		src := rl.Rectangle{Width: float32(m.bg.Width), Height: float32(m.bg.Height)}
		dst := rl.Rectangle{Width: screenW, Height: screenH}
		rl.DrawTexturePro(m.bg, src, dst, rl.Vector2{}, 0, rl.White)
	} else {
		rl.ClearBackground(rl.NewColor(26, 26, 26, 255))
	}
	for _, b := range m.buttons {
		b.Draw()
	}
}
