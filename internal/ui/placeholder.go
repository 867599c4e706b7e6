package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const placeholderFontSize int32 = 72

// DrawPlaceholder renders a centered-title placeholder screen for the menus
// that are not built out (Settings, Multiplayer, Credits). Esc returns to
// the main menu; the hint is drawn along the bottom.
func DrawPlaceholder(title string) {
	rl.ClearBackground(rl.NewColor(50, 50, 50, 255))
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	w := rl.MeasureText(title, placeholderFontSize)
	rl.DrawText(title, screenW/2-w/2, screenH/2-placeholderFontSize/2, placeholderFontSize, rl.White)

	hint := "ESC to return"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, screenW/2-hw/2, screenH-40, 20, rl.Gray)
}
