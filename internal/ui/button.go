// Package ui holds the menu screens and the hover-animated button widget.
// Widgets are plain state + a per-frame step so they stay testable without a
// window; only the Draw methods touch raylib's drawing API.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Blend is the per-frame exponential smoothing step used for every animated
// channel: current moves a fixed fraction of the remaining distance toward
// target. It runs once per rendered frame, not per elapsed wall-clock
// interval, so the ease is frame-rate dependent by design.
func Blend(current, target, rate float32) float32 {
	return current + (target-current)*rate
}

// Hover animation tuning, shared by all buttons.
const (
	hoverGrowth    float32 = 1.08 // 8% larger while hovered
	animationSpeed float32 = 0.22
	baseAlpha      float32 = 128
	hoverAlpha     float32 = 255
	buttonFontSize int32   = 24
)

// Button is a two-state (idle/hovered) menu button. Bounds is the fixed
// layout rectangle; the drawn rectangle grows around its center while
// hovered, with size and opacity blended independently each frame.
type Button struct {
	Text       string
	Bounds     rl.Rectangle
	BaseColor  rl.Color
	HoverColor rl.Color
	Hovered    bool

	currentW, currentH float32
	currentAlpha       float32
}

// NewButton returns an idle button at the given layout rectangle.
func NewButton(text string, bounds rl.Rectangle) *Button {
	return &Button{
		Text:         text,
		Bounds:       bounds,
		BaseColor:    rl.NewColor(0, 0, 255, 255),
		HoverColor:   rl.NewColor(255, 0, 0, 255),
		currentW:     bounds.Width,
		currentH:     bounds.Height,
		currentAlpha: baseAlpha,
	}
}

// Update resolves the hover state from the pointer position and advances the
// size and opacity blends one frame.
func (b *Button) Update(mouse rl.Vector2) {
	b.Hovered = rl.CheckCollisionPointRec(mouse, b.Bounds)
	targetW, targetH, targetAlpha := b.Bounds.Width, b.Bounds.Height, baseAlpha
	if b.Hovered {
		targetW = b.Bounds.Width * hoverGrowth
		targetH = b.Bounds.Height * hoverGrowth
		targetAlpha = hoverAlpha
	}
	b.currentW = Blend(b.currentW, targetW, animationSpeed)
	b.currentH = Blend(b.currentH, targetH, animationSpeed)
	b.currentAlpha = Blend(b.currentAlpha, targetAlpha, animationSpeed)
}

// Clicked reports whether a press at mouse lands on the button. Hit testing
// uses the fixed bounds, not the animated size.
func (b *Button) Clicked(mouse rl.Vector2, pressed bool) bool {
	return pressed && rl.CheckCollisionPointRec(mouse, b.Bounds)
}

// Draw renders the button centered on its layout rectangle at the current
// animated size and opacity.
func (b *Button) Draw() {
	offsetX := (b.currentW - b.Bounds.Width) / 2
	offsetY := (b.currentH - b.Bounds.Height) / 2
	box := rl.Rectangle{
		X:      b.Bounds.X - offsetX,
		Y:      b.Bounds.Y - offsetY,
		Width:  b.currentW,
		Height: b.currentH,
	}
	color := b.BaseColor
	if b.Hovered {
		color = b.HoverColor
	}
	color.A = uint8(b.currentAlpha)
	rl.DrawRectangleRec(box, color)

	textW := rl.MeasureText(b.Text, buttonFontSize)
	tx := int32(box.X + box.Width/2 - float32(textW)/2)
	ty := int32(box.Y + box.Height/2 - float32(buttonFontSize)/2)
	rl.DrawText(b.Text, tx, ty, buttonFontSize, rl.Black)
}

// CurrentSize returns the animated size, for tests and layout debugging.
func (b *Button) CurrentSize() (w, h float32) {
	return b.currentW, b.currentH
}

// CurrentAlpha returns the animated opacity channel.
func (b *Button) CurrentAlpha() float32 {
	return b.currentAlpha
}

func (b *Button) String() string {
	return fmt.Sprintf("Button(%q hovered=%v)", b.Text, b.Hovered)
}
