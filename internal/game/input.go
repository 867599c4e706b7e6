package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"racer/internal/car"
	"racer/internal/config"
)

// InputHandler polls the configured keybinds each frame. It is constructed
// with resolved keys so unknown key names fail at startup, not mid-game.
type InputHandler struct {
	keys config.ResolvedKeys
}

func NewInputHandler(keys config.ResolvedKeys) *InputHandler {
	return &InputHandler{keys: keys}
}

// Sample reads the steering state for this frame.
func (h *InputHandler) Sample() car.Inputs {
	return car.Inputs{
		Forward:  anyDown(h.keys.MoveForward),
		Backward: anyDown(h.keys.MoveBackward),
		Left:     anyDown(h.keys.TurnLeft),
		Right:    anyDown(h.keys.TurnRight),
	}
}

// CameraTogglePressed reports a camera-toggle key press this frame.
func (h *InputHandler) CameraTogglePressed() bool {
	for _, k := range h.keys.ChangeCamera {
		if rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyDown(keys []int32) bool {
	for _, k := range keys {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}
