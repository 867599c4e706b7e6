package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   int32 = 20
	padding    int32 = 12
	lineHeight int32 = fontSize + 4
	// updateInterval: refresh the FPS/heap text every N frames to keep
	// per-frame allocations down.
	updateInterval = 30
)

// Overlay draws engine diagnostics (FPS, heap) in the top-right corner.
// Both readouts are off unless enabled in the debug config section.
type Overlay struct {
	showFPS bool
	showMem bool

	frame    uint32
	fpsText  string
	memText  string
	memStats runtime.MemStats
}

func NewOverlay(showFPS, showMem bool) *Overlay {
	return &Overlay{showFPS: showFPS, showMem: showMem}
}

// Draw renders the enabled readouts. Call last in the frame, after the HUD.
func (o *Overlay) Draw() {
	if !o.showFPS && !o.showMem {
		return
	}
	o.frame++
	refresh := o.frame%updateInterval == 0 || o.fpsText == ""

	screenW := int32(rl.GetScreenWidth())
	y := padding

	if o.showFPS {
		if refresh {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(o.fpsText, fontSize)
		rl.DrawText(o.fpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if o.showMem {
		if refresh {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		w := rl.MeasureText(o.memText, fontSize)
		rl.DrawText(o.memText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
