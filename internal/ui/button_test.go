package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendMovesFractionOfRemainingDistance(t *testing.T) {
	assert.InDelta(t, 22.0, Blend(0, 100, 0.22), 1e-6)
	assert.InDelta(t, 100.0, Blend(100, 100, 0.22), 1e-6)
	// Symmetric on the way back down.
	assert.InDelta(t, 78.0, Blend(100, 0, 0.22), 1e-6)
}

func TestBlendConvergesPerFrame(t *testing.T) {
	current, target := float32(128), float32(255)
	for i := 0; i < 60; i++ {
		current = Blend(current, target, animationSpeed)
	}
	assert.InDelta(t, float64(target), float64(current), 0.01,
		"a second of frames should all but close the gap")
}

func TestBlendIsRestartable(t *testing.T) {
	// Retargeting mid-ease just redirects the blend; no state beyond the
	// current value is needed.
	current := float32(0)
	for i := 0; i < 5; i++ {
		current = Blend(current, 100, 0.5)
	}
	up := current
	current = Blend(current, 0, 0.5)
	assert.Less(t, current, up)
}
