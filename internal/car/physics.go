package car

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"racer/internal/config"
)

// State is the per-session car state. It lives inside the World and is
// rebuilt with it on every start-game action.
type State struct {
	Position mgl32.Vec3
	Heading  float64 // degrees, 0 = +X, counterclockwise on the XZ plane
	Speed    float64 // m/s, negative while reversing
	Drifting bool
}

// Inputs is the per-frame steering sample, resolved from keybinds by the
// input handler.
type Inputs struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// baseTurnRadius is the turning radius at unit speed without drift.
const baseTurnRadius = 10.0

// driftRadiusModifier halves the turning radius while drifting.
const driftRadiusModifier = 0.5

// rollingDecay bleeds speed off when neither pedal is down. Per frame, like
// the rest of the step.
const rollingDecay = 0.995

// TurningRadius returns the car's turning radius for a given speed. Faster
// is wider; drifting tightens the arc.
func TurningRadius(speed float64, drifting bool) float64 {
	mod := 1.0
	if drifting {
		mod = driftRadiusModifier
	}
	return baseTurnRadius * mod / math.Max(speed, 1)
}

// Step advances the car by one frame: pedal integration toward the
// configured limits, drift detection above the speed threshold, then
// heading and position update. Deliberately trivial; no collision, no tire
// model.
func (s *State) Step(in Inputs, p config.CarPhysics, dt float64) {
	switch {
	case in.Forward:
		s.Speed = math.Min(s.Speed+p.Acceleration, p.MaxSpeed)
	case in.Backward:
		s.Speed = math.Max(s.Speed-p.Braking, -p.MaxSpeed/4)
	default:
		s.Speed *= rollingDecay
	}

	turning := in.Left != in.Right
	s.Drifting = turning && math.Abs(s.Speed) > p.DriftSpeedThreshold

	if turning {
		steer := 1.0
		if in.Right {
			steer = -1.0
		}
		radius := TurningRadius(math.Abs(s.Speed), s.Drifting)
		factor := 1.0
		if s.Drifting {
			factor = p.DriftFactor
		}
		// Angular velocity follows from v = omega * r.
		omega := s.Speed / math.Max(radius, 1e-6) * factor
		s.Heading += steer * omega * dt * 180 / math.Pi
	}

	rad := s.Heading * math.Pi / 180
	s.Position = s.Position.Add(mgl32.Vec3{
		float32(math.Cos(rad) * s.Speed * dt),
		0,
		float32(-math.Sin(rad) * s.Speed * dt),
	})
}

// TurnTracker watches for sustained turning. After HoldThreshold seconds of
// uninterrupted turning the speed-gain state activates; releasing the wheel
// resets it.
type TurnTracker struct {
	turning bool
	heldFor float64
}

// HoldThreshold is how long a turn must be held before SpeedGainActive.
const HoldThreshold = 5.0

// Update advances the tracker by dt with the current turning input.
func (t *TurnTracker) Update(turning bool, dt float64) {
	if !turning {
		t.turning = false
		t.heldFor = 0
		return
	}
	if !t.turning {
		t.turning = true
		t.heldFor = 0
	}
	t.heldFor += dt
}

// SpeedGainActive reports whether the sustained-turn state is active.
func (t *TurnTracker) SpeedGainActive() bool {
	return t.turning && t.heldFor > HoldThreshold
}
