package staging

import (
	"fmt"
	"math"

	"github.com/litescript/ls-rocketry/internal/propulsion"
)

// StageWithPayload adds inert mass to a stage: everything mounted above it
// that it carries but does not burn.
type StageWithPayload struct {
	stage       Stage
	payloadMass float64
}

// AddPayload wraps stage with payloadMass of inert mass.
func AddPayload(stage Stage, payloadMass float64) StageWithPayload {
	return StageWithPayload{stage: stage, payloadMass: payloadMass}
}

// Unwrap returns the wrapped stage.
func (s StageWithPayload) Unwrap() Stage { return s.stage }

// PayloadMass returns the inert mass carried by the stage.
func (s StageWithPayload) PayloadMass() float64 { return s.payloadMass }

// Engines implements Stage.
func (s StageWithPayload) Engines() []propulsion.Engine {
	return s.stage.Engines()
}

// DryMass implements Stage.
func (s StageWithPayload) DryMass() float64 {
	return s.stage.DryMass() + s.payloadMass
}

// WetMass implements Stage.
func (s StageWithPayload) WetMass() float64 {
	return s.stage.WetMass() + s.payloadMass
}

// BurnTime implements Stage.
func (s StageWithPayload) BurnTime() float64 {
	return s.stage.BurnTime()
}

// NextStage implements Stage. The payload is still above the stage after a
// separation, so the continuation carries it too.
func (s StageWithPayload) NextStage() Stage {
	next := s.stage.NextStage()
	if next == nil {
		return nil
	}
	return StageWithPayload{stage: next, payloadMass: s.payloadMass}
}

// Validate implements Stage.
func (s StageWithPayload) Validate() error {
	if s.payloadMass < 0 || math.IsNaN(s.payloadMass) {
		return fmt.Errorf("%w: %v", ErrNegativePayload, s.payloadMass)
	}
	return s.stage.Validate()
}
