package staging

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// MaxSearchPayload bounds the payload search, in kg. Targets that stay below
// the rocket's delta-v at this payload are reported as ErrSearchExhausted.
const MaxSearchPayload = 10_000_000

// Rocket is an ordered stack of stages, bottom first, plus the mass of the
// final payload above the topmost stage.
type Rocket struct {
	stages []Stage

	// PayloadMass is the payload above the top stage, in kg.
	// SetPayloadForTargetDeltaV overwrites it.
	PayloadMass float64
}

// NewRocket creates a rocket from stages ordered bottom to top.
func NewRocket(stages ...Stage) (*Rocket, error) {
	r := &Rocket{stages: slices.Clone(stages)}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks every stage and the payload mass.
func (r *Rocket) Validate() error {
	if len(r.stages) == 0 {
		return ErrNoStages
	}
	for i, s := range r.stages {
		if s == nil {
			return fmt.Errorf("stage %d is nil", i)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}
	}
	if r.PayloadMass < 0 || math.IsNaN(r.PayloadMass) {
		return fmt.Errorf("%w: %v", ErrNegativePayload, r.PayloadMass)
	}
	return nil
}

// Stack returns the stages as declared, bottom first.
func (r *Rocket) Stack() []Stage {
	return slices.Clone(r.stages)
}

// Clone returns an independent copy of the rocket. Stages are immutable
// values and are shared.
func (r *Rocket) Clone() *Rocket {
	return &Rocket{stages: slices.Clone(r.stages), PayloadMass: r.PayloadMass}
}

// WithPayload returns a copy with payload stacked on top as a final stage.
// The payload mass is reset to zero since the payload is now a stage.
func (r *Rocket) WithPayload(payload Stage) (*Rocket, error) {
	if payload == nil {
		return nil, fmt.Errorf("payload stage is nil")
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("payload stage: %w", err)
	}
	c := r.Clone()
	c.stages = append(c.stages, payload)
	c.PayloadMass = 0
	return c, nil
}

// WithPayloadMass returns a copy carrying payloadMass kg above the top stage.
func (r *Rocket) WithPayloadMass(payloadMass float64) (*Rocket, error) {
	if payloadMass < 0 || math.IsNaN(payloadMass) {
		return nil, fmt.Errorf("%w: %v", ErrNegativePayload, payloadMass)
	}
	c := r.Clone()
	c.PayloadMass = payloadMass
	return c, nil
}

// FlightSequence yields the effective stages in flight order, bottom first.
// Each declared stage carries the wet mass of every stage above it plus the
// payload, and a stage with a separation event is followed by its continuation.
// Every call starts a fresh traversal.
func (r *Rocket) FlightSequence() iter.Seq[Stage] {
	stages := slices.Clone(r.stages)
	payload := r.PayloadMass
	return func(yield func(Stage) bool) {
		for i, s := range stages {
			var upper float64
			for _, above := range stages[i+1:] {
				upper += above.WetMass()
			}
			var current Stage = AddPayload(s, upper+payload)
			for current != nil {
				if !yield(current) {
					return
				}
				current = current.NextStage()
			}
		}
	}
}

// Stages returns the flight sequence as a slice.
func (r *Rocket) Stages() []Stage {
	return slices.Collect(r.FlightSequence())
}

// DeltaV returns the total delta-v over the flight sequence, in m/s.
func (r *Rocket) DeltaV() (float64, error) {
	var total float64
	i := 0
	for s := range r.FlightSequence() {
		dv, err := DeltaV(s)
		if err != nil {
			return 0, fmt.Errorf("flight stage %d: %w", i, err)
		}
		total += dv
		i++
	}
	return total, nil
}

// MaxGForce returns the highest acceleration, in g, reached by any stage in
// the flight sequence. A rocket without stages reports 0.
func (r *Rocket) MaxGForce() (float64, error) {
	var highest float64
	i := 0
	for s := range r.FlightSequence() {
		g := MaxGForce(s)
		if math.IsNaN(g) {
			return 0, fmt.Errorf("flight stage %d max g-force: %w", i, ErrNaN)
		}
		if g > highest {
			highest = g
		}
		i++
	}
	return highest, nil
}

// SetPayloadForTargetDeltaV searches for the largest payload that keeps the
// rocket's delta-v above target. The search steps up from zero in coarse
// increments (see nextPayloadStep) and settles on the last payload tried
// before delta-v dropped to target or below; 0 if even an empty rocket falls short.
func (r *Rocket) SetPayloadForTargetDeltaV(target float64) error {
	if math.IsNaN(target) {
		return fmt.Errorf("target delta-v: %w", ErrNaN)
	}
	r.PayloadMass = 0
	var last float64
	for {
		dv, err := r.DeltaV()
		if err != nil {
			return err
		}
		if dv <= target {
			break
		}
		if r.PayloadMass >= MaxSearchPayload {
			r.PayloadMass = last
			return fmt.Errorf("%w: %.0f m/s still reachable with %.0f kg", ErrSearchExhausted, target, r.PayloadMass)
		}
		last = r.PayloadMass
		r.PayloadMass = nextPayloadStep(r.PayloadMass)
	}
	r.PayloadMass = last
	return nil
}

// MaxPayloadForDeltaV runs the same search as SetPayloadForTargetDeltaV on a
// copy and returns the payload found, leaving the rocket untouched.
func (r *Rocket) MaxPayloadForDeltaV(target float64) (float64, error) {
	c := r.Clone()
	if err := c.SetPayloadForTargetDeltaV(target); err != nil {
		return c.PayloadMass, err
	}
	return c.PayloadMass, nil
}

func nextPayloadStep(mass float64) float64 {
	switch {
	case mass < 50:
		return mass + 10
	case mass < 500:
		return mass + 50
	default:
		return mass + 100
	}
}
