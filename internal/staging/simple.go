package staging

import (
	"fmt"

	"github.com/litescript/ls-rocketry/internal/propulsion"
)

// SimpleStage is a dry structure plus engines burning in parallel for the
// stage's lifetime. Engines are expected to be time-aligned already: secondary
// engines get their burn time through propulsion.Engine.WithBurnTime.
type SimpleStage struct {
	dryMass float64
	engines []propulsion.Engine
}

// NewSimpleStage creates a stage with the given dry mass and engines.
func NewSimpleStage(dryMass float64, engines ...propulsion.Engine) (SimpleStage, error) {
	s := SimpleStage{
		dryMass: dryMass,
		engines: append([]propulsion.Engine(nil), engines...),
	}
	if err := s.Validate(); err != nil {
		return SimpleStage{}, err
	}
	return s, nil
}

// MustSimpleStage is like NewSimpleStage but panics on an invalid configuration.
// It is meant for built-in vehicle tables.
func MustSimpleStage(dryMass float64, engines ...propulsion.Engine) SimpleStage {
	s, err := NewSimpleStage(dryMass, engines...)
	if err != nil {
		panic(fmt.Sprintf("staging: invalid simple stage: %v", err))
	}
	return s
}

// Engines implements Stage.
func (s SimpleStage) Engines() []propulsion.Engine {
	return append([]propulsion.Engine(nil), s.engines...)
}

// DryMass implements Stage.
func (s SimpleStage) DryMass() float64 {
	return s.dryMass
}

// WetMass implements Stage.
func (s SimpleStage) WetMass() float64 {
	var propellant float64
	for _, e := range s.engines {
		propellant += e.PropellantMassForFullBurn()
	}
	return s.dryMass + propellant
}

// BurnTime implements Stage.
func (s SimpleStage) BurnTime() float64 {
	return MaxBurnTime(s.engines)
}

// NextStage implements Stage. Simple stages are terminal.
func (s SimpleStage) NextStage() Stage {
	return nil
}

// Validate implements Stage.
func (s SimpleStage) Validate() error {
	if !(s.dryMass > 0) {
		return fmt.Errorf("%w: %v", ErrNonPositiveDryMass, s.dryMass)
	}
	return validateEngines(s.engines)
}

// WithRemainingBurnTime returns a copy where every engine burns for burnTime seconds.
func (s SimpleStage) WithRemainingBurnTime(burnTime float64) SimpleStage {
	engines := make([]propulsion.Engine, len(s.engines))
	for i, e := range s.engines {
		engines[i] = e.WithBurnTime(burnTime)
	}
	s.engines = engines
	return s
}

// WithVerniers returns a copy with count vernier engines added. The verniers
// burn as long as the stage's first engine.
func (s SimpleStage) WithVerniers(vernier propulsion.Engine, count int) SimpleStage {
	var burnTime float64
	if len(s.engines) > 0 {
		burnTime = s.engines[0].BurnTime
	}
	engines := append([]propulsion.Engine(nil), s.engines...)
	for i := 0; i < count; i++ {
		engines = append(engines, vernier.WithBurnTime(burnTime))
	}
	s.engines = engines
	return s
}
