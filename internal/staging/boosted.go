package staging

import (
	"fmt"

	"github.com/litescript/ls-rocketry/internal/propulsion"
)

// BoostedStage is a core stage with identical boosters firing alongside it.
// When the boosters burn out they separate, and the core continues alone
// for the rest of its burn.
type BoostedStage struct {
	core         SimpleStage
	booster      SimpleStage
	boosterCount int
}

// NewBoostedStage creates a boosted stage. booster describes a single booster unit.
// The core must burn at least as long as the boosters.
func NewBoostedStage(core, booster SimpleStage, boosterCount int) (BoostedStage, error) {
	s := BoostedStage{core: core, booster: booster, boosterCount: boosterCount}
	if err := s.Validate(); err != nil {
		return BoostedStage{}, err
	}
	return s, nil
}

// MustBoostedStage is like NewBoostedStage but panics on an invalid configuration.
func MustBoostedStage(core, booster SimpleStage, boosterCount int) BoostedStage {
	s, err := NewBoostedStage(core, booster, boosterCount)
	if err != nil {
		panic(fmt.Sprintf("staging: invalid boosted stage: %v", err))
	}
	return s
}

// Core returns the core stage as configured before separation.
func (s BoostedStage) Core() SimpleStage { return s.core }

// Booster returns the specification of one booster unit.
func (s BoostedStage) Booster() SimpleStage { return s.booster }

// BoosterCount returns the number of boosters.
func (s BoostedStage) BoosterCount() int { return s.boosterCount }

// Engines implements Stage. Booster engines are repeated once per booster.
func (s BoostedStage) Engines() []propulsion.Engine {
	engines := s.core.Engines()
	boosterEngines := s.booster.Engines()
	for i := 0; i < s.boosterCount; i++ {
		engines = append(engines, boosterEngines...)
	}
	return engines
}

// BurnTime implements Stage. Unlike other stages this is not the longest
// engine burn: the boosted configuration ends when the boosters separate.
func (s BoostedStage) BurnTime() float64 {
	return s.booster.BurnTime()
}

// DryMass implements Stage. At booster burnout the core still holds the
// propellant for its remaining burn, so the continuation counts fully wet.
func (s BoostedStage) DryMass() float64 {
	return s.StageAfterBoosterSeparation().WetMass() + s.booster.DryMass()*float64(s.boosterCount)
}

// WetMass implements Stage.
func (s BoostedStage) WetMass() float64 {
	return s.core.WetMass() + s.booster.WetMass()*float64(s.boosterCount)
}

// NextStage implements Stage.
func (s BoostedStage) NextStage() Stage {
	return s.StageAfterBoosterSeparation()
}

// StageAfterBoosterSeparation returns the core alone with the burn time it
// has left once the boosters are gone.
func (s BoostedStage) StageAfterBoosterSeparation() SimpleStage {
	return s.core.WithRemainingBurnTime(s.core.BurnTime() - s.booster.BurnTime())
}

// Validate implements Stage.
func (s BoostedStage) Validate() error {
	if err := s.core.Validate(); err != nil {
		return fmt.Errorf("core: %w", err)
	}
	if err := s.booster.Validate(); err != nil {
		return fmt.Errorf("booster: %w", err)
	}
	if s.boosterCount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBoosterCount, s.boosterCount)
	}
	if s.core.BurnTime() < s.booster.BurnTime() {
		return fmt.Errorf("%w: core %.1fs, booster %.1fs",
			ErrBoosterOutlastsCore, s.core.BurnTime(), s.booster.BurnTime())
	}
	return nil
}
