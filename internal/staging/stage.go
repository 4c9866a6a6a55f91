// Package staging models how engines combine into stages, how boosted stages
// separate into a lighter continuation, and how a rocket's stack of stages
// flattens into the flight sequence used for cumulative delta-v.
package staging

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-rocketry/internal/propulsion"
)

// Gravity is the g0 used by every stage calculation, in m/s².
// It is deliberately 9.82 rather than standard gravity; results are compared
// against figures produced with this value.
const Gravity = 9.82

var (
	ErrNoEngines            = errors.New("stage has no engines")
	ErrNonPositiveDryMass   = errors.New("dry mass must be positive")
	ErrBoosterOutlastsCore  = errors.New("booster burns longer than core")
	ErrNegativeBoosterCount = errors.New("negative booster count")
	ErrNegativePayload      = errors.New("negative payload mass")
	ErrNoStages             = errors.New("rocket has no stages")
	ErrNaN                  = errors.New("calculation produced NaN")
	ErrSearchExhausted      = errors.New("payload search exceeded maximum payload")
)

// Stage is one physical stage: a set of engines firing together, a dry mass
// and a wet mass. SimpleStage, BoostedStage and StageWithPayload implement it.
type Stage interface {
	// Engines returns every engine firing during the stage, boosters included.
	Engines() []propulsion.Engine

	// DryMass is the stage mass once its propellant is spent.
	DryMass() float64

	// WetMass is the dry mass plus all propellant loaded for the stage.
	WetMass() float64

	// BurnTime is how long the stage exists in its current configuration.
	BurnTime() float64

	// NextStage returns the stage that continues after a separation event,
	// or nil if this stage is terminal.
	NextStage() Stage

	// Validate reports configuration errors.
	Validate() error
}

// MaxBurnTime returns the longest burn time among engines, 0 if there are none.
func MaxBurnTime(engines []propulsion.Engine) float64 {
	var longest float64
	for _, e := range engines {
		if e.BurnTime > longest {
			longest = e.BurnTime
		}
	}
	return longest
}

// Isp returns the thrust-weighted specific impulse of all engines in the stage.
func Isp(s Stage) (float64, error) {
	engines := s.Engines()
	if len(engines) == 0 {
		return 0, ErrNoEngines
	}
	var thrust, flow float64
	for _, e := range engines {
		thrust += e.Thrust
		flow += e.Thrust / e.Isp
	}
	return thrust / flow, nil
}

// DeltaV applies the rocket equation to the stage. A stage without
// propellant margin yields zero or negative delta-v rather than an error.
func DeltaV(s Stage) (float64, error) {
	isp, err := Isp(s)
	if err != nil {
		return 0, err
	}
	return isp * math.Log(s.WetMass()/s.DryMass()) * Gravity, nil
}

// TWR returns the thrust-to-weight ratio at ignition.
func TWR(s Stage) float64 {
	return totalThrustNewtons(s) / s.WetMass() / Gravity
}

// MaxGForce returns the acceleration in g reached when the stage's propellant is spent.
func MaxGForce(s Stage) float64 {
	return totalThrustNewtons(s) / s.DryMass() / Gravity
}

func totalThrustNewtons(s Stage) float64 {
	var total float64
	for _, e := range s.Engines() {
		total += e.Thrust * 1000
	}
	return total
}

// PropellantsRequired returns the total mass of each fuel, keyed by fuel name,
// needed for the stage's engines to complete their burns.
func PropellantsRequired(s Stage) map[string]float64 {
	result := make(map[string]float64)
	for _, e := range s.Engines() {
		for _, fm := range e.PropellantsRequired() {
			result[fm.Fuel.Name] += fm.Amount
		}
	}
	return result
}

// Metrics is a snapshot of a stage's derived performance figures.
type Metrics struct {
	DeltaV    float64 `json:"delta_v"`
	WetMass   float64 `json:"wet_mass"`
	DryMass   float64 `json:"dry_mass"`
	Isp       float64 `json:"isp"`
	TWR       float64 `json:"twr"`
	MaxGForce float64 `json:"max_g_force"`
	BurnTime  float64 `json:"burn_time"`
}

// Measure computes all derived figures of a stage.
func Measure(s Stage) (Metrics, error) {
	isp, err := Isp(s)
	if err != nil {
		return Metrics{}, err
	}
	dv, err := DeltaV(s)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		DeltaV:    dv,
		WetMass:   s.WetMass(),
		DryMass:   s.DryMass(),
		Isp:       isp,
		TWR:       TWR(s),
		MaxGForce: MaxGForce(s),
		BurnTime:  s.BurnTime(),
	}, nil
}

func validateEngines(engines []propulsion.Engine) error {
	if len(engines) == 0 {
		return ErrNoEngines
	}
	for i, e := range engines {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("engine %d: %w", i, err)
		}
	}
	return nil
}
