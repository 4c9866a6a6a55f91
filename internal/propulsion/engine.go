// Package propulsion provides the fuel and engine value types that stages are
// built from, along with the built-in catalog of historical engines.
package propulsion

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeBurnTime is returned for engines configured to burn for less than zero seconds.
	ErrNegativeBurnTime = errors.New("negative burn time")

	// ErrDuplicateFuel is returned when an engine lists the same fuel twice.
	ErrDuplicateFuel = errors.New("fuel listed more than once")

	// ErrNonPositivePerformance is returned for engines with zero or negative isp or thrust.
	ErrNonPositivePerformance = errors.New("isp and thrust must be positive")
)

// Fuel is a propellant with its density.
type Fuel struct {
	Name    string  `json:"name"`
	Density float64 `json:"density"`
}

// FuelRate is a single consumption entry of an engine: how many volume units
// of a fuel the engine burns per second.
type FuelRate struct {
	Fuel Fuel    `json:"fuel"`
	Rate float64 `json:"rate"`
}

// FuelMass is an amount of a fuel needed for a burn.
type FuelMass struct {
	Fuel   Fuel
	Amount float64
}

// Engine is an immutable rocket engine specification.
type Engine struct {
	Name        string     `json:"name"`
	Consumption []FuelRate `json:"consumption"`
	Isp         float64    `json:"isp"`    // seconds
	Thrust      float64    `json:"thrust"` // kN
	Mass        float64    `json:"mass"`   // kg, hardware only
	BurnTime    float64    `json:"burn_time"`
}

// PropellantMassPerSecond returns the propellant mass the engine consumes each second.
func (e Engine) PropellantMassPerSecond() float64 {
	var total float64
	for _, c := range e.Consumption {
		total += c.Fuel.Density * c.Rate
	}
	return total
}

// PropellantMassForFullBurn returns the propellant mass burned over the engine's burn time.
func (e Engine) PropellantMassForFullBurn() float64 {
	return e.PropellantMassPerSecond() * e.BurnTime
}

// PropellantsRequired returns the amount of each fuel burned over the engine's burn time.
func (e Engine) PropellantsRequired() []FuelMass {
	result := make([]FuelMass, 0, len(e.Consumption))
	for _, c := range e.Consumption {
		result = append(result, FuelMass{Fuel: c.Fuel, Amount: c.Rate * e.BurnTime})
	}
	return result
}

// WithBurnTime returns a copy of the engine that burns for burnTime seconds.
// Verniers tied to a sustainer and boosters that separate early are built this way.
func (e Engine) WithBurnTime(burnTime float64) Engine {
	e.BurnTime = burnTime
	// Consumption is shared read-only, but copy it so callers can't alias the catalog.
	e.Consumption = append([]FuelRate(nil), e.Consumption...)
	return e
}

// Validate checks the engine's invariants.
func (e Engine) Validate() error {
	if e.BurnTime < 0 {
		return fmt.Errorf("engine %q: %w (%.1fs)", e.Name, ErrNegativeBurnTime, e.BurnTime)
	}
	if e.Isp <= 0 || e.Thrust <= 0 {
		return fmt.Errorf("engine %q: %w", e.Name, ErrNonPositivePerformance)
	}
	seen := make(map[Fuel]bool, len(e.Consumption))
	for _, c := range e.Consumption {
		if seen[c.Fuel] {
			return fmt.Errorf("engine %q: %w: %s", e.Name, ErrDuplicateFuel, c.Fuel.Name)
		}
		seen[c.Fuel] = true
	}
	return nil
}
