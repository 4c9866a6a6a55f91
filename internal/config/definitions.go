package config

import (
	"fmt"
	"maps"
	"slices"

	"github.com/litescript/ls-rocketry/internal/propulsion"
	"github.com/litescript/ls-rocketry/internal/staging"
	"github.com/litescript/ls-rocketry/internal/vehicles"
)

// FuelDef declares a custom fuel.
type FuelDef struct {
	Key     string  `mapstructure:"key"`
	Name    string  `mapstructure:"name"`
	Density float64 `mapstructure:"density"`
}

// FuelRateDef is one consumption entry of a custom engine.
type FuelRateDef struct {
	Fuel string  `mapstructure:"fuel"`
	Rate float64 `mapstructure:"rate"`
}

// EngineDef declares a custom engine. Fuels are referenced by key and may be
// custom or built-in.
type EngineDef struct {
	Key         string        `mapstructure:"key"`
	Name        string        `mapstructure:"name"`
	Isp         float64       `mapstructure:"isp"`
	Thrust      float64       `mapstructure:"thrust"`
	Mass        float64       `mapstructure:"mass"`
	BurnTime    float64       `mapstructure:"burn_time"`
	Consumption []FuelRateDef `mapstructure:"consumption"`
}

// EngineRef places engines on a stage.
type EngineRef struct {
	Engine   string   `mapstructure:"engine"`
	Count    int      `mapstructure:"count"`     // 0 means 1
	BurnTime *float64 `mapstructure:"burn_time"` // overrides the engine's own when set
}

// BoosterDef is the booster section of a boosted stage.
type BoosterDef struct {
	DryMass float64     `mapstructure:"dry_mass"`
	Engines []EngineRef `mapstructure:"engines"`
	Count   int         `mapstructure:"count"` // 0 means 1
}

// StageDef declares a stage. With a booster section it becomes a boosted
// stage whose core is this stage.
type StageDef struct {
	DryMass  float64     `mapstructure:"dry_mass"`
	Engines  []EngineRef `mapstructure:"engines"`
	Verniers *EngineRef  `mapstructure:"verniers"`
	Booster  *BoosterDef `mapstructure:"booster"`
}

// VehicleDef declares a rocket. Stages are listed bottom first.
type VehicleDef struct {
	Key         string     `mapstructure:"key"`
	Name        string     `mapstructure:"name"`
	Description string     `mapstructure:"description"`
	Stages      []StageDef `mapstructure:"stages"`
	Payload     *StageDef  `mapstructure:"payload"`      // powered payload stacked on top
	PayloadMass float64    `mapstructure:"payload_mass"` // inert payload
}

// Catalog resolves fuel and engine keys against custom definitions first and
// the built-in catalog second.
type Catalog struct {
	fuels   map[string]propulsion.Fuel
	engines map[string]propulsion.Engine
}

// NewCatalog resolves and validates the custom fuels and engines in cfg.
func NewCatalog(cfg Config) (*Catalog, error) {
	c := &Catalog{
		fuels:   make(map[string]propulsion.Fuel),
		engines: make(map[string]propulsion.Engine),
	}

	for _, d := range cfg.Fuels {
		key := propulsion.NormalizeKey(d.Key)
		if key == "" {
			return nil, fmt.Errorf("fuel %q has no key", d.Name)
		}
		if _, dup := c.fuels[key]; dup {
			return nil, fmt.Errorf("fuel %q defined twice", key)
		}
		if d.Density <= 0 {
			return nil, fmt.Errorf("fuel %q: density must be positive", key)
		}
		name := d.Name
		if name == "" {
			name = key
		}
		c.fuels[key] = propulsion.Fuel{Name: name, Density: d.Density}
	}

	for _, d := range cfg.Engines {
		key := propulsion.NormalizeKey(d.Key)
		if key == "" {
			return nil, fmt.Errorf("engine %q has no key", d.Name)
		}
		if _, dup := c.engines[key]; dup {
			return nil, fmt.Errorf("engine %q defined twice", key)
		}
		e, err := c.engine(d)
		if err != nil {
			return nil, err
		}
		if e.Name == "" {
			e.Name = key
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		c.engines[key] = e
	}

	return c, nil
}

func (c *Catalog) engine(d EngineDef) (propulsion.Engine, error) {
	e := propulsion.Engine{
		Name:     d.Name,
		Isp:      d.Isp,
		Thrust:   d.Thrust,
		Mass:     d.Mass,
		BurnTime: d.BurnTime,
	}
	for _, r := range d.Consumption {
		f, err := c.Fuel(r.Fuel)
		if err != nil {
			return propulsion.Engine{}, fmt.Errorf("engine %q: %w", d.Key, err)
		}
		e.Consumption = append(e.Consumption, propulsion.FuelRate{Fuel: f, Rate: r.Rate})
	}
	return e, nil
}

// Fuel looks up a fuel by key.
func (c *Catalog) Fuel(key string) (propulsion.Fuel, error) {
	if f, ok := c.fuels[propulsion.NormalizeKey(key)]; ok {
		return f, nil
	}
	return propulsion.LookupFuel(key)
}

// Engine looks up an engine by key and returns a copy.
func (c *Catalog) Engine(key string) (propulsion.Engine, error) {
	if e, ok := c.engines[propulsion.NormalizeKey(key)]; ok {
		return e.WithBurnTime(e.BurnTime), nil
	}
	return propulsion.LookupEngine(key)
}

// EngineKeys returns the sorted keys of the custom engines.
func (c *Catalog) EngineKeys() []string {
	return slices.Sorted(maps.Keys(c.engines))
}

func (c *Catalog) placeEngines(refs []EngineRef) ([]propulsion.Engine, error) {
	var out []propulsion.Engine
	for _, ref := range refs {
		e, err := c.Engine(ref.Engine)
		if err != nil {
			return nil, err
		}
		if ref.BurnTime != nil {
			e = e.WithBurnTime(*ref.BurnTime)
		}
		for range max(ref.Count, 1) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (c *Catalog) simpleStage(dryMass float64, refs []EngineRef, verniers *EngineRef) (staging.SimpleStage, error) {
	engines, err := c.placeEngines(refs)
	if err != nil {
		return staging.SimpleStage{}, err
	}
	s, err := staging.NewSimpleStage(dryMass, engines...)
	if err != nil {
		return staging.SimpleStage{}, err
	}
	if verniers != nil {
		v, err := c.Engine(verniers.Engine)
		if err != nil {
			return staging.SimpleStage{}, fmt.Errorf("verniers: %w", err)
		}
		s = s.WithVerniers(v, max(verniers.Count, 1))
	}
	return s, nil
}

// Stage builds a stage from its definition.
func (c *Catalog) Stage(d StageDef) (staging.Stage, error) {
	core, err := c.simpleStage(d.DryMass, d.Engines, d.Verniers)
	if err != nil {
		return nil, err
	}
	if d.Booster == nil {
		return core, nil
	}
	booster, err := c.simpleStage(d.Booster.DryMass, d.Booster.Engines, nil)
	if err != nil {
		return nil, fmt.Errorf("booster: %w", err)
	}
	return staging.NewBoostedStage(core, booster, max(d.Booster.Count, 1))
}

// Rocket builds the rocket a vehicle definition describes.
func (c *Catalog) Rocket(d VehicleDef) (*staging.Rocket, error) {
	stages := make([]staging.Stage, 0, len(d.Stages))
	for i, sd := range d.Stages {
		s, err := c.Stage(sd)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i+1, err)
		}
		stages = append(stages, s)
	}

	r, err := staging.NewRocket(stages...)
	if err != nil {
		return nil, err
	}
	if d.Payload != nil {
		p, err := c.Stage(*d.Payload)
		if err != nil {
			return nil, fmt.Errorf("payload stage: %w", err)
		}
		if r, err = r.WithPayload(p); err != nil {
			return nil, err
		}
	}
	return r.WithPayloadMass(d.PayloadMass)
}

// RegisterVehicles builds every vehicle in cfg once to surface definition
// errors, then adds them to reg.
func (c *Catalog) RegisterVehicles(reg *vehicles.Registry, defs []VehicleDef) error {
	for _, d := range defs {
		if _, err := c.Rocket(d); err != nil {
			return fmt.Errorf("vehicle %q: %w", d.Key, err)
		}
		name := d.Name
		if name == "" {
			name = d.Key
		}
		err := reg.Add(vehicles.Vehicle{
			Key:         d.Key,
			Name:        name,
			Description: d.Description,
			Build:       func() (*staging.Rocket, error) { return c.Rocket(d) },
		})
		if err != nil {
			return err
		}
	}
	return nil
}
