// Package vehicles holds named rocket configurations: historical launchers
// assembled from the propulsion catalog, plus any defined in configuration.
package vehicles

import (
	"fmt"
	"sort"

	"github.com/litescript/ls-rocketry/internal/propulsion"
	"github.com/litescript/ls-rocketry/internal/staging"
)

// AtlasAdapterMass is the interstage adapter jettisoned with the Atlas, in kg.
const AtlasAdapterMass = 1610.0

// Vehicle is a named rocket configuration.
type Vehicle struct {
	Key         string
	Name        string
	Description string
	Build       func() (*staging.Rocket, error)
}

// Registry is a set of vehicles addressable by key.
type Registry struct {
	vehicles map[string]Vehicle
}

// NewRegistry returns a registry holding the built-in vehicles.
func NewRegistry() *Registry {
	r := &Registry{vehicles: make(map[string]Vehicle)}
	for _, v := range builtins() {
		r.vehicles[v.Key] = v
	}
	return r
}

// Add registers a vehicle. Keys must be unique.
func (r *Registry) Add(v Vehicle) error {
	if v.Key == "" {
		return fmt.Errorf("vehicle %q has no key", v.Name)
	}
	if v.Build == nil {
		return fmt.Errorf("vehicle %q has no build function", v.Key)
	}
	if _, exists := r.vehicles[v.Key]; exists {
		return fmt.Errorf("vehicle %q already registered", v.Key)
	}
	r.vehicles[v.Key] = v
	return nil
}

// Get returns the vehicle with the given key.
func (r *Registry) Get(key string) (Vehicle, error) {
	v, ok := r.vehicles[key]
	if !ok {
		return Vehicle{}, fmt.Errorf("unknown vehicle %q", key)
	}
	return v, nil
}

// List returns all vehicles sorted by key.
func (r *Registry) List() []Vehicle {
	out := make([]Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Probe is a small spacecraft stage driven by a single 2.2/3.6kN thruster.
func Probe(dryMass, burnTime float64) staging.SimpleStage {
	return staging.MustSimpleStage(dryMass, propulsion.Thruster2.WithBurnTime(burnTime))
}

// atlas builds the stage-and-a-half Atlas: a sustainer with two verniers and
// a two-engine booster section dropped mid-flight.
func atlas(sustainer, booster propulsion.Engine, sustainerDry, boosterDry float64) staging.BoostedStage {
	core := staging.MustSimpleStage(sustainerDry+AtlasAdapterMass, sustainer).
		WithVerniers(propulsion.LR101NA3, 2)
	boosters := staging.MustSimpleStage(boosterDry, booster, booster)
	return staging.MustBoostedStage(core, boosters, 1)
}

func builtins() []Vehicle {
	return []Vehicle{
		{
			Key:         "atlas-agena-b",
			Name:        "Atlas-Agena B",
			Description: "Atlas LV-3 with LR89-NA-5 boosters and an Agena B upper stage",
			Build: func() (*staging.Rocket, error) {
				return staging.NewRocket(
					atlas(propulsion.LR105NA5, propulsion.LR89NA5, 2347, 3050),
					staging.MustSimpleStage(870, propulsion.Bell8081),
				)
			},
		},
		{
			Key:         "atlas-agena-ranger",
			Name:        "Atlas-Agena B / Ranger",
			Description: "Atlas-Agena B carrying a Ranger-class lunar probe with its own thruster",
			Build: func() (*staging.Rocket, error) {
				r, err := staging.NewRocket(
					atlas(propulsion.LR105NA5, propulsion.LR89NA5, 2347, 3050),
					staging.MustSimpleStage(870, propulsion.Bell8081),
				)
				if err != nil {
					return nil, err
				}
				return r.WithPayload(Probe(330, 60))
			},
		},
		{
			Key:         "atlas-centaur",
			Name:        "Atlas-Centaur",
			Description: "Atlas SLV-3C with LR89-NA-7.1 boosters and a twin RL10 Centaur",
			Build: func() (*staging.Rocket, error) {
				return staging.NewRocket(
					atlas(propulsion.LR105NA71, propulsion.LR89NA71, 2347, 3174),
					staging.MustSimpleStage(2030, propulsion.RL10A33, propulsion.RL10A33),
				)
			},
		},
		{
			Key:         "saturn-ib",
			Name:        "Saturn IB",
			Description: "S-IB first stage with eight H-1 engines and a J-2 powered S-IVB",
			Build: func() (*staging.Rocket, error) {
				first := staging.MustSimpleStage(42000,
					propulsion.H1B, propulsion.H1B, propulsion.H1B, propulsion.H1B,
					propulsion.H1B, propulsion.H1B, propulsion.H1B, propulsion.H1B)
				return staging.NewRocket(first, staging.MustSimpleStage(10600, propulsion.J2))
			},
		},
		{
			Key:         "thor-agena-a",
			Name:        "Thrust Augmented Thor-Agena A",
			Description: "Thor with three Castor 1 strap-ons and an Agena A upper stage",
			Build: func() (*staging.Rocket, error) {
				core := staging.MustSimpleStage(3600, propulsion.LR79NA9).
					WithVerniers(propulsion.LR101NA3, 2)
				castor := staging.MustSimpleStage(700, propulsion.Castor1)
				thor, err := staging.NewBoostedStage(core, castor, 3)
				if err != nil {
					return nil, err
				}
				return staging.NewRocket(thor, staging.MustSimpleStage(640, propulsion.Bell8048))
			},
		},
	}
}
