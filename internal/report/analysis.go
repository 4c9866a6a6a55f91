// Package report turns rockets into stage tables, reachability verdicts,
// payload tables and JSON exports.
package report

import (
	"fmt"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/staging"
)

// StageRow is one effective stage of the flight sequence.
type StageRow struct {
	Index       int                `json:"index"` // 0 is the first stage to burn
	DeltaV      float64            `json:"delta_v"`
	WetMass     float64            `json:"wet_mass"`
	DryMass     float64            `json:"dry_mass"`
	Isp         float64            `json:"isp"`
	StartTWR    float64            `json:"start_twr"`
	EndTWR      float64            `json:"end_twr"`
	BurnTime    float64            `json:"burn_time"`
	Engines     int                `json:"engines"`
	Propellants map[string]float64 `json:"propellants"`
}

// Analysis is everything reported about one rocket.
type Analysis struct {
	Vehicle     string                    `json:"vehicle,omitempty"`
	Name        string                    `json:"name,omitempty"`
	PayloadMass float64                   `json:"payload_mass"`
	DeltaV      float64                   `json:"delta_v"`
	MaxGForce   float64                   `json:"max_g"`
	Stages      []StageRow                `json:"stages"`
	Assessment  mission.Assessment        `json:"assessment"`
	Payloads    []mission.PayloadCapacity `json:"payloads,omitempty"`
}

// Analyze measures every stage of r and assesses where it can go.
// Payload capacities are left empty; fill them with mission.MaxPayloads.
func Analyze(r *staging.Rocket, safetyMargin float64) (Analysis, error) {
	a := Analysis{PayloadMass: r.PayloadMass}

	i := 0
	for s := range r.FlightSequence() {
		m, err := staging.Measure(s)
		if err != nil {
			return Analysis{}, fmt.Errorf("stage %d: %w", i, err)
		}
		a.Stages = append(a.Stages, StageRow{
			Index:       i,
			DeltaV:      m.DeltaV,
			WetMass:     m.WetMass,
			DryMass:     m.DryMass,
			Isp:         m.Isp,
			StartTWR:    m.TWR,
			EndTWR:      m.MaxGForce,
			BurnTime:    m.BurnTime,
			Engines:     len(s.Engines()),
			Propellants: staging.PropellantsRequired(s),
		})
		i++
	}

	var err error
	if a.DeltaV, err = r.DeltaV(); err != nil {
		return Analysis{}, err
	}
	if a.MaxGForce, err = r.MaxGForce(); err != nil {
		return Analysis{}, err
	}
	a.Assessment = mission.Assess(a.DeltaV, safetyMargin)
	return a, nil
}
