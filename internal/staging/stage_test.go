package staging

import (
	"errors"
	"math"
	"testing"

	"github.com/litescript/ls-rocketry/internal/propulsion"
)

var testFuel = propulsion.Fuel{Name: "Test", Density: 1}

// testEngine returns an engine that burns propellant kg of testFuel over burnTime seconds.
func testEngine(isp, thrust, propellant, burnTime float64) propulsion.Engine {
	return propulsion.Engine{
		Name:        "test",
		Consumption: []propulsion.FuelRate{{Fuel: testFuel, Rate: propellant / burnTime}},
		Isp:         isp,
		Thrust:      thrust,
		BurnTime:    burnTime,
	}
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSimpleStage_WetMass(t *testing.T) {
	tests := []struct {
		name    string
		dry     float64
		engines []propulsion.Engine
	}{
		{"single engine", 1000, []propulsion.Engine{testEngine(300, 1, 2000, 100)}},
		{"atlas sustainer", 2500, []propulsion.Engine{propulsion.LR105NA5}},
		{
			"sustainer with verniers",
			2500,
			[]propulsion.Engine{propulsion.LR105NA5, propulsion.LR101NA3, propulsion.LR101NA3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustSimpleStage(tt.dry, tt.engines...)

			var propellant float64
			for _, e := range tt.engines {
				propellant += e.PropellantMassForFullBurn()
			}

			if got := s.WetMass() - s.DryMass(); !approxEqual(got, propellant, 1e-6) {
				t.Errorf("WetMass - DryMass = %v, want %v", got, propellant)
			}
		})
	}
}

func TestDeltaV_SingleEngine(t *testing.T) {
	s := MustSimpleStage(1000, testEngine(300, 1, 2000, 100))

	if s.WetMass() != 3000 {
		t.Fatalf("WetMass = %v, want 3000", s.WetMass())
	}

	got, err := DeltaV(s)
	if err != nil {
		t.Fatalf("DeltaV: %v", err)
	}
	want := 300 * math.Log(3) * 9.82
	if got != want {
		t.Errorf("DeltaV = %v, want %v", got, want)
	}
	if !approxEqual(got, 3236.5, 0.1) {
		t.Errorf("DeltaV = %.1f, want about 3236.5", got)
	}
}

func TestDeltaV_NoPropellant(t *testing.T) {
	s := MustSimpleStage(1000, testEngine(300, 1, 0, 100))

	got, err := DeltaV(s)
	if err != nil {
		t.Fatalf("DeltaV: %v", err)
	}
	if got != 0 {
		t.Errorf("DeltaV = %v, want 0", got)
	}
}

func TestIsp(t *testing.T) {
	tests := []struct {
		name    string
		engines []propulsion.Engine
		want    float64
	}{
		{"single", []propulsion.Engine{testEngine(300, 10, 1, 1)}, 300},
		{"identical pair", []propulsion.Engine{testEngine(300, 10, 1, 1), testEngine(300, 10, 1, 1)}, 300},
		{
			"thrust weighted",
			[]propulsion.Engine{testEngine(200, 100, 1, 1), testEngine(400, 100, 1, 1)},
			200 / (100.0/200 + 100.0/400),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Isp(MustSimpleStage(1, tt.engines...))
			if err != nil {
				t.Fatalf("Isp: %v", err)
			}
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("Isp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsp_NoEngines(t *testing.T) {
	s := SimpleStage{dryMass: 100}

	if _, err := Isp(s); !errors.Is(err, ErrNoEngines) {
		t.Errorf("Isp error = %v, want ErrNoEngines", err)
	}
	if _, err := DeltaV(s); !errors.Is(err, ErrNoEngines) {
		t.Errorf("DeltaV error = %v, want ErrNoEngines", err)
	}
	if bt := s.BurnTime(); bt != 0 {
		t.Errorf("BurnTime = %v, want 0", bt)
	}
}

func TestTWRAndMaxGForce(t *testing.T) {
	s := MustSimpleStage(1000, testEngine(300, 98.2, 2000, 100))

	if got := TWR(s); !approxEqual(got, 98200/3000.0/9.82, 1e-12) {
		t.Errorf("TWR = %v", got)
	}
	if got := MaxGForce(s); !approxEqual(got, 10, 1e-9) {
		t.Errorf("MaxGForce = %v, want 10", got)
	}
}

func TestPropellantsRequired(t *testing.T) {
	s := MustSimpleStage(1000, propulsion.H1B, propulsion.H1B)

	got := PropellantsRequired(s)
	if len(got) != 2 {
		t.Fatalf("got %d fuels, want 2", len(got))
	}
	wantKerosene := 2 * 133.9858 * 180
	if !approxEqual(got["Kerosene"], wantKerosene, 1e-6) {
		t.Errorf("Kerosene = %v, want %v", got["Kerosene"], wantKerosene)
	}
	wantLOX := 2 * 214.7539 * 180
	if !approxEqual(got["LqdOxygen"], wantLOX, 1e-6) {
		t.Errorf("LqdOxygen = %v, want %v", got["LqdOxygen"], wantLOX)
	}
}

func TestNewSimpleStage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dry     float64
		engines []propulsion.Engine
		wantErr error
	}{
		{"no engines", 100, nil, ErrNoEngines},
		{"zero dry mass", 0, []propulsion.Engine{propulsion.H1}, ErrNonPositiveDryMass},
		{"NaN dry mass", math.NaN(), []propulsion.Engine{propulsion.H1}, ErrNonPositiveDryMass},
		{"negative burn", 100, []propulsion.Engine{propulsion.H1.WithBurnTime(-5)}, propulsion.ErrNegativeBurnTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSimpleStage(tt.dry, tt.engines...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSimpleStage error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithRemainingBurnTime(t *testing.T) {
	s := MustSimpleStage(100, propulsion.LR105NA5, propulsion.LR101NA3)
	short := s.WithRemainingBurnTime(200)

	for i, e := range short.Engines() {
		if e.BurnTime != 200 {
			t.Errorf("engine %d BurnTime = %v, want 200", i, e.BurnTime)
		}
	}
	if s.Engines()[0].BurnTime != propulsion.LR105NA5.BurnTime {
		t.Error("WithRemainingBurnTime modified the original stage")
	}
	if short.DryMass() != s.DryMass() {
		t.Errorf("DryMass = %v, want %v", short.DryMass(), s.DryMass())
	}
}

func TestWithVerniers(t *testing.T) {
	s := MustSimpleStage(100, propulsion.LR105NA5).WithVerniers(propulsion.LR101NA3, 2)

	engines := s.Engines()
	if len(engines) != 3 {
		t.Fatalf("got %d engines, want 3", len(engines))
	}
	for _, e := range engines[1:] {
		if e.Name != propulsion.LR101NA3.Name {
			t.Errorf("vernier name = %q", e.Name)
		}
		if e.BurnTime != propulsion.LR105NA5.BurnTime {
			t.Errorf("vernier BurnTime = %v, want %v", e.BurnTime, propulsion.LR105NA5.BurnTime)
		}
	}
	if s.BurnTime() != propulsion.LR105NA5.BurnTime {
		t.Errorf("BurnTime = %v, want %v", s.BurnTime(), propulsion.LR105NA5.BurnTime)
	}
}

func TestMeasure(t *testing.T) {
	s := MustSimpleStage(1000, testEngine(300, 1, 2000, 100))

	m, err := Measure(s)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if m.WetMass != 3000 || m.DryMass != 1000 || m.BurnTime != 100 || m.Isp != 300 {
		t.Errorf("Measure = %+v", m)
	}

	if _, err := Measure(SimpleStage{dryMass: 1}); !errors.Is(err, ErrNoEngines) {
		t.Errorf("Measure error = %v, want ErrNoEngines", err)
	}
}
