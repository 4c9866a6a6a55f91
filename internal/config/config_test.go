package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-rocketry/internal/propulsion"
	"github.com/litescript/ls-rocketry/internal/vehicles"
)

const sampleConfig = `
log_level: debug
payload_margin: 1.02
workers: 2

fuels:
  - key: slush-hydrogen
    name: SlushH2
    density: 0.085

engines:
  - key: slush-rl10
    name: RL10 Slush
    isp: 450
    thrust: 70
    mass: 140
    burn_time: 400
    consumption:
      - fuel: slush-hydrogen
        rate: 30
      - fuel: liquid-oxygen
        rate: 11

vehicles:
  - key: atlas-slush
    name: Atlas Slush
    description: Atlas with a slush hydrogen upper stage
    payload_mass: 500
    stages:
      - dry_mass: 3957
        engines:
          - engine: lr105-na-5
        verniers:
          engine: lr101-na-3
          count: 2
        booster:
          dry_mass: 3050
          engines:
            - engine: lr89-na-5
              count: 2
      - dry_mass: 1800
        engines:
          - engine: slush-rl10
            count: 2
    payload:
      dry_mass: 300
      engines:
        - engine: thruster-2
          burn_time: 45
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rocketry.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	if cfg.LogLevel != want.LogLevel || cfg.PayloadMargin != want.PayloadMargin ||
		cfg.SafetyMargin != want.SafetyMargin || cfg.Workers != want.Workers {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, want)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
}

func TestLoad_HomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, DefaultFileName+".yaml")
	if err := os.WriteFile(path, []byte("workers: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 7 {
		t.Errorf("Workers = %d, want 7", cfg.Workers)
	}
	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.PayloadMargin != 1.02 {
		t.Errorf("PayloadMargin = %v, want 1.02", cfg.PayloadMargin)
	}
	if cfg.SafetyMargin != 1.05 {
		t.Errorf("SafetyMargin = %v, want default 1.05", cfg.SafetyMargin)
	}
	if len(cfg.Fuels) != 1 || len(cfg.Engines) != 1 || len(cfg.Vehicles) != 1 {
		t.Fatalf("got %d fuels, %d engines, %d vehicles, want 1 each",
			len(cfg.Fuels), len(cfg.Engines), len(cfg.Vehicles))
	}
	if got := len(cfg.Engines[0].Consumption); got != 2 {
		t.Errorf("engine consumption entries = %d, want 2", got)
	}
	v := cfg.Vehicles[0]
	if v.Stages[0].Booster == nil || v.Stages[0].Verniers == nil {
		t.Fatal("first stage should have booster and verniers")
	}
	if v.Payload == nil || v.Payload.Engines[0].BurnTime == nil || *v.Payload.Engines[0].BurnTime != 45 {
		t.Error("payload burn time override not decoded")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LS_ROCKETRY_WORKERS", "9")
	t.Setenv("LS_ROCKETRY_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 9 {
		t.Errorf("Workers = %d, want 9 from environment", cfg.Workers)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn from environment", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "workers: [1\n") }},
		{"negative workers", func(t *testing.T) string { return writeConfig(t, "workers: -1\n") }},
		{"negative margin", func(t *testing.T) string { return writeConfig(t, "payload_margin: -0.5\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCatalog_CustomDefinitions(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cat, err := NewCatalog(cfg)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	f, err := cat.Fuel("Slush_Hydrogen")
	if err != nil {
		t.Fatalf("Fuel: %v", err)
	}
	if f.Name != "SlushH2" || f.Density != 0.085 {
		t.Errorf("custom fuel = %+v", f)
	}
	if _, err := cat.Fuel("kerosene"); err != nil {
		t.Errorf("built-in fuel lookup through catalog: %v", err)
	}

	e, err := cat.Engine("slush-rl10")
	if err != nil {
		t.Fatalf("Engine: %v", err)
	}
	if e.Consumption[1].Fuel != propulsion.LiquidOxygen {
		t.Errorf("second fuel = %+v, want built-in liquid oxygen", e.Consumption[1].Fuel)
	}
	if got := cat.EngineKeys(); len(got) != 1 || got[0] != "slush-rl10" {
		t.Errorf("EngineKeys = %v", got)
	}
}

func TestCatalog_Rocket(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cat, err := NewCatalog(cfg)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	r, err := cat.Rocket(cfg.Vehicles[0])
	if err != nil {
		t.Fatalf("Rocket: %v", err)
	}
	// Boosted first stage, upper stage and powered payload.
	if got := len(r.Stack()); got != 3 {
		t.Errorf("len(Stack()) = %d, want 3", got)
	}
	if got := len(r.Stages()); got != 4 {
		t.Errorf("len(Stages()) = %d, want 4", got)
	}
	if r.PayloadMass != 500 {
		t.Errorf("PayloadMass = %v, want 500", r.PayloadMass)
	}
	// LR105 + 2 verniers on the core, 2 LR89 on the booster.
	if got := len(r.Stack()[0].Engines()); got != 5 {
		t.Errorf("first stage engines = %d, want 5", got)
	}
	if got := r.Stack()[2].BurnTime(); got != 45 {
		t.Errorf("payload burn time = %v, want 45", got)
	}
}

func TestCatalog_RegisterVehicles(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cat, err := NewCatalog(cfg)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	reg := vehicles.NewRegistry()
	if err := cat.RegisterVehicles(reg, cfg.Vehicles); err != nil {
		t.Fatalf("RegisterVehicles: %v", err)
	}
	v, err := reg.Get("atlas-slush")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.Name != "Atlas Slush" {
		t.Errorf("Name = %q", v.Name)
	}
	if _, err := v.Build(); err != nil {
		t.Errorf("Build: %v", err)
	}

	if err := cat.RegisterVehicles(reg, cfg.Vehicles); err == nil {
		t.Error("expected error registering the same vehicle twice")
	}
}

func TestCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "fuel without density",
			yaml:    "fuels:\n  - key: air\n",
			wantErr: "density",
		},
		{
			name:    "duplicate fuel",
			yaml:    "fuels:\n  - {key: a, density: 1}\n  - {key: A, density: 2}\n",
			wantErr: "defined twice",
		},
		{
			name:    "engine with unknown fuel",
			yaml:    "engines:\n  - {key: e, isp: 300, thrust: 10, consumption: [{fuel: unobtainium, rate: 1}]}\n",
			wantErr: "unknown fuel",
		},
		{
			name:    "engine without thrust",
			yaml:    "engines:\n  - {key: e, isp: 300}\n",
			wantErr: "positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.yaml))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			_, err = NewCatalog(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewCatalog error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_BadVehicle(t *testing.T) {
	cat, err := NewCatalog(Default())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	tests := []struct {
		name string
		def  VehicleDef
	}{
		{"no stages", VehicleDef{Key: "empty"}},
		{"unknown engine", VehicleDef{Key: "x", Stages: []StageDef{{DryMass: 100, Engines: []EngineRef{{Engine: "warp-drive"}}}}}},
		{"zero dry mass", VehicleDef{Key: "x", Stages: []StageDef{{Engines: []EngineRef{{Engine: "h1"}}}}}},
		{"negative payload", VehicleDef{Key: "x", PayloadMass: -1, Stages: []StageDef{{DryMass: 100, Engines: []EngineRef{{Engine: "h1"}}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := vehicles.NewRegistry()
			if err := cat.RegisterVehicles(reg, []VehicleDef{tt.def}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
