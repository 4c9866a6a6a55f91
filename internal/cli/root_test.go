package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/propulsion"
)

// execute runs the command tree with an isolated HOME and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"LOG_LEVEL", "WORKERS", "PAYLOAD_MARGIN", "SAFETY_MARGIN"} {
		t.Setenv("LS_ROCKETRY_"+key, "")
		os.Unsetenv("LS_ROCKETRY_" + key)
	}

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"exit error", &ExitError{Code: 2, Err: errors.New("short")}, 2},
		{"wrapped", errors.Join(errors.New("ctx"), &ExitError{Code: 3, Err: errors.New("x")}), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()
	want := []string{"list", "report", "payload", "export", "engines", "tui"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "log-level", "json", "no-color"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	if _, err := execute(t, "--log-level", "loud", "list"); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"atlas-agena-ranger", "Saturn IB", "Total: 5 vehicles"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "--json", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var rows []vehicleListing
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 5 {
		t.Errorf("got %d vehicles, want 5", len(rows))
	}
	if rows[0].Key != "atlas-agena-b" {
		t.Errorf("first vehicle = %q, want atlas-agena-b", rows[0].Key)
	}
}

func TestList_CustomVehicle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocketry.yaml")
	cfg := `
vehicles:
  - key: tiny
    name: Tiny Sounding Rocket
    stages:
      - dry_mass: 500
        engines:
          - engine: aj10-42
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", path, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Tiny Sounding Rocket") || !strings.Contains(out, "Total: 6 vehicles") {
		t.Errorf("custom vehicle not listed:\n%s", out)
	}
}

func TestReport(t *testing.T) {
	out, err := execute(t, "--no-color", "report", "atlas-agena-ranger")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"Atlas-Agena B / Ranger", "stage", "Total:", "Max G:", "Note: Assumes no gravity assists"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Max to") {
		t.Error("payload table printed without --payloads")
	}
}

func TestReport_Flags(t *testing.T) {
	out, err := execute(t, "--no-color", "report", "saturn-ib", "--payloads", "--propellants")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"Max to orbit:", "Propellants", "units"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_Require(t *testing.T) {
	if _, err := execute(t, "report", "atlas-agena-ranger", "--require", "orbit"); err != nil {
		t.Errorf("--require orbit: %v", err)
	}

	_, err := execute(t, "report", "atlas-agena-ranger", "--require", "jupiter")
	if err == nil {
		t.Fatal("expected jupiter to be out of reach")
	}
	if got := ExitCode(err); got != 2 {
		t.Errorf("ExitCode = %d, want 2", got)
	}

	_, err = execute(t, "report", "atlas-agena-ranger", "--require", "pluto")
	if err == nil || ExitCode(err) != 1 {
		t.Errorf("unknown destination: err = %v, want exit 1", err)
	}
}

func TestReport_PayloadMass(t *testing.T) {
	light, err := execute(t, "--json", "report", "thor-agena-a")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	heavy, err := execute(t, "--json", "report", "thor-agena-a", "--payload", "1000")
	if err != nil {
		t.Fatalf("report --payload: %v", err)
	}

	var a, b struct {
		PayloadMass float64 `json:"payload_mass"`
		DeltaV      float64 `json:"delta_v"`
	}
	if err := json.Unmarshal([]byte(light), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(heavy), &b); err != nil {
		t.Fatal(err)
	}
	if b.PayloadMass != 1000 {
		t.Errorf("payload_mass = %v, want 1000", b.PayloadMass)
	}
	if b.DeltaV >= a.DeltaV {
		t.Errorf("delta-v with payload %.0f not below %.0f", b.DeltaV, a.DeltaV)
	}

	if _, err := execute(t, "report", "thor-agena-a", "--payload", "-5"); err == nil {
		t.Error("expected error for negative payload")
	}
}

func TestReport_UnknownVehicle(t *testing.T) {
	_, err := execute(t, "report", "n1")
	if err == nil {
		t.Fatal("expected error for unknown vehicle")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}

func TestPayload_Target(t *testing.T) {
	out, err := execute(t, "payload", "atlas-agena-b", "--target", "9400")
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	if !strings.Contains(out, "Max payload of Atlas-Agena B for 9,400 m/s:") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPayload_ToJSON(t *testing.T) {
	out, err := execute(t, "--json", "payload", "atlas-agena-b", "--to", "orbit")
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	var got singlePayload
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Target != mission.DVToOrbit {
		t.Errorf("target = %v, want %v", got.Target, mission.DVToOrbit)
	}
	if got.Payload <= 0 {
		t.Errorf("payload = %v, want > 0", got.Payload)
	}
}

func TestPayload_Table(t *testing.T) {
	out, err := execute(t, "--json", "payload", "saturn-ib")
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	var caps []mission.PayloadCapacity
	if err := json.Unmarshal([]byte(out), &caps); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(caps) != len(mission.Destinations()) {
		t.Fatalf("got %d capacities, want %d", len(caps), len(mission.Destinations()))
	}
	if caps[0].Destination.Key != "orbit" || caps[0].Payload <= 0 {
		t.Errorf("first capacity = %+v, want a payload to orbit", caps[0])
	}
	for i := 1; i < len(caps); i++ {
		if caps[i].Payload > caps[0].Payload {
			t.Errorf("%s payload %v above orbit payload %v", caps[i].Destination.Key, caps[i].Payload, caps[0].Payload)
		}
	}
}

func TestPayload_Errors(t *testing.T) {
	tests := [][]string{
		{"payload", "saturn-ib", "--to", "pluto"},
		{"payload", "saturn-ib", "--target", "-1"},
		{"payload", "saturn-ib", "--target", "9400", "--to", "orbit"},
		{"payload"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := execute(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestExport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranger.json")
	out, err := execute(t, "export", "atlas-agena-ranger", "-o", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out != "" {
		t.Errorf("export to file wrote to stdout: %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Version  string                    `json:"version"`
		Vehicle  string                    `json:"vehicle"`
		Stages   []json.RawMessage         `json:"stages"`
		Payloads []mission.PayloadCapacity `json:"payloads"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got.Vehicle != "atlas-agena-ranger" {
		t.Errorf("vehicle = %q", got.Vehicle)
	}
	if got.Version == "" {
		t.Error("missing version")
	}
	if len(got.Stages) != 4 {
		t.Errorf("got %d stages, want 4", len(got.Stages))
	}
	if len(got.Payloads) != len(mission.Destinations()) {
		t.Errorf("got %d payloads, want %d", len(got.Payloads), len(mission.Destinations()))
	}
}

func TestExport_Stdout(t *testing.T) {
	out, err := execute(t, "export", "saturn-ib")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("stdout is not valid JSON:\n%s", out)
	}
}

func TestEngines(t *testing.T) {
	out, err := execute(t, "engines")
	if err != nil {
		t.Fatalf("engines: %v", err)
	}
	want := "Total: " + strconv.Itoa(len(propulsion.EngineKeys())) + " engines"
	if !strings.Contains(out, want) {
		t.Errorf("engines output missing %q", want)
	}
}

func TestEngines_CustomJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rocketry.yaml")
	cfg := `
engines:
  - key: test-motor
    name: Test Motor
    isp: 250
    thrust: 10
    mass: 20
    burn_time: 30
    consumption:
      - fuel: htpb
        rate: 2
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--json", "--config", path, "engines")
	if err != nil {
		t.Fatalf("engines: %v", err)
	}
	var entries []struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != len(propulsion.EngineKeys())+1 {
		t.Fatalf("got %d engines, want %d", len(entries), len(propulsion.EngineKeys())+1)
	}
	if last := entries[len(entries)-1].Key; last != "test-motor" {
		t.Errorf("last engine = %q, want test-motor", last)
	}
}
