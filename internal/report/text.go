package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/propulsion"
)

const ruleWidth = 78

// Reachability messages.
const (
	msgNoOrbit       = "This rocket will not reach orbit"
	msgGravityAssist = "Note: Assumes no gravity assists"
)

// WriteStageTable writes the stage table, top stage first, followed by the
// total delta-v and the highest acceleration.
func WriteStageTable(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "%5s  %10s  %10s  %10s  %10s  %10s  %10s\n",
		"stage", "delta-v", "wet mass", "dry mass", "Start TWR", "End TWR", "burn time")
	for _, row := range slices.Backward(a.Stages) {
		fmt.Fprintf(w, "%5d: %6.0f m/s  %10.0f  %10.0f  %10.2f  %10.2f  %10s\n",
			row.Index, row.DeltaV, row.WetMass, row.DryMass, row.StartTWR, row.EndTWR,
			FormatBurnTime(row.BurnTime))
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(w, "Total: %6.0f m/s\n", a.DeltaV)
	fmt.Fprintf(w, "Max G: %10.2f\n", a.MaxGForce)
}

// ReachabilityLines returns one styled line per reachable destination, in
// order of increasing ambition.
func ReachabilityLines(as mission.Assessment, st Styles) []string {
	var lines []string
	if !as.ReachesOrbit {
		lines = append(lines, st.Unreachable.Render(msgNoOrbit))
	}
	for _, r := range as.Reachable() {
		switch r.Verdict {
		case mission.VerdictReachable:
			lines = append(lines, st.Reachable.Render(fmt.Sprintf(
				"This rocket can go to %s with %.0f m/s excess dV", r.Destination.Name, r.Excess)))
		case mission.VerdictNoMargin:
			lines = append(lines, st.NoMargin.Render(fmt.Sprintf(
				"This rocket can go to %s without safety margins", r.Destination.Name)))
		}
	}
	if as.GravityAssistNote {
		lines = append(lines, st.Note.Render(msgGravityAssist))
	}
	return lines
}

// WriteReachability writes where the rocket can go.
func WriteReachability(w io.Writer, as mission.Assessment, st Styles) {
	for _, line := range ReachabilityLines(as, st) {
		fmt.Fprintln(w, line)
	}
}

// WritePayloadTable writes the largest payload per destination. Destinations
// that take no payload are omitted.
func WritePayloadTable(w io.Writer, caps []mission.PayloadCapacity) {
	capable := mission.Capable(caps)
	if len(capable) == 0 {
		fmt.Fprintln(w, "No payload capacity to any destination")
		return
	}
	for _, c := range capable {
		fmt.Fprintf(w, "Max to %s: %s\n", c.Destination.Short, FormatMass(c.Payload))
	}
}

// WritePropellants writes the propellant volume each stage burns, top stage first.
func WritePropellants(w io.Writer, a Analysis) {
	fmt.Fprintln(w, "Propellants")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, row := range slices.Backward(a.Stages) {
		if len(row.Propellants) == 0 {
			fmt.Fprintf(w, "%5d: none\n", row.Index)
			continue
		}
		for i, name := range slices.Sorted(maps.Keys(row.Propellants)) {
			label := ""
			if i == 0 {
				label = fmt.Sprintf("%5d:", row.Index)
			}
			fmt.Fprintf(w, "%-6s %-12s %12s\n", label, name, FormatAmount(row.Propellants[name]))
		}
	}
}

// WriteReport writes the full text report for an analysis.
func WriteReport(w io.Writer, a Analysis, st Styles) {
	if a.Name != "" {
		fmt.Fprintf(w, "%s\n", a.Name)
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	}
	if len(a.Payloads) > 0 {
		WritePayloadTable(w, a.Payloads)
		fmt.Fprintln(w)
	}
	WriteStageTable(w, a)
	fmt.Fprintln(w)
	fmt.Fprintln(w)
	WriteReachability(w, a.Assessment, st)
}

// EngineEntry is an engine listed under its catalog key.
type EngineEntry struct {
	Key    string            `json:"key"`
	Engine propulsion.Engine `json:"engine"`
}

// WriteEngineTable writes engine specifications with their catalog keys.
func WriteEngineTable(w io.Writer, entries []EngineEntry) {
	fmt.Fprintf(w, "%-20s %-26s %7s %9s %7s %9s  %s\n",
		"Key", "Name", "Isp", "Thrust", "Mass", "Burn", "Propellants")
	fmt.Fprintln(w, strings.Repeat("─", 100))
	for _, entry := range entries {
		e := entry.Engine
		var fuels []string
		for _, c := range e.Consumption {
			fuels = append(fuels, c.Fuel.Name)
		}
		fmt.Fprintf(w, "%-20s %-26s %6.0fs %7.1fkN %5.0fkg %9s  %s\n",
			truncateStr(entry.Key, 20), truncateStr(e.Name, 26), e.Isp, e.Thrust, e.Mass,
			FormatBurnTime(e.BurnTime), strings.Join(fuels, "/"))
	}
	fmt.Fprintf(w, "\nTotal: %d engines\n", len(entries))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 2 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
