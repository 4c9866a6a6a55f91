package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
	"github.com/litescript/ls-rocketry/internal/state"
	"github.com/litescript/ls-rocketry/internal/vehicles"
)

// FleetModel lists every known vehicle with its headline figures.
type FleetModel struct {
	width    int
	height   int
	cursor   int
	vehicles []vehicles.Vehicle
	snapshot state.Snapshot
}

// NewFleetModel creates a fleet list over the given vehicles.
func NewFleetModel(vs []vehicles.Vehicle) FleetModel {
	return FleetModel{vehicles: vs}
}

// SetSize updates the viewport size.
func (m FleetModel) SetSize(width, height int) FleetModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m FleetModel) UpdateData(snapshot state.Snapshot) FleetModel {
	m.snapshot = snapshot
	return m
}

// Selected returns the key of the vehicle under the cursor.
func (m FleetModel) Selected() string {
	if m.cursor < 0 || m.cursor >= len(m.vehicles) {
		return ""
	}
	return m.vehicles[m.cursor].Key
}

// Update handles messages.
func (m FleetModel) Update(msg tea.Msg) (FleetModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.vehicles)-1 {
			m.cursor++
		}
	case "home":
		m.cursor = 0
	case "end":
		if len(m.vehicles) > 0 {
			m.cursor = len(m.vehicles) - 1
		}
	case "enter":
		if selected := m.Selected(); selected != "" {
			return m, func() tea.Msg { return OpenVehicleMsg{Vehicle: selected} }
		}
	}
	return m, nil
}

// View renders the fleet table.
func (m FleetModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Fleet"))
	b.WriteString("\n\n")

	if len(m.vehicles) == 0 {
		b.WriteString("No vehicles defined\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(" %-32s %6s %11s %7s  %-20s ",
		"Vehicle", "Stages", "Delta-v", "Max G", "Furthest")))
	b.WriteString("\n")

	for i, v := range m.vehicles {
		line := fmt.Sprintf(" %-32s %s ", truncate(v.Name, 32), m.vehicleSummary(v.Key))
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m FleetModel) vehicleSummary(key string) string {
	entry, ok := m.snapshot.Entries[key]
	switch {
	case !ok:
		return dimStyle.Render(fmt.Sprintf("%6s %11s %7s  %-20s", "", "...", "", ""))
	case entry.Err != nil:
		return errorStyle.Render(fmt.Sprintf("%6s %11s %7s  %-20s", "-", "error", "-", truncate(entry.Err.Error(), 20)))
	}

	a := entry.Analysis
	furthest := Furthest(a.Assessment)
	if a.Assessment.ReachesOrbit {
		furthest = orbitalStyle.Render(fmt.Sprintf("%-20s", furthest))
	} else {
		furthest = fmt.Sprintf("%-20s", furthest)
	}
	return fmt.Sprintf("%6d %11s %7.2f  %s", len(a.Stages), report.FormatDeltaV(a.DeltaV), a.MaxGForce, furthest)
}

// Furthest names the most demanding destination an assessment reaches,
// with or without margin.
func Furthest(as mission.Assessment) string {
	if !as.ReachesOrbit {
		return "suborbital"
	}
	best := mission.Destination{Name: "Orbit", DeltaV: mission.DVToOrbit}
	for _, r := range as.Reachable() {
		if r.Destination.DeltaV > best.DeltaV {
			best = r.Destination
		}
	}
	return best.Name
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
