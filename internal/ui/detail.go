package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-rocketry/internal/report"
	"github.com/litescript/ls-rocketry/internal/state"
)

// VehicleChangedMsg is sent when the detail view moves to another vehicle.
type VehicleChangedMsg struct {
	Vehicle string
}

// DetailModel shows the stage table, reachability and payload capacity of
// one vehicle.
type DetailModel struct {
	width     int
	height    int
	keys      []string
	index     int
	snapshot  state.Snapshot
	searching map[string]bool
	styles    report.Styles
}

// NewDetailModel creates a detail view cycling through keys.
func NewDetailModel(keys []string) DetailModel {
	return DetailModel{keys: keys, styles: report.ColorStyles()}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DetailModel) UpdateData(snapshot state.Snapshot) DetailModel {
	m.snapshot = snapshot
	return m
}

// SetSearching records which vehicles have a payload search running.
func (m DetailModel) SetSearching(searching map[string]bool) DetailModel {
	m.searching = searching
	return m
}

// Select moves the view to the vehicle with the given key. Unknown keys
// leave the selection unchanged.
func (m DetailModel) Select(key string) DetailModel {
	for i, k := range m.keys {
		if k == key {
			m.index = i
			break
		}
	}
	return m
}

// Selected returns the key of the vehicle shown.
func (m DetailModel) Selected() string {
	if len(m.keys) == 0 {
		return ""
	}
	return m.keys[m.index]
}

// Update handles messages.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.keys) == 0 {
		return m, nil
	}

	prev := m.index
	switch key.String() {
	case "left", "h":
		m.index = (m.index - 1 + len(m.keys)) % len(m.keys)
	case "right", "l":
		m.index = (m.index + 1) % len(m.keys)
	}
	if m.index == prev {
		return m, nil
	}
	selected := m.Selected()
	return m, func() tea.Msg { return VehicleChangedMsg{Vehicle: selected} }
}

// View renders the vehicle detail.
func (m DetailModel) View() string {
	var b strings.Builder

	key := m.Selected()
	if key == "" {
		b.WriteString("No vehicles defined\n")
		return b.String()
	}

	entry, ok := m.snapshot.Entries[key]
	if !ok {
		b.WriteString(titleStyle.Render(key))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Analyzing..."))
		b.WriteString("\n")
		return b.String()
	}
	if entry.Err != nil {
		b.WriteString(titleStyle.Render(key))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + entry.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	a := entry.Analysis
	b.WriteString(titleStyle.Render(a.Name))
	b.WriteString(dimStyle.Render("  " + key))
	b.WriteString("\n\n")

	report.WriteStageTable(&b, a)
	b.WriteString("\n")

	for _, line := range report.ReachabilityLines(a.Assessment, m.styles) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Payload capacity"))
	b.WriteString("\n")
	switch {
	case entry.PayloadsReady:
		report.WritePayloadTable(&b, a.Payloads)
	case m.searching[key]:
		b.WriteString(dimStyle.Render("Searching..."))
		b.WriteString("\n")
	default:
		b.WriteString(dimStyle.Render("Not computed"))
		b.WriteString("\n")
	}
	return b.String()
}
