// Package ui provides the terminal vehicle browser using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-rocketry/internal/logging"
	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
	"github.com/litescript/ls-rocketry/internal/state"
	"github.com/litescript/ls-rocketry/internal/vehicles"
	"github.com/litescript/ls-rocketry/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewFleet ViewMode = iota
	ViewDetail
	ViewEvents
)

const viewCount = 3

// Msg types for Bubble Tea
type (
	// analysisDoneMsg carries a finished vehicle analysis.
	analysisDoneMsg struct {
		vehicle  string
		analysis report.Analysis
		duration time.Duration
		err      error
	}

	// payloadsDoneMsg carries finished payload searches for a vehicle.
	payloadsDoneMsg struct {
		vehicle string
		caps    []mission.PayloadCapacity
		err     error
	}

	// OpenVehicleMsg requests the detail view for a vehicle.
	OpenVehicleMsg struct {
		Vehicle string
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	ctx      context.Context
	state    *state.Manager
	registry *vehicles.Registry
	log      *logging.Logger

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string

	// Sub-models
	fleet  FleetModel
	detail DetailModel

	snapshot state.Snapshot

	// Vehicles with a payload search in flight
	searching map[string]bool
}

// New creates a new root UI model. Payload searches stop when ctx is done.
func New(ctx context.Context, stateMgr *state.Manager, registry *vehicles.Registry, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	keys := vehicleKeys(registry)
	return Model{
		ctx:       ctx,
		state:     stateMgr,
		registry:  registry,
		log:       logger.With("ui"),
		viewMode:  ViewFleet,
		fleet:     NewFleetModel(registry.List()),
		detail:    NewDetailModel(keys),
		searching: make(map[string]bool),
	}
}

func vehicleKeys(reg *vehicles.Registry) []string {
	var keys []string
	for _, v := range reg.List() {
		keys = append(keys, v.Key)
	}
	return keys
}

// Init implements tea.Model. Every vehicle is analyzed up front; payload
// searches run when a vehicle is opened.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.registry.List() {
		cmds = append(cmds, analyzeCmd(v, m.state.SafetyMargin()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "f":
			m.viewMode = ViewFleet
		case "2", "d":
			m.viewMode = ViewDetail
			m.detail = m.detail.Select(m.fleet.Selected())
			cmds = append(cmds, m.searchPayloads(m.detail.Selected()))
		case "3", "e":
			m.viewMode = ViewEvents
		case "esc":
			m.viewMode = ViewFleet

		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
			if m.viewMode == ViewDetail {
				cmds = append(cmds, m.searchPayloads(m.detail.Selected()))
			}

		case "r":
			// Recompute everything, dropping cached payloads.
			m.statusMsg = "Recomputing..."
			for _, v := range m.registry.List() {
				m.state.Invalidate(v.Key)
			}
			m.snapshot = m.state.Snapshot()
			cmds = append(cmds, m.Init())

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes 4 lines, footer 2
		contentHeight := msg.Height - 6
		m.fleet = m.fleet.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)

	case analysisDoneMsg:
		m.state.Update(msg.vehicle, msg.analysis, msg.duration, msg.err)
		if msg.err != nil {
			m.log.Warn("analyze %s: %v", msg.vehicle, msg.err)
		} else {
			m.log.Debug("analyzed %s in %s", msg.vehicle, msg.duration)
			m.statusMsg = ""
		}
		m.refresh()
		if m.viewMode == ViewDetail && msg.vehicle == m.detail.Selected() {
			cmds = append(cmds, m.searchPayloads(msg.vehicle))
		}

	case payloadsDoneMsg:
		delete(m.searching, msg.vehicle)
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Payload search for %s failed: %v", msg.vehicle, msg.err)
			m.log.Warn("payloads %s: %v", msg.vehicle, msg.err)
		} else {
			m.state.SetPayloads(msg.vehicle, msg.caps)
		}
		m.refresh()

	case OpenVehicleMsg:
		m.detail = m.detail.Select(msg.Vehicle)
		m.viewMode = ViewDetail
		cmds = append(cmds, m.searchPayloads(msg.Vehicle))

	case VehicleChangedMsg:
		cmds = append(cmds, m.searchPayloads(msg.Vehicle))

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// refresh pulls a fresh snapshot and pushes it to the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.fleet = m.fleet.UpdateData(m.snapshot)
	m.detail = m.detail.UpdateData(m.snapshot)
}

// searchPayloads starts a payload search for a vehicle unless one is
// running or its capacities are already cached.
func (m *Model) searchPayloads(key string) tea.Cmd {
	if key == "" || m.searching[key] {
		return nil
	}
	entry, ok := m.state.Get(key)
	if !ok || entry.Err != nil || entry.PayloadsReady {
		return nil
	}
	v, err := m.registry.Get(key)
	if err != nil {
		return nil
	}
	m.searching[key] = true
	m.detail = m.detail.SetSearching(m.searching)
	return payloadCmd(m.ctx, v, m.state.PayloadOptions())
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewFleet:
		m.fleet, cmd = m.fleet.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewFleet:
		content = m.fleet.View()
	case ViewDetail:
		content = m.detail.View()
	case ViewEvents:
		content = m.renderEvents()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n  ")

	title := "LS-ROCKETRY"
	runes := []rune(title)
	for i, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(i, len(runes))))
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  staging & delta-v · v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient,
// running from blue through purple to pink.
func gradientColor(pos, width int) string {
	if width <= 1 {
		return "#3B82F6"
	}
	t := float64(pos) / float64(width-1)

	var r, g, b float64
	if t < 0.5 {
		u := t / 0.5
		r = 59 + u*(139-59)
		g = 130 + u*(92-130)
		b = 246
	} else {
		u := (t - 0.5) / 0.5
		r = 139 + u*(236-139)
		g = 92 + u*(72-92)
		b = 246 + u*(153-246)
	}
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return int(v)
	}
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Fleet", "[2] Vehicle", "[3] Events"}

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeTabStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderEvents() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent Activity"))
	b.WriteString("\n\n")

	events := m.state.RecentEvents(20)
	if len(events) == 0 {
		b.WriteString(dimStyle.Render("No activity yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %-15s %-22s %s",
			e.Timestamp.Format("15:04:05"), e.Type, e.Vehicle, e.Detail)
		if e.Type == state.EventFailed {
			b.WriteString(errorStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	var help string
	switch m.viewMode {
	case ViewDetail:
		help = "←/→: vehicle | esc: back"
	case ViewEvents:
		help = "tab: switch view"
	default:
		help = "↑↓: navigate | enter: open | tab: switch view"
	}
	footer := "  " + dimStyle.Render(help+" | r: recompute | q: quit")

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

func analyzeCmd(v vehicles.Vehicle, safetyMargin float64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		r, err := v.Build()
		if err != nil {
			return analysisDoneMsg{vehicle: v.Key, err: err}
		}
		a, err := report.Analyze(r, safetyMargin)
		a.Vehicle, a.Name = v.Key, v.Name
		return analysisDoneMsg{vehicle: v.Key, analysis: a, duration: time.Since(start), err: err}
	}
}

func payloadCmd(ctx context.Context, v vehicles.Vehicle, opts mission.PayloadOptions) tea.Cmd {
	return func() tea.Msg {
		r, err := v.Build()
		if err != nil {
			return payloadsDoneMsg{vehicle: v.Key, err: err}
		}
		caps, err := mission.MaxPayloads(ctx, r, opts)
		return payloadsDoneMsg{vehicle: v.Key, caps: caps, err: err}
	}
}
