package report

import "github.com/charmbracelet/lipgloss"

// Styles colors the reachability lines.
type Styles struct {
	Unreachable lipgloss.Style
	Reachable   lipgloss.Style
	NoMargin    lipgloss.Style
	Note        lipgloss.Style
}

// ColorStyles returns the terminal palette.
func ColorStyles() Styles {
	return Styles{
		Unreachable: lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Bold(true),
		Reachable:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		NoMargin:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Note:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// PlainStyles returns styles that render text unchanged, for pipes and files.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Unreachable: plain, Reachable: plain, NoMargin: plain, Note: plain}
}
