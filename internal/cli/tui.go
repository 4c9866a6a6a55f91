package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-rocketry/internal/state"
	"github.com/litescript/ls-rocketry/internal/ui"
)

func newTUICommand(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse vehicles interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the alternate screen.
			var logOut io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			a.log.SetOutput(logOut)

			stateCfg := state.DefaultConfig()
			stateCfg.SafetyMargin = a.cfg.SafetyMargin
			stateCfg.PayloadOptions = a.payloadOptions()
			stateMgr := state.NewManager(stateCfg)

			model := ui.New(cmd.Context(), stateMgr, a.registry, a.log)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Append log output to this file while the TUI runs")
	return cmd
}
