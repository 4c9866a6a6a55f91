package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-rocketry/internal/propulsion"
	"github.com/litescript/ls-rocketry/internal/report"
)

func newEnginesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List built-in and configured engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEngines(cmd.OutOrStdout())
		},
	}
}

func (a *app) runEngines(w io.Writer) error {
	var entries []report.EngineEntry
	for _, key := range propulsion.EngineKeys() {
		e, err := propulsion.LookupEngine(key)
		if err != nil {
			return err
		}
		entries = append(entries, report.EngineEntry{Key: key, Engine: e})
	}
	for _, key := range a.catalog.EngineKeys() {
		e, err := a.catalog.Engine(key)
		if err != nil {
			return err
		}
		entries = append(entries, report.EngineEntry{Key: key, Engine: e})
	}

	if a.jsonOutput {
		return report.WriteEnginesJSON(w, entries)
	}
	report.WriteEngineTable(w, entries)
	return nil
}
