package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
)

func newExportCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <vehicle>",
		Short: "Write a full JSON analysis of a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd.Context(), cmd.OutOrStdout(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file (use - for stdout)")
	return cmd
}

func (a *app) runExport(ctx context.Context, stdout io.Writer, key, output string) error {
	v, r, err := a.build(key)
	if err != nil {
		return err
	}

	analysis, err := report.Analyze(r, a.cfg.SafetyMargin)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", key, err)
	}
	analysis.Vehicle, analysis.Name = v.Key, v.Name
	if analysis.Payloads, err = mission.MaxPayloads(ctx, r, a.payloadOptions()); err != nil {
		return err
	}

	export := report.NewExport(analysis, time.Now())
	if output == "-" || output == "" {
		if err := export.WriteJSON(stdout); err != nil {
			return fmt.Errorf("write JSON to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	if err := export.WriteJSON(f); err != nil {
		return fmt.Errorf("write JSON to file: %w", err)
	}
	a.log.Info("wrote %s analysis to %s", key, output)
	return f.Close()
}
