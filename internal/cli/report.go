package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
)

type reportOptions struct {
	payloadMass float64
	payloads    bool
	propellants bool
	require     string
}

func newReportCommand(a *app) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report <vehicle>",
		Short: "Show the stage table and where a vehicle can go",
		Long: `Show the stage table, top stage first, and the destinations the vehicle
can reach.

Exit codes:
  0 - Report written (and --require destination reachable)
  1 - Error (unknown vehicle, invalid configuration)
  2 - The --require destination is out of reach`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.payloadMass, "payload", 0, "Inert payload mass above the top stage, in kg")
	cmd.Flags().BoolVar(&opts.payloads, "payloads", false, "Include the maximum payload to every destination")
	cmd.Flags().BoolVar(&opts.propellants, "propellants", false, "Include the propellant each stage burns")
	cmd.Flags().StringVar(&opts.require, "require", "", "Exit 2 unless the vehicle reaches this destination (e.g. orbit, gto, tli)")
	return cmd
}

func (a *app) runReport(ctx context.Context, w io.Writer, key string, opts reportOptions) error {
	if opts.require != "" {
		if _, ok := mission.LookupDestination(opts.require); !ok {
			return fmt.Errorf("--require: unknown destination %q", opts.require)
		}
	}

	v, r, err := a.build(key)
	if err != nil {
		return err
	}
	if opts.payloadMass != 0 {
		if r, err = r.WithPayloadMass(opts.payloadMass); err != nil {
			return fmt.Errorf("--payload: %w", err)
		}
	}

	analysis, err := report.Analyze(r, a.cfg.SafetyMargin)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", key, err)
	}
	analysis.Vehicle, analysis.Name = v.Key, v.Name

	if opts.payloads {
		start := time.Now()
		analysis.Payloads, err = mission.MaxPayloads(ctx, r, a.payloadOptions())
		if err != nil {
			return err
		}
		a.log.Debug("payload search for %s took %s", key, time.Since(start).Round(time.Millisecond))
	}

	if a.jsonOutput {
		if err := report.NewExport(analysis, time.Now()).WriteJSON(w); err != nil {
			return err
		}
	} else {
		report.WriteReport(w, analysis, a.styles(w))
		if opts.propellants {
			fmt.Fprintln(w)
			report.WritePropellants(w, analysis)
		}
	}

	if opts.require != "" && !analysis.Assessment.CanReach(opts.require) {
		return &ExitError{Code: 2, Err: fmt.Errorf("%s cannot reach %s", v.Name, opts.require)}
	}
	return nil
}
