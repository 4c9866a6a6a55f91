package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
)

type payloadOptions struct {
	target      float64
	destination string
}

func newPayloadCommand(a *app) *cobra.Command {
	var opts payloadOptions

	cmd := &cobra.Command{
		Use:   "payload <vehicle>",
		Short: "Find the largest payload a vehicle can carry",
		Long: `Find the largest payload a vehicle can carry to every destination, to one
destination (--to) or to an explicit delta-v (--target).

Budgets beyond orbit are inflated by payload_margin (default 1.5%).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPayload(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.target, "target", 0, "Target delta-v in m/s")
	cmd.Flags().StringVar(&opts.destination, "to", "", "Destination key (e.g. orbit, gto, mars)")
	cmd.MarkFlagsMutuallyExclusive("target", "to")
	return cmd
}

type singlePayload struct {
	Vehicle string  `json:"vehicle"`
	Target  float64 `json:"target_dv"`
	Payload float64 `json:"payload_kg"`
}

func (a *app) runPayload(ctx context.Context, w io.Writer, key string, opts payloadOptions) error {
	v, r, err := a.build(key)
	if err != nil {
		return err
	}

	target := opts.target
	if opts.destination != "" {
		d, ok := mission.LookupDestination(opts.destination)
		if !ok {
			return fmt.Errorf("--to: unknown destination %q", opts.destination)
		}
		target = mission.Target(d, a.cfg.PayloadMargin)
	}

	if target == 0 {
		caps, err := mission.MaxPayloads(ctx, r, a.payloadOptions())
		if err != nil {
			return err
		}
		if a.jsonOutput {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(caps)
		}
		fmt.Fprintf(w, "%s\n", v.Name)
		report.WritePayloadTable(w, caps)
		return nil
	}

	if target < 0 {
		return fmt.Errorf("--target must be positive, got %v", target)
	}
	payload, err := r.MaxPayloadForDeltaV(target)
	if err != nil {
		return err
	}
	if a.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(singlePayload{Vehicle: v.Key, Target: target, Payload: payload})
	}
	fmt.Fprintf(w, "Max payload of %s for %s: %s\n", v.Name, report.FormatDeltaV(target), report.FormatMass(payload))
	return nil
}
