package mission

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/litescript/ls-rocketry/internal/logging"
	"github.com/litescript/ls-rocketry/internal/staging"
)

// DefaultPayloadMargin inflates every budget beyond orbit when searching for
// payload capacity, to leave room for losses the budgets don't cover.
const DefaultPayloadMargin = 1.015

// PayloadOptions tunes MaxPayloads.
type PayloadOptions struct {
	Margin  float64 // applied to every destination except orbit
	Workers int     // concurrent searches, <= 0 means one per destination
	Logger  *logging.Logger
}

// DefaultPayloadOptions returns the margins the payload table is usually built with.
func DefaultPayloadOptions() PayloadOptions {
	return PayloadOptions{Margin: DefaultPayloadMargin, Workers: 4, Logger: logging.Discard()}
}

// PayloadCapacity is the largest payload found for a destination.
type PayloadCapacity struct {
	Destination Destination `json:"destination"`
	Target      float64     `json:"target_dv"`
	Payload     float64     `json:"payload_kg"`
}

// Target returns the delta-v a payload search should aim for at this destination.
func Target(d Destination, margin float64) float64 {
	if d.Key == "orbit" || margin <= 0 {
		return d.DeltaV
	}
	return d.DeltaV * margin
}

// MaxPayloads searches the payload capacity of rocket for every destination.
// Each search runs on its own copy of the rocket, so rocket is never modified.
// Destinations the rocket can't reach even empty report a payload of 0.
func MaxPayloads(ctx context.Context, rocket *staging.Rocket, opts PayloadOptions) ([]PayloadCapacity, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	dests := Destinations()
	results := make([]PayloadCapacity, len(dests))

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i, d := range dests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := Target(d, opts.Margin)
			payload, err := rocket.MaxPayloadForDeltaV(target)
			if err != nil {
				return fmt.Errorf("payload to %s: %w", d.Short, err)
			}
			log.Debug("max payload to %s (%.0f m/s): %.0f kg", d.Short, target, payload)
			results[i] = PayloadCapacity{Destination: d, Target: target, Payload: payload}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Capable filters capacities down to the destinations that take any payload.
func Capable(capacities []PayloadCapacity) []PayloadCapacity {
	var out []PayloadCapacity
	for _, c := range capacities {
		if c.Payload > 0 {
			out = append(out, c)
		}
	}
	return out
}
