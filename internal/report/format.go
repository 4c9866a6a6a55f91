package report

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatBurnTime formats a burn duration as "Xm", "Ys" or "Xm Ys".
// Fractional seconds are truncated.
func FormatBurnTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := uint64(seconds)
	minutes, secs := total/60, total%60
	switch {
	case secs == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%ds", secs)
	default:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}
}

// FormatMass formats kilograms rounded to whole units with thousands separators.
func FormatMass(kg float64) string {
	return humanize.Comma(int64(math.Round(kg))) + " kg"
}

// FormatDeltaV formats a velocity in m/s with thousands separators.
func FormatDeltaV(mps float64) string {
	return humanize.Comma(int64(math.Round(mps))) + " m/s"
}

// FormatAmount formats a propellant volume in the catalog's rate units.
func FormatAmount(units float64) string {
	return humanize.Comma(int64(math.Round(units))) + " units"
}
