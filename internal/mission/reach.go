package mission

// DefaultSafetyMargin is the factor a rocket's delta-v must exceed a budget
// by before the destination counts as comfortably reachable.
const DefaultSafetyMargin = 1.05

// Verdict classifies whether a destination is reachable.
type Verdict string

const (
	VerdictUnreachable Verdict = "UNREACHABLE"
	VerdictNoMargin    Verdict = "NO_MARGIN"
	VerdictReachable   Verdict = "REACHABLE"
)

// Reach is the verdict for a single destination.
type Reach struct {
	Destination Destination `json:"destination"`
	Verdict     Verdict     `json:"verdict"`
	Excess      float64     `json:"excess_dv"` // m/s beyond the budget, negative if short
}

// Assessment summarizes where a rocket with a given delta-v can go.
type Assessment struct {
	DeltaV       float64 `json:"delta_v"`
	ReachesOrbit bool    `json:"reaches_orbit"`
	Reaches      []Reach `json:"reaches"` // destinations beyond orbit
	// GravityAssistNote is set when interplanetary figures are shown; they assume no assists.
	GravityAssistNote bool `json:"gravity_assist_note"`
}

// Classify returns the verdict for deltaV against a budget.
func Classify(deltaV, required, safetyMargin float64) Verdict {
	switch {
	case deltaV > required*safetyMargin:
		return VerdictReachable
	case deltaV > required:
		return VerdictNoMargin
	default:
		return VerdictUnreachable
	}
}

// Assess evaluates every destination beyond orbit against deltaV.
// A non-positive safetyMargin falls back to DefaultSafetyMargin.
func Assess(deltaV, safetyMargin float64) Assessment {
	if safetyMargin <= 0 {
		safetyMargin = DefaultSafetyMargin
	}
	a := Assessment{
		DeltaV:            deltaV,
		ReachesOrbit:      deltaV > DVToOrbit,
		GravityAssistNote: deltaV > DVToGTO,
	}
	for _, d := range destinations[1:] {
		a.Reaches = append(a.Reaches, Reach{
			Destination: d,
			Verdict:     Classify(deltaV, d.DeltaV, safetyMargin),
			Excess:      deltaV - d.DeltaV,
		})
	}
	return a
}

// Reachable returns the destinations with any verdict other than unreachable.
func (a Assessment) Reachable() []Reach {
	var out []Reach
	for _, r := range a.Reaches {
		if r.Verdict != VerdictUnreachable {
			out = append(out, r)
		}
	}
	return out
}

// CanReach reports whether the destination with the given key is reachable,
// with or without margin. "orbit" is accepted.
func (a Assessment) CanReach(key string) bool {
	if key == "orbit" {
		return a.ReachesOrbit
	}
	for _, r := range a.Reaches {
		if r.Destination.Key == key {
			return r.Verdict != VerdictUnreachable
		}
	}
	return false
}
