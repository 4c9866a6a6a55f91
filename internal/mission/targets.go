// Package mission provides reference delta-v budgets for common destinations
// and evaluates which of them a rocket can reach, and with what payload.
package mission

// Delta-v budgets from the launch pad, in m/s. Transfers assume no gravity assists.
const (
	DVToOrbit      = 9400.0
	DVToGTO        = DVToOrbit + 2440
	DVToGEO        = DVToGTO + 1850
	DVToTLI        = DVToGTO + 680 // 3120 from orbit
	DVToLLO        = DVToTLI + 140 + 680
	DVToVenus      = DVToTLI + 370 // 3490 from orbit
	DVToVenusOrbit = DVToVenus + 3800
	DVToMars       = DVToTLI + 480
	DVToMarsOrbit  = DVToMars + 1200
	DVToMercury    = DVToVenus + 2060
	DVToJupiter    = DVToMars + 2700
)

// Destination is a mission target with its delta-v budget.
type Destination struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`  // used in reachability lines
	Short  string  `json:"short"` // used in payload tables
	DeltaV float64 `json:"delta_v"`
}

var destinations = []Destination{
	{Key: "orbit", Name: "Orbit", Short: "orbit", DeltaV: DVToOrbit},
	{Key: "gto", Name: "GTO", Short: "GTO", DeltaV: DVToGTO},
	{Key: "geo", Name: "GEO", Short: "GEO", DeltaV: DVToGEO},
	{Key: "tli", Name: "The Moon", Short: "TLI", DeltaV: DVToTLI},
	{Key: "llo", Name: "Lunar Orbit", Short: "Lunar Orbit", DeltaV: DVToLLO},
	{Key: "venus", Name: "Venus", Short: "Venus", DeltaV: DVToVenus},
	{Key: "venus-orbit", Name: "Low Venus Orbit", Short: "Low Venus Orbit", DeltaV: DVToVenusOrbit},
	{Key: "mars", Name: "Mars", Short: "Mars", DeltaV: DVToMars},
	{Key: "mars-orbit", Name: "Low Martian Orbit", Short: "Low Mars Orbit", DeltaV: DVToMarsOrbit},
	{Key: "mercury", Name: "Mercury", Short: "Mercury", DeltaV: DVToMercury},
	{Key: "jupiter", Name: "Jupiter", Short: "Jupiter", DeltaV: DVToJupiter},
}

// Destinations returns all destinations in order of increasing ambition.
// The first entry is always low orbit.
func Destinations() []Destination {
	return append([]Destination(nil), destinations...)
}

// LookupDestination finds a destination by key.
func LookupDestination(key string) (Destination, bool) {
	for _, d := range destinations {
		if d.Key == key {
			return d, true
		}
	}
	return Destination{}, false
}
