package propulsion

import (
	"fmt"
	"sort"
	"strings"
)

var fuelCatalog = map[string]Fuel{
	"kerosene":        Kerosene,
	"liquid-oxygen":   LiquidOxygen,
	"udmh":            UDMH,
	"irfna-iii":       IRFNAIII,
	"iwfna":           IWFNA,
	"liquid-hydrogen": LiquidHydrogen,
	"pspc":            PSPC,
	"htpb":            HTPB,
	"hydrazine":       Hydrazine,
	"cavea-b":         CaveaB,
	"aerozine50":      Aerozine50,
	"nto":             NTO,
}

var engineCatalog = map[string]Engine{
	"bell-8048":          Bell8048,
	"bell-8081":          Bell8081,
	"bell-8096":          Bell8096,
	"lr43-na-3":          LR43NA3,
	"lr43-na-5":          LR43NA5,
	"lr105-na-3":         LR105NA3,
	"lr105-na-5":         LR105NA5,
	"lr105-na-6":         LR105NA6,
	"lr105-na-7-1":       LR105NA71,
	"lr101-na-3":         LR101NA3,
	"lr101-na-11":        LR101NA11,
	"lr89-na-3":          LR89NA3,
	"lr89-na-5":          LR89NA5,
	"lr89-na-6":          LR89NA6,
	"lr89-na-7-1":        LR89NA71,
	"lr79-na-9":          LR79NA9,
	"lr79-na-11":         LR79NA11,
	"aj10-42":            AJ1042,
	"aj10-142":           AJ10142,
	"aj10-104":           AJ10104,
	"baby-sergeant":      BabySergeant,
	"hydrazine-thruster": HydrazineThruster,
	"cavea-thruster":     CaveaThruster,
	"thruster-1":         Thruster1,
	"thruster-2":         Thruster2,
	"altair":             Altair,
	"castor-1":           Castor1,
	"h1":                 H1,
	"h1b":                H1B,
	"rl10a-1":            RL10A1,
	"rl10a-3-1":          RL10A31,
	"rl10a-3-3":          RL10A33,
	"j2-200klbf":         J2,
}

// NormalizeKey lowercases a catalog key and replaces spaces and underscores with dashes.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(key)
}

// LookupFuel returns the built-in fuel with the given catalog key.
func LookupFuel(key string) (Fuel, error) {
	f, ok := fuelCatalog[NormalizeKey(key)]
	if !ok {
		return Fuel{}, fmt.Errorf("unknown fuel %q", key)
	}
	return f, nil
}

// LookupEngine returns a copy of the built-in engine with the given catalog key.
func LookupEngine(key string) (Engine, error) {
	e, ok := engineCatalog[NormalizeKey(key)]
	if !ok {
		return Engine{}, fmt.Errorf("unknown engine %q", key)
	}
	return e.WithBurnTime(e.BurnTime), nil
}

// FuelKeys returns the sorted catalog keys of all built-in fuels.
func FuelKeys() []string {
	return sortedKeys(fuelCatalog)
}

// EngineKeys returns the sorted catalog keys of all built-in engines.
func EngineKeys() []string {
	return sortedKeys(engineCatalog)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
