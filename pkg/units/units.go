package units

import (
	"errors"
	"math"
	"strings"
)

// Family groups mutually convertible units. Spoon measures are kept apart
// from volume so display rounding can treat them differently.
type Family string

const (
	FamilyWeight  Family = "weight"
	FamilyVolume  Family = "volume"
	FamilySpoon   Family = "spoon"
	FamilyCount   Family = "count"
	FamilyUnknown Family = ""
)

var ErrIncompatibleUnits = errors.New("units are not convertible")

type unitDef struct {
	family Family
	toBase float64 // grams for weight, millilitres for volume and spoon, 1 for count
}

var unitTable = map[string]unitDef{
	// weight (base = g)
	"g":  {family: FamilyWeight, toBase: 1},
	"kg": {family: FamilyWeight, toBase: 1000},

	// volume (base = ml)
	"ml":  {family: FamilyVolume, toBase: 1},
	"l":   {family: FamilyVolume, toBase: 1000},
	"cup": {family: FamilyVolume, toBase: 236.588},

	// spoon (base = ml equivalent, convertible only within the family)
	"tsp":  {family: FamilySpoon, toBase: 4.929},
	"tbsp": {family: FamilySpoon, toBase: 14.787},

	// count (each canonical count unit only converts to itself)
	"piece": {family: FamilyCount, toBase: 1},
	"clove": {family: FamilyCount, toBase: 1},
	"slice": {family: FamilyCount, toBase: 1},
	"can":   {family: FamilyCount, toBase: 1},
	"pack":  {family: FamilyCount, toBase: 1},
	"pinch": {family: FamilyCount, toBase: 1},
	"bunch": {family: FamilyCount, toBase: 1},
	"head":  {family: FamilyCount, toBase: 1},
}

var aliasTable = map[string]string{
	"gram":        "g",
	"grams":       "g",
	"gr":          "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"kgs":         "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"cups":        "cup",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tsps":        "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tbsps":       "tbsp",
	"tbs":         "tbsp",
	"pieces":      "piece",
	"pcs":         "piece",
	"pc":          "piece",
	"cloves":      "clove",
	"slices":      "slice",
	"cans":        "can",
	"tin":         "can",
	"tins":        "can",
	"packs":       "pack",
	"packet":      "pack",
	"packets":     "pack",
	"pinches":     "pinch",
	"bunches":     "bunch",
	"heads":       "head",
}

// Normalize lower-cases and trims the input and resolves known aliases to the
// canonical unit name. Unknown units are returned trimmed and lower-cased so
// callers can still do best-effort equality checks; it never fails.
func Normalize(input string) string {
	u := strings.ToLower(strings.TrimSpace(input))
	if _, ok := unitTable[u]; ok {
		return u
	}
	if canonical, ok := aliasTable[u]; ok {
		return canonical
	}
	return u
}

// UnitFamily reports the dimension family of a (possibly aliased) unit.
func UnitFamily(unit string) Family {
	if def, ok := unitTable[Normalize(unit)]; ok {
		return def.family
	}
	return FamilyUnknown
}

// Compatible reports whether quantities in the two units can be compared.
// Weight converts to weight and volume to volume; count units only ever
// match themselves (a clove is not a slice).
func Compatible(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	fa, fb := UnitFamily(na), UnitFamily(nb)
	if fa == FamilyUnknown || fb == FamilyUnknown {
		return na == nb && na != ""
	}
	if fa != fb {
		return false
	}
	if fa == FamilyCount {
		return na == nb
	}
	return true
}

// Convert re-expresses quantity from one unit in another within the same
// dimension family. Cross-family conversion fails with ErrIncompatibleUnits;
// callers must treat that as "cannot auto-convert", not suppress it.
func Convert(quantity float64, fromUnit, toUnit string) (float64, error) {
	nf, nt := Normalize(fromUnit), Normalize(toUnit)
	if nf == nt {
		return quantity, nil
	}
	if !Compatible(nf, nt) {
		return 0, ErrIncompatibleUnits
	}
	from := unitTable[nf]
	to := unitTable[nt]
	return quantity * from.toBase / to.toBase, nil
}

// RoundForDisplay applies unit-aware cosmetic rounding. Count units come out
// whole, spoon and cup measures to the nearest quarter, grams to the nearest
// gram below 50g and nearest 10g above, millilitres to the nearest 5,
// litres to the nearest 0.1, everything else to two decimals.
//
// Display rounding must never feed arithmetic that depends on precision;
// round only at the presentation edge.
func RoundForDisplay(quantity float64, unit string) float64 {
	switch n := Normalize(unit); {
	case UnitFamily(n) == FamilyCount:
		return math.Round(quantity)
	case UnitFamily(n) == FamilySpoon || n == "cup":
		return math.Round(quantity*4) / 4
	case n == "g":
		if math.Abs(quantity) < 50 {
			return math.Round(quantity)
		}
		return math.Round(quantity/10) * 10
	case n == "ml":
		return math.Round(quantity/5) * 5
	case n == "l":
		return math.Round(quantity*10) / 10
	default:
		return math.Round(quantity*100) / 100
	}
}

// Round2 rounds to two decimals. Residuals and shortfalls are reported at
// this precision.
func Round2(quantity float64) float64 {
	return math.Round(quantity*100) / 100
}
