package product

import (
	"strings"
)

var massVolumeUnits = map[string]bool{
	"kg":         true,
	"g":          true,
	"gram":       true,
	"grams":      true,
	"kilogram":   true,
	"kilograms":  true,
	"l":          true,
	"lt":         true,
	"liter":      true,
	"liters":     true,
	"litre":      true,
	"litres":     true,
	"ml":         true,
	"milliliter": true,
	"millilitre": true,
}

// UnitCostFromEstimate derives a per-unit cost from an estimated purchasing
// cost. Mass and volume units are priced per base unit (gram/milliliter), so
// the estimate is divided by 1000; count units keep the estimate as-is.
// TODO: confirm with product whether synthesized recipe quantities arrive in
// base units or in kg/l before touching this conversion; every caller must go
// through this function so the convention can change in one place.
func UnitCostFromEstimate(estimatedCost float64, unit string) float64 {
	if IsMassOrVolumeUnit(unit) {
		return estimatedCost / 1000
	}
	return estimatedCost
}

// IsMassOrVolumeUnit reports whether the unit is mass- or volume-based.
func IsMassOrVolumeUnit(unit string) bool {
	return massVolumeUnits[strings.ToLower(strings.TrimSpace(unit))]
}
