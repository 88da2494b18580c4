package aci

// LoadCombination represents an ACI 318-19 strength load combination
// Based on ACI 318-19 Table 5.3.1
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Snow       float64 // S - Snow load
	Rain       float64 // R - Rain load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
}

// LoadCombinations lists the basic combinations of ACI 318-19 Table 5.3.1.
// Where a combination reads "(Lr or S or R)" each alternative is listed
// as its own entry so that the governing one can be picked.
var LoadCombinations = []LoadCombination{
	{ID: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "5.3.1b-Lr", Description: "1.2D + 1.6L + 0.5Lr", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "5.3.1b-S", Description: "1.2D + 1.6L + 0.5S", Dead: 1.2, Live: 1.6, Snow: 0.5},
	{ID: "5.3.1b-R", Description: "1.2D + 1.6L + 0.5R", Dead: 1.2, Live: 1.6, Rain: 0.5},
	{ID: "5.3.1c-Lr", Description: "1.2D + 1.6Lr + 1.0L", Dead: 1.2, Roof: 1.6, Live: 1.0},
	{ID: "5.3.1c-S", Description: "1.2D + 1.6S + 1.0L", Dead: 1.2, Snow: 1.6, Live: 1.0},
	{ID: "5.3.1c-R", Description: "1.2D + 1.6R + 1.0L", Dead: 1.2, Rain: 1.6, Live: 1.0},
	{ID: "5.3.1c-W", Description: "1.2D + 1.6(Lr or S or R) + 0.5W", Dead: 1.2, Roof: 1.6, Snow: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or S or R)", Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5, Snow: 0.5, Rain: 0.5},
	{ID: "5.3.1e", Description: "1.2D + 1.0E + 1.0L + 0.2S", Dead: 1.2, Earthquake: 1.0, Live: 1.0, Snow: 0.2},
	{ID: "5.3.1f", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "5.3.1g", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// GravityCombinations for common beam design scenarios
var GravityCombinations = []LoadCombination{
	{ID: "5.3.1a", Description: "1.4D", Dead: 1.4},
	{ID: "5.3.1b", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// LoadEffects holds unfactored effects (moment, shear or torque) from the
// different load types, all in the same unit
type LoadEffects struct {
	Dead       float64
	Live       float64
	Roof       float64
	Snow       float64
	Rain       float64
	Wind       float64
	Earthquake float64
}

// IsZero reports whether no effect has been supplied
func (e LoadEffects) IsZero() bool {
	return e == LoadEffects{}
}

// Factor calculates the factored effect for the load combination.
// The combined "(Lr or S or R)" entries take the largest contribution of
// the alternatives rather than their sum.
func (lc LoadCombination) Factor(effects LoadEffects) float64 {
	alt := max(lc.Roof*effects.Roof, lc.Snow*effects.Snow, lc.Rain*effects.Rain)
	return lc.Dead*effects.Dead +
		lc.Live*effects.Live +
		alt +
		lc.Wind*effects.Wind +
		lc.Earthquake*effects.Earthquake
}

// Governing finds the combination giving the largest factored effect
func Governing(effects LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for i, combo := range combinations {
		u := combo.Factor(effects)
		if i == 0 || u > maxEffect {
			maxEffect = u
			governing = combo
		}
	}

	return maxEffect, governing
}
