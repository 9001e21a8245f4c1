package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// FoodNutritionPer100g holds the nutrition facts of a food for 100 grams.
type FoodNutritionPer100g struct {
	CaloriesKcal float64
	ProteinGrams float64
	CarbsGrams   float64
	FatsGrams    float64
}

// NutritionTotals holds derived nutrition values for a quantity of food
// or for a whole menu. Every field is rounded to 2 decimals.
type NutritionTotals struct {
	CaloriesKcal float64
	ProteinGrams float64
	CarbsGrams   float64
	FatsGrams    float64
}

// ScaleNutrition computes per-100g values × quantity/100, rounding each field.
func ScaleNutrition(per100g FoodNutritionPer100g, quantityGrams float64) NutritionTotals {
	ratio := quantityGrams / 100
	return NutritionTotals{
		CaloriesKcal: Round2(per100g.CaloriesKcal * ratio),
		ProteinGrams: Round2(per100g.ProteinGrams * ratio),
		CarbsGrams:   Round2(per100g.CarbsGrams * ratio),
		FatsGrams:    Round2(per100g.FatsGrams * ratio),
	}
}

// Add sums two totals fieldwise and rounds the result.
func (t NutritionTotals) Add(o NutritionTotals) NutritionTotals {
	return NutritionTotals{
		CaloriesKcal: Round2(t.CaloriesKcal + o.CaloriesKcal),
		ProteinGrams: Round2(t.ProteinGrams + o.ProteinGrams),
		CarbsGrams:   Round2(t.CarbsGrams + o.CarbsGrams),
		FatsGrams:    Round2(t.FatsGrams + o.FatsGrams),
	}
}

// IsFinite reports whether every field is a finite number.
func (t NutritionTotals) IsFinite() bool {
	for _, v := range [...]float64{t.CaloriesKcal, t.ProteinGrams, t.CarbsGrams, t.FatsGrams} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Round2 rounds v to 2 decimal places, half away from zero.
// The decimal round-trip avoids binary artifacts such as 1.005*100 = 100.4999.
// NaN and infinities are returned unchanged.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
