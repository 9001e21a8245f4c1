package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxCalorieGapRatio is the largest accepted relative gap between reported
// calories and 4·protein + 4·carbs + 9·fat.
const MaxCalorieGapRatio = 0.35

// FoodItem is a catalog entry. Drafts never mutate it; they snapshot its
// nutrition values when a line is added.
type FoodItem struct {
	ID               string
	Name             string
	NutritionPer100g FoodNutritionPer100g
}

// AssertUsable checks that a food may enter a draft: identity present,
// every nutrition field finite and non-negative, and calories coherent
// with the macros. It returns the food unchanged on success.
func AssertUsable(food FoodItem) (FoodItem, error) {
	if strings.TrimSpace(food.ID) == "" {
		return FoodItem{}, NewFieldRuleError(ErrIncompleteFoodNutrition, "id", "food id is required")
	}
	if strings.TrimSpace(food.Name) == "" {
		return FoodItem{}, NewFieldRuleError(ErrIncompleteFoodNutrition, "name", "food name is required")
	}
	if err := assertNutritionComplete(food); err != nil {
		return FoodItem{}, err
	}
	if err := assertNutritionCoherent(food); err != nil {
		return FoodItem{}, err
	}
	return food, nil
}

func assertNutritionComplete(food FoodItem) error {
	n := food.NutritionPer100g
	fields := []struct {
		name  string
		value float64
	}{
		{"caloriesKcal", n.CaloriesKcal},
		{"proteinGrams", n.ProteinGrams},
		{"carbsGrams", n.CarbsGrams},
		{"fatsGrams", n.FatsGrams},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return NewFieldRuleError(ErrIncompleteFoodNutrition, f.name,
				fmt.Sprintf("missing value for %q, fill in every per-100g value", food.Name))
		}
		if f.value < 0 {
			return NewFieldRuleError(ErrIncompleteFoodNutrition, f.name,
				fmt.Sprintf("negative value for %q, use a value >= 0", food.Name))
		}
	}
	return nil
}

func assertNutritionCoherent(food FoodItem) error {
	n := food.NutritionPer100g
	derived := MacroDerivedCalories(n)

	if derived == 0 && n.CaloriesKcal == 0 {
		return NewRuleError(ErrIncoherentFoodNutrition,
			fmt.Sprintf("%q has no usable nutrition values", food.Name))
	}

	if derived > 0 {
		gap := math.Abs(n.CaloriesKcal-derived) / derived
		if gap > MaxCalorieGapRatio {
			return NewRuleError(ErrIncoherentFoodNutrition,
				fmt.Sprintf("%q reports %v kcal but macros give %v kcal (kcal should be close to 4P + 4C + 9L)",
					food.Name, n.CaloriesKcal, derived))
		}
	}
	return nil
}

// MacroDerivedCalories returns 4·protein + 4·carbs + 9·fat.
func MacroDerivedCalories(n FoodNutritionPer100g) float64 {
	return n.ProteinGrams*4 + n.CarbsGrams*4 + n.FatsGrams*9
}
