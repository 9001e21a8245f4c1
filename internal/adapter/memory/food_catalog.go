// Package memory provides in-process implementations of the storage
// capabilities. Every store is an explicit instance; nothing is shared
// through package state.
package memory

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// ReferenceFoods returns the built-in catalog. The last two items are
// deliberately broken and must be rejected when added to a draft.
func ReferenceFoods() []domain.FoodItem {
	return []domain.FoodItem{
		{
			ID:   "food-egg",
			Name: "Egg",
			NutritionPer100g: domain.FoodNutritionPer100g{
				CaloriesKcal: 155, ProteinGrams: 13, CarbsGrams: 1.1, FatsGrams: 11,
			},
		},
		{
			ID:   "food-avocado",
			Name: "Avocado",
			NutritionPer100g: domain.FoodNutritionPer100g{
				CaloriesKcal: 160, ProteinGrams: 2, CarbsGrams: 8.5, FatsGrams: 14.7,
			},
		},
		{
			ID:   "food-salmon",
			Name: "Salmon",
			NutritionPer100g: domain.FoodNutritionPer100g{
				CaloriesKcal: 208, ProteinGrams: 20, CarbsGrams: 0, FatsGrams: 13,
			},
		},
		{
			ID:   "food-invalid-missing",
			Name: "Test yoghurt (incomplete data)",
			NutritionPer100g: domain.FoodNutritionPer100g{
				CaloriesKcal: math.NaN(), ProteinGrams: 5, CarbsGrams: 4, FatsGrams: 3,
			},
		},
		{
			ID:   "food-invalid-incoherent",
			Name: "Test bar (incoherent data)",
			NutritionPer100g: domain.FoodNutritionPer100g{
				CaloriesKcal: 15, ProteinGrams: 20, CarbsGrams: 20, FatsGrams: 10,
			},
		},
	}
}

// FoodCatalog is a read-mostly catalog kept in insertion order.
type FoodCatalog struct {
	mu    sync.RWMutex
	foods []domain.FoodItem
}

// NewFoodCatalog creates a catalog holding foods.
func NewFoodCatalog(foods ...domain.FoodItem) *FoodCatalog {
	return &FoodCatalog{foods: slices.Clone(foods)}
}

// ListFoods returns a copy of the catalog.
func (c *FoodCatalog) ListFoods(_ context.Context) ([]domain.FoodItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.foods), nil
}

// FindFoodByID returns the food or an error wrapping domain.ErrNotFound.
func (c *FoodCatalog) FindFoodByID(_ context.Context, id string) (*domain.FoodItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, f := range c.foods {
		if f.ID == id {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
}

// Upsert inserts food or replaces the item with the same ID.
func (c *FoodCatalog) Upsert(_ context.Context, food domain.FoodItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.foods, func(f domain.FoodItem) bool { return f.ID == food.ID })
	if idx >= 0 {
		c.foods[idx] = food
		return nil
	}
	c.foods = append(c.foods, food)
	return nil
}
