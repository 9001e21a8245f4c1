package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueID returns prefix followed by a unique suffix.
func UniqueID(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedFood inserts a catalog item with a unique id and the given
// per-100g values. Returns the stored domain.FoodItem.
func SeedFood(t *testing.T, pool *pgxpool.Pool, name string, n domain.FoodNutritionPer100g) domain.FoodItem {
	t.Helper()

	food := domain.FoodItem{
		ID:               UniqueID("food"),
		Name:             name,
		NutritionPer100g: n,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO food_items (id, name, calories_kcal, protein_grams, carbs_grams, fats_grams)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		food.ID, food.Name, n.CaloriesKcal, n.ProteinGrams, n.CarbsGrams, n.FatsGrams,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFood insert: %v", err)
	}

	return food
}

// SeedSalmon inserts a salmon item (208 kcal, 20P, 0C, 13F per 100g).
func SeedSalmon(t *testing.T, pool *pgxpool.Pool) domain.FoodItem {
	t.Helper()
	return SeedFood(t, pool, "Salmon", domain.FoodNutritionPer100g{
		CaloriesKcal: 208, ProteinGrams: 20, CarbsGrams: 0, FatsGrams: 13,
	})
}

// NewDraftKey returns a key with fresh parent and child ids.
func NewDraftKey(day domain.Day) domain.DraftKey {
	return domain.DraftKey{ParentID: uuid.New(), ChildID: uuid.New(), Day: day}
}
