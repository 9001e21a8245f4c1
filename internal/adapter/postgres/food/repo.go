// Package food implements the food catalog on PostgreSQL.
package food

import (
	"context"
	"fmt"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{"id", "name", "calories_kcal", "protein_grams", "carbs_grams", "fats_grams"}

// row mirrors food_items. NULL nutrition values mean "not filled in".
type row struct {
	ID           string   `db:"id"`
	Name         string   `db:"name"`
	CaloriesKcal *float64 `db:"calories_kcal"`
	ProteinGrams *float64 `db:"protein_grams"`
	CarbsGrams   *float64 `db:"carbs_grams"`
	FatsGrams    *float64 `db:"fats_grams"`
}

func (r row) toDomain() domain.FoodItem {
	return domain.FoodItem{
		ID:   r.ID,
		Name: r.Name,
		NutritionPer100g: domain.FoodNutritionPer100g{
			CaloriesKcal: valueOrNaN(r.CaloriesKcal),
			ProteinGrams: valueOrNaN(r.ProteinGrams),
			CarbsGrams:   valueOrNaN(r.CarbsGrams),
			FatsGrams:    valueOrNaN(r.FatsGrams),
		},
	}
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// Repo provides food catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new food repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListFoods returns the whole catalog ordered by name. Items are returned
// as stored; incomplete ones keep NaN in the missing fields.
func (r *Repo) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	query, args, err := psql.Select(columns...).
		From("food_items").
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list foods query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	foods := make([]domain.FoodItem, len(rows))
	for i, fr := range rows {
		foods[i] = fr.toDomain()
	}
	return foods, nil
}

// FindFoodByID returns domain.ErrNotFound if the id is unknown.
func (r *Repo) FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	query, args, err := psql.Select(columns...).
		From("food_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find food query: %w", err)
	}

	var fr row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &fr, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "food", id)
	}

	food := fr.toDomain()
	return &food, nil
}

// Upsert inserts the food or overwrites the stored one with the same id.
// NaN values are stored as NULL.
func (r *Repo) Upsert(ctx context.Context, food domain.FoodItem) error {
	n := food.NutritionPer100g
	query, args, err := psql.Insert("food_items").
		Columns(columns...).
		Values(food.ID, food.Name,
			nullable(n.CaloriesKcal), nullable(n.ProteinGrams), nullable(n.CarbsGrams), nullable(n.FatsGrams)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			calories_kcal = EXCLUDED.calories_kcal,
			protein_grams = EXCLUDED.protein_grams,
			carbs_grams = EXCLUDED.carbs_grams,
			fats_grams = EXCLUDED.fats_grams,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert food query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "food", food.ID)
	}
	return nil
}
