package menudraft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// AddFood looks the food up, checks its nutrition data and appends it to
// the draft.
func (s *Service) AddFood(ctx context.Context, input AddFoodInput) (*domain.DailyMenuDraft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	food, err := s.foods.FindFoodByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewFieldRuleError(domain.ErrFoodItemNotFound, "foodId",
				fmt.Sprintf("no food %q in the catalog", input.FoodID))
		}
		return nil, fmt.Errorf("find food: %w", err)
	}

	usable, err := domain.AssertUsable(*food)
	if err != nil {
		return nil, err
	}

	draft, err := s.mutate(ctx, input.key(), func(d domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error) {
		return d.AddLine(usable, input.QuantityGrams, now)
	})
	if err != nil {
		return nil, err
	}

	line := draft.Lines[len(draft.Lines)-1]
	s.log.InfoContext(ctx, "draft line added", append(draftAttrs(draft),
		slog.String("line_id", line.ID.String()),
		slog.String("food_id", line.FoodID),
		slog.Float64("quantity_grams", line.QuantityGrams),
	)...)

	return draft, nil
}
