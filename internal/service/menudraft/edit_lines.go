package menudraft

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// UpdateLineQuantity changes the quantity of one line.
func (s *Service) UpdateLineQuantity(ctx context.Context, input UpdateLineQuantityInput) (*domain.DailyMenuDraft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.mutate(ctx, input.key(), func(d domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error) {
		return d.UpdateLineQuantity(input.LineID, input.QuantityGrams, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft line quantity updated", append(draftAttrs(draft),
		slog.String("line_id", input.LineID.String()),
		slog.Float64("quantity_grams", input.QuantityGrams),
	)...)

	return draft, nil
}

// RemoveLine deletes one line from the draft.
func (s *Service) RemoveLine(ctx context.Context, input RemoveLineInput) (*domain.DailyMenuDraft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.mutate(ctx, input.key(), func(d domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error) {
		return d.RemoveLine(input.LineID, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft line removed", append(draftAttrs(draft),
		slog.String("line_id", input.LineID.String()),
	)...)

	return draft, nil
}

// MoveLine swaps a line with its neighbour. At the list boundary the draft
// is returned unchanged and nothing is stored.
func (s *Service) MoveLine(ctx context.Context, input MoveLineInput) (*domain.DailyMenuDraft, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.mutate(ctx, input.key(), func(d domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error) {
		return d.MoveLine(input.LineID, input.Direction, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft line moved", append(draftAttrs(draft),
		slog.String("line_id", input.LineID.String()),
		slog.String("direction", input.Direction.String()),
	)...)

	return draft, nil
}
