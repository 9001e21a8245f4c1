package menudraft

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// LockDraft freezes a compliant draft. The compliance check and the lock
// run on the same loaded snapshot; a concurrent edit in between surfaces
// as domain.ErrDraftVersionConflict on save.
func (s *Service) LockDraft(ctx context.Context, ref DraftRef) (*domain.DailyMenuDraft, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.mutate(ctx, ref.key(), func(d domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error) {
		result, err := s.assess(ctx, d)
		if err != nil {
			return d, err
		}
		if !result.IsCompliant() {
			return d, &domain.ComplianceError{
				Kind:       domain.ErrMenuNotCompliantForLock,
				Compliance: result,
			}
		}
		return d.Lock(now), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft locked", append(draftAttrs(draft),
		slog.String("status", draft.Status.String()),
	)...)

	return draft, nil
}
