package menudraft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

type foodCatalog interface {
	ListFoods(ctx context.Context) ([]domain.FoodItem, error)
	// FindFoodByID returns an error wrapping domain.ErrNotFound when absent.
	FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error)
}

type macroTargets interface {
	// GetActiveByChildID fails with domain.ErrMacroTargetsNotConfigured
	// when the child has no targets yet.
	GetActiveByChildID(ctx context.Context, childID uuid.UUID) (domain.MacroTargetsValues, error)
}

type draftStore interface {
	// FindByKey returns an error wrapping domain.ErrNotFound when absent.
	FindByKey(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error)
	// Save persists the draft, failing with domain.ErrDraftVersionConflict
	// when the stored version is not draft.Version-1.
	Save(ctx context.Context, draft domain.DailyMenuDraft) error
}

// Service orchestrates daily menu drafts: it loads or creates a draft,
// delegates to the aggregate and persists the new snapshot.
type Service struct {
	foods   foodCatalog
	targets macroTargets
	drafts  draftStore
	log     *slog.Logger
}

// NewService creates a new menu draft service.
func NewService(
	log *slog.Logger,
	foods foodCatalog,
	targets macroTargets,
	drafts draftStore,
) *Service {
	return &Service{
		foods:   foods,
		targets: targets,
		drafts:  drafts,
		log:     log.With("service", "menudraft"),
	}
}

// loadDraft returns the stored draft for key, or a fresh unpersisted one.
func (s *Service) loadDraft(ctx context.Context, key domain.DraftKey) (domain.DailyMenuDraft, error) {
	existing, err := s.drafts.FindByKey(ctx, key)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.DailyMenuDraft{}, fmt.Errorf("find draft: %w", err)
	}
	return domain.GetOrCreateDraft(existing, key, time.Now().UTC()), nil
}

// persist saves next when it differs from current. No-op transitions keep
// the version and are never written.
func (s *Service) persist(ctx context.Context, current, next domain.DailyMenuDraft) error {
	if next.Version == current.Version {
		return nil
	}
	if err := s.drafts.Save(ctx, next); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// mutate runs one load → change → persist cycle.
func (s *Service) mutate(
	ctx context.Context,
	key domain.DraftKey,
	change func(draft domain.DailyMenuDraft, now time.Time) (domain.DailyMenuDraft, error),
) (*domain.DailyMenuDraft, error) {
	current, err := s.loadDraft(ctx, key)
	if err != nil {
		return nil, err
	}

	next, err := change(current, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx, current, next); err != nil {
		return nil, err
	}
	return &next, nil
}

func draftAttrs(d *domain.DailyMenuDraft) []any {
	return []any{
		slog.String("parent_id", d.ParentID.String()),
		slog.String("child_id", d.ChildID.String()),
		slog.String("day", d.Day.String()),
		slog.String("draft_id", d.ID.String()),
		slog.Int("version", d.Version),
	}
}
