package macrotarget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

type targetRepo interface {
	// LockChild serializes target changes for the child until the
	// surrounding transaction ends.
	LockChild(ctx context.Context, childID uuid.UUID) error
	// GetActive returns an error wrapping domain.ErrNotFound when the child
	// has no targets.
	GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error)
	Upsert(ctx context.Context, targets domain.MacroTargets) error
	AppendHistory(ctx context.Context, entry domain.MacroTargetsHistoryEntry) error
	// ListHistory returns entries newest first.
	ListHistory(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages per-child macro targets and their change history.
type Service struct {
	targets targetRepo
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new macro target service.
func NewService(log *slog.Logger, targets targetRepo, tx txManager) *Service {
	return &Service{
		targets: targets,
		tx:      tx,
		log:     log.With("service", "macrotarget"),
	}
}

// SetTargetsInput holds the parameters for configuring a child's targets.
type SetTargetsInput struct {
	ChildID  uuid.UUID
	ParentID uuid.UUID
	Values   domain.MacroTargetsValues
}

// Validate checks all fields and collects all errors. Target values are
// checked separately so that their failure keeps its own kind.
func (i SetTargetsInput) Validate() error {
	var errs []domain.FieldError
	if i.ChildID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "childId", Message: "required"})
	}
	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parentId", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return i.Values.Validate()
}

// SetTargets stores new active targets and records the change in one
// transaction.
func (s *Service) SetTargets(ctx context.Context, input SetTargetsInput) (*domain.MacroTargets, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var targets domain.MacroTargets
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.targets.LockChild(txCtx, input.ChildID); err != nil {
			return fmt.Errorf("lock child targets: %w", err)
		}

		// Stamped under the lock so history order follows change order.
		now := time.Now().UTC()
		targets = domain.MacroTargets{
			ChildID:           input.ChildID,
			Values:            input.Values,
			UpdatedByParentID: input.ParentID,
			UpdatedAt:         now,
		}

		var previous *domain.MacroTargetsValues
		current, err := s.targets.GetActive(txCtx, input.ChildID)
		switch {
		case err == nil:
			previous = &current.Values
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get active targets: %w", err)
		}

		if err := s.targets.Upsert(txCtx, targets); err != nil {
			return fmt.Errorf("upsert targets: %w", err)
		}

		entry := domain.MacroTargetsHistoryEntry{
			ID:                uuid.New(),
			ChildID:           input.ChildID,
			ChangedAt:         now,
			ChangedByParentID: input.ParentID,
			PreviousTargets:   previous,
			NewTargets:        input.Values,
		}
		if err := s.targets.AppendHistory(txCtx, entry); err != nil {
			return fmt.Errorf("append targets history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "macro targets set",
		slog.String("child_id", input.ChildID.String()),
		slog.String("parent_id", input.ParentID.String()),
		slog.Float64("protein_g", input.Values.ProteinTargetGrams),
		slog.Float64("carbs_g", input.Values.CarbsTargetGrams),
		slog.Float64("fats_g", input.Values.FatsTargetGrams),
	)

	return &targets, nil
}

// GetActive returns the child's active targets. It fails with
// domain.ErrMacroTargetsNotConfigured when none were set.
func (s *Service) GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error) {
	if childID == uuid.Nil {
		return nil, domain.NewValidationError("childId", "required")
	}

	targets, err := s.targets.GetActive(ctx, childID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewRuleError(domain.ErrMacroTargetsNotConfigured,
				"set the child's macro targets before checking compliance")
		}
		return nil, fmt.Errorf("get active targets: %w", err)
	}
	return targets, nil
}

// GetActiveByChildID returns only the target values.
func (s *Service) GetActiveByChildID(ctx context.Context, childID uuid.UUID) (domain.MacroTargetsValues, error) {
	targets, err := s.GetActive(ctx, childID)
	if err != nil {
		return domain.MacroTargetsValues{}, err
	}
	return targets.Values, nil
}

// History lists the child's target changes, newest first.
func (s *Service) History(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error) {
	if childID == uuid.Nil {
		return nil, domain.NewValidationError("childId", "required")
	}

	entries, err := s.targets.ListHistory(ctx, childID)
	if err != nil {
		return nil, fmt.Errorf("list targets history: %w", err)
	}
	return entries, nil
}
