package menudraft

import (
	"context"
	"fmt"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// GetDailyDraft returns the draft for the key. A missing draft is returned
// empty and is not stored.
func (s *Service) GetDailyDraft(ctx context.Context, ref DraftRef) (*domain.DailyMenuDraft, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, ref.key())
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListFoods returns the whole food catalog. Items are not validated here.
func (s *Service) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	foods, err := s.foods.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// CalculateCompliance compares the draft totals with the child's active
// targets. domain.ErrMacroTargetsNotConfigured is returned as is.
func (s *Service) CalculateCompliance(ctx context.Context, ref DraftRef) (*domain.DraftComplianceResult, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	draft, err := s.loadDraft(ctx, ref.key())
	if err != nil {
		return nil, err
	}

	result, err := s.assess(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AuthorizeShare allows sharing only a compliant draft. It never writes.
func (s *Service) AuthorizeShare(ctx context.Context, ref DraftRef) (*domain.DraftComplianceResult, error) {
	result, err := s.CalculateCompliance(ctx, ref)
	if err != nil {
		return nil, err
	}

	if !result.IsCompliant() {
		return nil, &domain.ComplianceError{
			Kind:       domain.ErrMenuNotCompliantForSharing,
			Compliance: *result,
		}
	}
	return result, nil
}

func (s *Service) assess(ctx context.Context, draft domain.DailyMenuDraft) (domain.DraftComplianceResult, error) {
	targets, err := s.targets.GetActiveByChildID(ctx, draft.ChildID)
	if err != nil {
		return domain.DraftComplianceResult{}, err
	}
	return domain.Assess(domain.CalculateTotals(draft), targets), nil
}
