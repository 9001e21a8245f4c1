package menudraft

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

// DraftRef addresses one daily draft.
type DraftRef struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	Day      domain.Day
}

// Validate checks all fields and collects all errors.
func (r DraftRef) Validate() error {
	return toError(r.fieldErrors())
}

func (r DraftRef) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	if r.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parentId", Message: "required"})
	}
	if r.ChildID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "childId", Message: "required"})
	}
	if !r.Day.IsValid() {
		errs = append(errs, domain.FieldError{Field: "day", Message: "must be a YYYY-MM-DD date"})
	}
	return errs
}

func (r DraftRef) key() domain.DraftKey {
	return domain.DraftKey{ParentID: r.ParentID, ChildID: r.ChildID, Day: r.Day}
}

// AddFoodInput holds the parameters for adding a food to a draft.
// QuantityGrams is checked by the aggregate.
type AddFoodInput struct {
	DraftRef
	FoodID        string
	QuantityGrams float64
}

// Validate checks all fields and collects all errors.
func (i AddFoodInput) Validate() error {
	errs := i.fieldErrors()
	if strings.TrimSpace(i.FoodID) == "" {
		errs = append(errs, domain.FieldError{Field: "foodId", Message: "required"})
	}
	return toError(errs)
}

// UpdateLineQuantityInput holds the parameters for changing a line's quantity.
type UpdateLineQuantityInput struct {
	DraftRef
	LineID        uuid.UUID
	QuantityGrams float64
}

// Validate checks all fields and collects all errors.
func (i UpdateLineQuantityInput) Validate() error {
	errs := i.fieldErrors()
	if i.LineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lineId", Message: "required"})
	}
	return toError(errs)
}

// RemoveLineInput holds the parameters for removing a line.
type RemoveLineInput struct {
	DraftRef
	LineID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveLineInput) Validate() error {
	errs := i.fieldErrors()
	if i.LineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lineId", Message: "required"})
	}
	return toError(errs)
}

// MoveLineInput holds the parameters for reordering a line.
type MoveLineInput struct {
	DraftRef
	LineID    uuid.UUID
	Direction domain.MoveDirection
}

// Validate checks all fields and collects all errors.
func (i MoveLineInput) Validate() error {
	errs := i.fieldErrors()
	if i.LineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lineId", Message: "required"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be up or down"})
	}
	return toError(errs)
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
