package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Menu draft failure kinds. Each kind wraps one of the category sentinels
// above, so errors.Is works against both the kind and its category.
var (
	ErrInvalidQuantity         = fmt.Errorf("invalid quantity: %w", ErrValidation)
	ErrIncompleteFoodNutrition = fmt.Errorf("incomplete food nutrition data: %w", ErrValidation)
	ErrIncoherentFoodNutrition = fmt.Errorf("incoherent food nutrition data: %w", ErrValidation)
	ErrInvalidMacroTarget      = fmt.Errorf("invalid macro target value: %w", ErrValidation)

	ErrFoodItemNotFound          = fmt.Errorf("food item: %w", ErrNotFound)
	ErrDraftLineNotFound         = fmt.Errorf("draft line: %w", ErrNotFound)
	ErrMacroTargetsNotConfigured = fmt.Errorf("macro targets not configured: %w", ErrNotFound)

	ErrDraftLocked                = fmt.Errorf("draft menu locked: %w", ErrConflict)
	ErrMenuNotCompliantForLock    = fmt.Errorf("menu not compliant for lock: %w", ErrConflict)
	ErrMenuNotCompliantForSharing = fmt.Errorf("menu not compliant for sharing: %w", ErrConflict)
	ErrDraftVersionConflict       = fmt.Errorf("draft version mismatch: %w", ErrConflict)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// RuleError reports a business-rule failure of a specific kind.
// Field is optional and names the offending input when there is one.
type RuleError struct {
	Kind    error
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", kindText(e.Kind), e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", kindText(e.Kind), e.Message)
}

func (e *RuleError) Unwrap() error { return e.Kind }

// NewRuleError creates a RuleError without a field.
func NewRuleError(kind error, message string) *RuleError {
	return &RuleError{Kind: kind, Message: message}
}

// NewFieldRuleError creates a RuleError naming the offending field.
func NewFieldRuleError(kind error, field, message string) *RuleError {
	return &RuleError{Kind: kind, Field: field, Message: message}
}

// ComplianceError is returned by the lock and share gates when the draft
// is outside tolerance. It carries the full compliance result.
type ComplianceError struct {
	Kind       error
	Compliance DraftComplianceResult
}

func (e *ComplianceError) Error() string {
	d := e.Compliance.Deltas
	return fmt.Sprintf("%s: fix deltas (P %sg, C %sg, L %sg)",
		kindText(e.Kind),
		FormatDelta(d.ProteinGrams),
		FormatDelta(d.CarbsGrams),
		FormatDelta(d.FatsGrams),
	)
}

func (e *ComplianceError) Unwrap() error { return e.Kind }

// FormatDelta renders a signed gram delta with an explicit plus sign for
// positive values: 7 -> "+7", -1.5 -> "-1.5", 0 -> "0".
func FormatDelta(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		return "+" + s
	}
	return s
}

// kindText strips the category suffix from a kind's message so that
// wrapped errors read "draft menu locked: ..." instead of repeating "conflict".
func kindText(kind error) string {
	if kind == nil {
		return "error"
	}
	msg := kind.Error()
	if cat := errors.Unwrap(kind); cat != nil {
		suffix := ": " + cat.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
