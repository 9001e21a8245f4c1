package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MacroTargetsValues are the daily gram goals of a child.
type MacroTargetsValues struct {
	ProteinTargetGrams float64
	CarbsTargetGrams   float64
	FatsTargetGrams    float64
}

// Validate checks that every target is finite and non-negative.
func (v MacroTargetsValues) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"proteinTargetGrams", v.ProteinTargetGrams},
		{"carbsTargetGrams", v.CarbsTargetGrams},
		{"fatsTargetGrams", v.FatsTargetGrams},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return NewFieldRuleError(ErrInvalidMacroTarget, f.name, "target must be a number >= 0")
		}
	}
	return nil
}

// MacroTargets is the active target set of a child.
type MacroTargets struct {
	ChildID           uuid.UUID
	Values            MacroTargetsValues
	UpdatedByParentID uuid.UUID
	UpdatedAt         time.Time
}

// MacroTargetsHistoryEntry records one change of a child's targets.
// PreviousTargets is nil for the first configuration.
type MacroTargetsHistoryEntry struct {
	ID                uuid.UUID
	ChildID           uuid.UUID
	ChangedAt         time.Time
	ChangedByParentID uuid.UUID
	PreviousTargets   *MacroTargetsValues
	NewTargets        MacroTargetsValues
}
