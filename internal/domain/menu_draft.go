package domain

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
)

// draftNamespace seeds the name-based UUIDs of daily drafts.
var draftNamespace = uuid.MustParse("5b0e7c1a-3f4d-4e8a-9c2b-7d6f1a0e4c93")

// DraftKey identifies a daily menu draft: one per parent, child and day.
type DraftKey struct {
	ParentID uuid.UUID
	ChildID  uuid.UUID
	Day      Day
}

// DraftID derives the draft identifier from the key. Repeated calls with
// the same key always yield the same ID.
func (k DraftKey) DraftID() uuid.UUID {
	name := k.ParentID.String() + "|" + k.ChildID.String() + "|" + k.Day.String()
	return uuid.NewSHA1(draftNamespace, []byte(name))
}

// MenuDraftLine is one food entry of a draft. NutritionPer100g is a
// snapshot taken when the line was added; later catalog edits never
// change it.
type MenuDraftLine struct {
	ID               uuid.UUID
	FoodID           string
	FoodName         string
	QuantityGrams    float64
	NutritionPer100g FoodNutritionPer100g
	NutritionTotals  NutritionTotals
	AddedAt          time.Time
}

// DailyMenuDraft is the aggregate root of a day's menu.
//   - Lines are ordered; the order is visible state.
//   - LockedAt is set iff Status is locked.
//   - Version increases by one on every state change.
//
// All operations return a new value and leave the receiver untouched.
type DailyMenuDraft struct {
	ID        uuid.UUID
	ParentID  uuid.UUID
	ChildID   uuid.UUID
	Day       Day
	Status    DraftStatus
	LockedAt  *time.Time
	Lines     []MenuDraftLine
	Version   int
	UpdatedAt time.Time
}

// NewDailyMenuDraft returns an empty, unpersisted draft for key.
func NewDailyMenuDraft(key DraftKey, now time.Time) DailyMenuDraft {
	return DailyMenuDraft{
		ID:        key.DraftID(),
		ParentID:  key.ParentID,
		ChildID:   key.ChildID,
		Day:       key.Day,
		Status:    DraftStatusDraft,
		Lines:     []MenuDraftLine{},
		UpdatedAt: now,
	}
}

// GetOrCreateDraft returns *existing when present, otherwise a fresh draft.
func GetOrCreateDraft(existing *DailyMenuDraft, key DraftKey, now time.Time) DailyMenuDraft {
	if existing != nil {
		return *existing
	}
	return NewDailyMenuDraft(key, now)
}

// Key returns the identity key of the draft.
func (d DailyMenuDraft) Key() DraftKey {
	return DraftKey{ParentID: d.ParentID, ChildID: d.ChildID, Day: d.Day}
}

// IsLocked reports whether the draft is read-only.
func (d DailyMenuDraft) IsLocked() bool {
	return d.Status == DraftStatusLocked
}

// LineIndex returns the position of the line or -1.
func (d DailyMenuDraft) LineIndex(lineID uuid.UUID) int {
	return slices.IndexFunc(d.Lines, func(l MenuDraftLine) bool { return l.ID == lineID })
}

// NewDraftLine builds a line for food. The caller must have run
// AssertUsable on food beforehand.
func NewDraftLine(food FoodItem, quantityGrams float64, now time.Time) (MenuDraftLine, error) {
	if err := checkQuantity(quantityGrams); err != nil {
		return MenuDraftLine{}, err
	}
	totals := ScaleNutrition(food.NutritionPer100g, quantityGrams)
	if !totals.IsFinite() {
		return MenuDraftLine{}, quantityTooLarge()
	}
	return MenuDraftLine{
		ID:               uuid.New(),
		FoodID:           food.ID,
		FoodName:         food.Name,
		QuantityGrams:    quantityGrams,
		NutritionPer100g: food.NutritionPer100g,
		NutritionTotals:  totals,
		AddedAt:          now,
	}, nil
}

// AddLine appends a line for food at the end of the draft.
func (d DailyMenuDraft) AddLine(food FoodItem, quantityGrams float64, now time.Time) (DailyMenuDraft, error) {
	if err := d.checkEditable(); err != nil {
		return d, err
	}
	line, err := NewDraftLine(food, quantityGrams, now)
	if err != nil {
		return d, err
	}

	next := d.touched(now)
	next.Lines = append(slices.Clone(d.Lines), line)
	if !CalculateTotals(next).IsFinite() {
		return d, quantityTooLarge()
	}
	return next, nil
}

// UpdateLineQuantity changes a line's quantity and recomputes its totals
// from the line's own snapshot.
func (d DailyMenuDraft) UpdateLineQuantity(lineID uuid.UUID, quantityGrams float64, now time.Time) (DailyMenuDraft, error) {
	if err := d.checkEditable(); err != nil {
		return d, err
	}
	if err := checkQuantity(quantityGrams); err != nil {
		return d, err
	}
	idx := d.LineIndex(lineID)
	if idx < 0 {
		return d, lineNotFound(lineID)
	}

	next := d.touched(now)
	next.Lines = slices.Clone(d.Lines)
	line := next.Lines[idx]
	line.QuantityGrams = quantityGrams
	line.NutritionTotals = ScaleNutrition(line.NutritionPer100g, quantityGrams)
	if !line.NutritionTotals.IsFinite() {
		return d, quantityTooLarge()
	}
	next.Lines[idx] = line
	if !CalculateTotals(next).IsFinite() {
		return d, quantityTooLarge()
	}
	return next, nil
}

// RemoveLine deletes a line from the draft.
func (d DailyMenuDraft) RemoveLine(lineID uuid.UUID, now time.Time) (DailyMenuDraft, error) {
	if err := d.checkEditable(); err != nil {
		return d, err
	}
	idx := d.LineIndex(lineID)
	if idx < 0 {
		return d, lineNotFound(lineID)
	}

	next := d.touched(now)
	next.Lines = slices.Delete(slices.Clone(d.Lines), idx, idx+1)
	return next, nil
}

// MoveLine swaps a line with its neighbour in the given direction.
// Moving the first line up or the last line down returns d unchanged.
func (d DailyMenuDraft) MoveLine(lineID uuid.UUID, direction MoveDirection, now time.Time) (DailyMenuDraft, error) {
	if err := d.checkEditable(); err != nil {
		return d, err
	}
	if !direction.IsValid() {
		return d, NewValidationError("direction", "must be up or down")
	}
	idx := d.LineIndex(lineID)
	if idx < 0 {
		return d, lineNotFound(lineID)
	}

	target := idx + 1
	if direction == MoveUp {
		target = idx - 1
	}
	if target < 0 || target >= len(d.Lines) {
		return d, nil
	}

	next := d.touched(now)
	next.Lines = slices.Clone(d.Lines)
	next.Lines[idx], next.Lines[target] = next.Lines[target], next.Lines[idx]
	return next, nil
}

// Lock makes the draft read-only. Locking a locked draft is a no-op.
// Compliance gating is the caller's job.
func (d DailyMenuDraft) Lock(now time.Time) DailyMenuDraft {
	if d.IsLocked() {
		return d
	}
	next := d.touched(now)
	next.Status = DraftStatusLocked
	lockedAt := now
	next.LockedAt = &lockedAt
	return next
}

func (d DailyMenuDraft) touched(now time.Time) DailyMenuDraft {
	next := d
	next.UpdatedAt = now
	next.Version = d.Version + 1
	return next
}

func (d DailyMenuDraft) checkEditable() error {
	if d.IsLocked() {
		return NewRuleError(ErrDraftLocked, "menu is locked and cannot be edited, duplicate it to make changes")
	}
	return nil
}

func checkQuantity(quantityGrams float64) error {
	if math.IsNaN(quantityGrams) || math.IsInf(quantityGrams, 0) || quantityGrams <= 0 {
		return NewFieldRuleError(ErrInvalidQuantity, "quantityGrams", "quantity must be a strictly positive number")
	}
	return nil
}

func quantityTooLarge() error {
	return NewFieldRuleError(ErrInvalidQuantity, "quantityGrams", "quantity is too large")
}

func lineNotFound(lineID uuid.UUID) error {
	return NewFieldRuleError(ErrDraftLineNotFound, "lineId", "no line "+lineID.String()+" in the draft menu")
}
