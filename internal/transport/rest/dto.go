package rest

import (
	"math"
	"time"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

type nutritionJSON struct {
	CaloriesKcal float64 `json:"caloriesKcal"`
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatsGrams    float64 `json:"fatsGrams"`
}

// catalogNutritionJSON reports missing catalog values as null.
type catalogNutritionJSON struct {
	CaloriesKcal *float64 `json:"caloriesKcal"`
	ProteinGrams *float64 `json:"proteinGrams"`
	CarbsGrams   *float64 `json:"carbsGrams"`
	FatsGrams    *float64 `json:"fatsGrams"`
}

type foodResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	NutritionPer100g catalogNutritionJSON `json:"nutritionPer100g"`
}

type draftLineResponse struct {
	ID               string        `json:"id"`
	FoodID           string        `json:"foodId"`
	FoodName         string        `json:"foodName"`
	QuantityGrams    float64       `json:"quantityGrams"`
	NutritionPer100g nutritionJSON `json:"nutritionPer100g"`
	NutritionTotals  nutritionJSON `json:"nutritionTotals"`
	AddedAt          time.Time     `json:"addedAt"`
}

type draftResponse struct {
	ID        string              `json:"id"`
	ParentID  string              `json:"parentId"`
	ChildID   string              `json:"childId"`
	Day       string              `json:"day"`
	Status    string              `json:"status"`
	LockedAt  *time.Time          `json:"lockedAt,omitempty"`
	Version   int                 `json:"version"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Lines     []draftLineResponse `json:"lines"`
	Totals    nutritionJSON       `json:"totals"`
}

type targetsJSON struct {
	ProteinTargetGrams float64 `json:"proteinTargetGrams"`
	CarbsTargetGrams   float64 `json:"carbsTargetGrams"`
	FatsTargetGrams    float64 `json:"fatsTargetGrams"`
}

type deltasJSON struct {
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatsGrams    float64 `json:"fatsGrams"`
}

type complianceResponse struct {
	Totals  nutritionJSON `json:"totals"`
	Targets targetsJSON   `json:"targets"`
	Deltas  deltasJSON    `json:"deltas"`
	Status  string        `json:"status"`
}

type shareAuthorizationResponse struct {
	Authorized bool               `json:"authorized"`
	Compliance complianceResponse `json:"compliance"`
}

type macroTargetsResponse struct {
	ChildID            string    `json:"childId"`
	ProteinTargetGrams float64   `json:"proteinTargetGrams"`
	CarbsTargetGrams   float64   `json:"carbsTargetGrams"`
	FatsTargetGrams    float64   `json:"fatsTargetGrams"`
	UpdatedByParentID  string    `json:"updatedByParentId"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type historyEntryResponse struct {
	ID                string       `json:"id"`
	ChildID           string       `json:"childId"`
	ChangedAt         time.Time    `json:"changedAt"`
	ChangedByParentID string       `json:"changedByParentId"`
	PreviousTargets   *targetsJSON `json:"previousTargets"`
	NewTargets        targetsJSON  `json:"newTargets"`
}

func toNutritionJSON(t domain.NutritionTotals) nutritionJSON {
	return nutritionJSON{
		CaloriesKcal: t.CaloriesKcal,
		ProteinGrams: t.ProteinGrams,
		CarbsGrams:   t.CarbsGrams,
		FatsGrams:    t.FatsGrams,
	}
}

func per100gJSON(n domain.FoodNutritionPer100g) nutritionJSON {
	return nutritionJSON{
		CaloriesKcal: n.CaloriesKcal,
		ProteinGrams: n.ProteinGrams,
		CarbsGrams:   n.CarbsGrams,
		FatsGrams:    n.FatsGrams,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func toFoodResponse(f domain.FoodItem) foodResponse {
	n := f.NutritionPer100g
	return foodResponse{
		ID:   f.ID,
		Name: f.Name,
		NutritionPer100g: catalogNutritionJSON{
			CaloriesKcal: finite(n.CaloriesKcal),
			ProteinGrams: finite(n.ProteinGrams),
			CarbsGrams:   finite(n.CarbsGrams),
			FatsGrams:    finite(n.FatsGrams),
		},
	}
}

func toDraftResponse(d *domain.DailyMenuDraft) draftResponse {
	lines := make([]draftLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = draftLineResponse{
			ID:               l.ID.String(),
			FoodID:           l.FoodID,
			FoodName:         l.FoodName,
			QuantityGrams:    l.QuantityGrams,
			NutritionPer100g: per100gJSON(l.NutritionPer100g),
			NutritionTotals:  toNutritionJSON(l.NutritionTotals),
			AddedAt:          l.AddedAt,
		}
	}
	return draftResponse{
		ID:        d.ID.String(),
		ParentID:  d.ParentID.String(),
		ChildID:   d.ChildID.String(),
		Day:       d.Day.String(),
		Status:    d.Status.String(),
		LockedAt:  d.LockedAt,
		Version:   d.Version,
		UpdatedAt: d.UpdatedAt,
		Lines:     lines,
		Totals:    toNutritionJSON(domain.CalculateTotals(*d)),
	}
}

func toTargetsJSON(v domain.MacroTargetsValues) targetsJSON {
	return targetsJSON{
		ProteinTargetGrams: v.ProteinTargetGrams,
		CarbsTargetGrams:   v.CarbsTargetGrams,
		FatsTargetGrams:    v.FatsTargetGrams,
	}
}

func toComplianceResponse(c domain.DraftComplianceResult) complianceResponse {
	return complianceResponse{
		Totals:  toNutritionJSON(c.Totals),
		Targets: toTargetsJSON(c.Targets),
		Deltas: deltasJSON{
			ProteinGrams: c.Deltas.ProteinGrams,
			CarbsGrams:   c.Deltas.CarbsGrams,
			FatsGrams:    c.Deltas.FatsGrams,
		},
		Status: c.Status.String(),
	}
}

func toMacroTargetsResponse(t *domain.MacroTargets) macroTargetsResponse {
	return macroTargetsResponse{
		ChildID:            t.ChildID.String(),
		ProteinTargetGrams: t.Values.ProteinTargetGrams,
		CarbsTargetGrams:   t.Values.CarbsTargetGrams,
		FatsTargetGrams:    t.Values.FatsTargetGrams,
		UpdatedByParentID:  t.UpdatedByParentID.String(),
		UpdatedAt:          t.UpdatedAt,
	}
}

func toHistoryResponse(entries []domain.MacroTargetsHistoryEntry) []historyEntryResponse {
	out := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = historyEntryResponse{
			ID:                e.ID.String(),
			ChildID:           e.ChildID.String(),
			ChangedAt:         e.ChangedAt,
			ChangedByParentID: e.ChangedByParentID.String(),
			NewTargets:        toTargetsJSON(e.NewTargets),
		}
		if e.PreviousTargets != nil {
			prev := toTargetsJSON(*e.PreviousTargets)
			out[i].PreviousTargets = &prev
		}
	}
	return out
}
