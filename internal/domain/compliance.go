package domain

import "math"

// ComplianceToleranceGrams is the largest absolute per-macro gap between
// totals and targets that still counts as compliant.
const ComplianceToleranceGrams = 5.0

// MacroDeltas holds signed totals − targets per macro, in grams.
type MacroDeltas struct {
	ProteinGrams float64
	CarbsGrams   float64
	FatsGrams    float64
}

// DraftComplianceResult is derived on demand and never persisted.
type DraftComplianceResult struct {
	Totals  NutritionTotals
	Targets MacroTargetsValues
	Deltas  MacroDeltas
	Status  ComplianceStatus
}

// IsCompliant reports whether every macro is within tolerance.
func (r DraftComplianceResult) IsCompliant() bool {
	return r.Status == ComplianceStatusCompliant
}

// CalculateTotals sums the line totals of a draft, rounding after every
// addition. An empty draft has zero totals.
func CalculateTotals(d DailyMenuDraft) NutritionTotals {
	var totals NutritionTotals
	for _, line := range d.Lines {
		totals = totals.Add(line.NutritionTotals)
	}
	return totals
}

// Assess compares totals with targets. Calories are reported but never
// compared.
func Assess(totals NutritionTotals, targets MacroTargetsValues) DraftComplianceResult {
	deltas := MacroDeltas{
		ProteinGrams: Round2(totals.ProteinGrams - targets.ProteinTargetGrams),
		CarbsGrams:   Round2(totals.CarbsGrams - targets.CarbsTargetGrams),
		FatsGrams:    Round2(totals.FatsGrams - targets.FatsTargetGrams),
	}

	status := ComplianceStatusNonCompliant
	if withinTolerance(deltas.ProteinGrams) &&
		withinTolerance(deltas.CarbsGrams) &&
		withinTolerance(deltas.FatsGrams) {
		status = ComplianceStatusCompliant
	}

	return DraftComplianceResult{
		Totals:  totals,
		Targets: targets,
		Deltas:  deltas,
		Status:  status,
	}
}

func withinTolerance(delta float64) bool {
	return math.Abs(delta) <= ComplianceToleranceGrams
}
