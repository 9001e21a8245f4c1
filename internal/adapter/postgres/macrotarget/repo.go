// Package macrotarget implements per-child macro targets and their change
// history on PostgreSQL.
package macrotarget

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides macro target persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new macro target repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Active targets
// ---------------------------------------------------------------------------

var activeColumns = []string{
	"child_id", "protein_target_grams", "carbs_target_grams", "fats_target_grams",
	"updated_by_parent_id", "updated_at",
}

// LockChild takes a transaction-scoped advisory lock keyed by the child,
// so concurrent target changes for one child run one after another. It
// must be called inside a transaction; outside one the lock is released
// as soon as the statement ends.
func (r *Repo) LockChild(ctx context.Context, childID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", childID.String())
	if err != nil {
		return postgres.MapError(err, "macro targets lock of child", childID)
	}
	return nil
}

// GetActive returns domain.ErrNotFound if the child has no targets.
func (r *Repo) GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error) {
	query, args, err := psql.Select(activeColumns...).
		From("macro_targets").
		Where(squirrel.Eq{"child_id": childID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get targets query: %w", err)
	}

	var t domain.MacroTargets
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&t.ChildID,
		&t.Values.ProteinTargetGrams, &t.Values.CarbsTargetGrams, &t.Values.FatsTargetGrams,
		&t.UpdatedByParentID, &t.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "macro targets of child", childID)
	}
	return &t, nil
}

// Upsert replaces the child's active targets.
func (r *Repo) Upsert(ctx context.Context, t domain.MacroTargets) error {
	query, args, err := psql.Insert("macro_targets").
		Columns(activeColumns...).
		Values(t.ChildID,
			t.Values.ProteinTargetGrams, t.Values.CarbsTargetGrams, t.Values.FatsTargetGrams,
			t.UpdatedByParentID, t.UpdatedAt).
		Suffix(`ON CONFLICT (child_id) DO UPDATE SET
			protein_target_grams = EXCLUDED.protein_target_grams,
			carbs_target_grams = EXCLUDED.carbs_target_grams,
			fats_target_grams = EXCLUDED.fats_target_grams,
			updated_by_parent_id = EXCLUDED.updated_by_parent_id,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert targets query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "macro targets of child", t.ChildID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

var historyColumns = []string{
	"id", "child_id", "changed_at", "changed_by_parent_id",
	"prev_protein_grams", "prev_carbs_grams", "prev_fats_grams",
	"new_protein_grams", "new_carbs_grams", "new_fats_grams",
}

// historyRow mirrors macro_targets_history. The prev_* columns are NULL for
// the first configuration of a child.
type historyRow struct {
	ID                uuid.UUID `db:"id"`
	ChildID           uuid.UUID `db:"child_id"`
	ChangedAt         time.Time `db:"changed_at"`
	ChangedByParentID uuid.UUID `db:"changed_by_parent_id"`
	PrevProtein       *float64  `db:"prev_protein_grams"`
	PrevCarbs         *float64  `db:"prev_carbs_grams"`
	PrevFats          *float64  `db:"prev_fats_grams"`
	NewProtein        float64   `db:"new_protein_grams"`
	NewCarbs          float64   `db:"new_carbs_grams"`
	NewFats           float64   `db:"new_fats_grams"`
}

func (h historyRow) toDomain() domain.MacroTargetsHistoryEntry {
	e := domain.MacroTargetsHistoryEntry{
		ID:                h.ID,
		ChildID:           h.ChildID,
		ChangedAt:         h.ChangedAt,
		ChangedByParentID: h.ChangedByParentID,
		NewTargets: domain.MacroTargetsValues{
			ProteinTargetGrams: h.NewProtein,
			CarbsTargetGrams:   h.NewCarbs,
			FatsTargetGrams:    h.NewFats,
		},
	}
	if h.PrevProtein != nil && h.PrevCarbs != nil && h.PrevFats != nil {
		e.PreviousTargets = &domain.MacroTargetsValues{
			ProteinTargetGrams: *h.PrevProtein,
			CarbsTargetGrams:   *h.PrevCarbs,
			FatsTargetGrams:    *h.PrevFats,
		}
	}
	return e
}

// AppendHistory records one change.
func (r *Repo) AppendHistory(ctx context.Context, e domain.MacroTargetsHistoryEntry) error {
	var prevP, prevC, prevF *float64
	if p := e.PreviousTargets; p != nil {
		prevP, prevC, prevF = &p.ProteinTargetGrams, &p.CarbsTargetGrams, &p.FatsTargetGrams
	}

	query, args, err := psql.Insert("macro_targets_history").
		Columns(historyColumns...).
		Values(e.ID, e.ChildID, e.ChangedAt, e.ChangedByParentID,
			prevP, prevC, prevF,
			e.NewTargets.ProteinTargetGrams, e.NewTargets.CarbsTargetGrams, e.NewTargets.FatsTargetGrams).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append history query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "macro targets history", e.ID)
	}
	return nil
}

// ListHistory returns the child's changes, newest first.
// Returns an empty slice (not nil) when nothing was recorded.
func (r *Repo) ListHistory(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error) {
	query, args, err := psql.Select(historyColumns...).
		From("macro_targets_history").
		Where(squirrel.Eq{"child_id": childID}).
		OrderBy("changed_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list macro targets history: %w", err)
	}

	entries := make([]domain.MacroTargetsHistoryEntry, len(rows))
	for i, h := range rows {
		entries[i] = h.toDomain()
	}
	return entries, nil
}
