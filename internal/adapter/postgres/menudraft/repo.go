// Package menudraft implements the daily menu draft store on PostgreSQL.
// A draft is one menu_drafts row plus its ordered menu_draft_lines; Save
// replaces the lines wholesale under an optimistic version check.
package menudraft

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var draftColumns = []string{
	"id", "parent_id", "child_id", "day", "status", "locked_at", "version", "updated_at",
}

var lineColumns = []string{
	"id", "food_id", "food_name", "quantity_grams",
	"per100_calories_kcal", "per100_protein_grams", "per100_carbs_grams", "per100_fats_grams",
	"total_calories_kcal", "total_protein_grams", "total_carbs_grams", "total_fats_grams",
	"added_at",
}

// Repo provides menu draft persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new menu draft repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByKey returns the draft with its lines in display order. The header
// and the lines are read from one snapshot.
// Returns domain.ErrNotFound if no draft was saved for the key.
func (r *Repo) FindByKey(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error) {
	var d *domain.DailyMenuDraft
	err := r.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		d, err = r.findByKey(ctx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Repo) findByKey(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select(draftColumns...).
		From("menu_drafts").
		Where(squirrel.Eq{"parent_id": key.ParentID}).
		Where(squirrel.Eq{"child_id": key.ChildID}).
		Where(squirrel.Eq{"day": key.Day.Time()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find draft query: %w", err)
	}

	var (
		d      domain.DailyMenuDraft
		day    time.Time
		status string
	)
	err = q.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.ParentID, &d.ChildID, &day, &status, &d.LockedAt, &d.Version, &d.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "menu draft", key.DraftID())
	}
	d.Day = domain.DayOf(day)
	d.Status = domain.DraftStatus(status)

	lines, err := r.listLines(ctx, q, d)
	if err != nil {
		return nil, err
	}
	d.Lines = lines

	return &d, nil
}

func (r *Repo) listLines(ctx context.Context, q postgres.Querier, d domain.DailyMenuDraft) ([]domain.MenuDraftLine, error) {
	query, args, err := psql.Select(lineColumns...).
		From("menu_draft_lines").
		Where(squirrel.Eq{"draft_id": d.ID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lines query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "menu draft lines", d.ID)
	}

	lines, err := pgx.CollectRows(rows, scanLine)
	if err != nil {
		return nil, fmt.Errorf("scan lines of draft %s: %w", d.ID, err)
	}
	if lines == nil {
		lines = []domain.MenuDraftLine{}
	}
	return lines, nil
}

func scanLine(row pgx.CollectableRow) (domain.MenuDraftLine, error) {
	var l domain.MenuDraftLine
	err := row.Scan(
		&l.ID, &l.FoodID, &l.FoodName, &l.QuantityGrams,
		&l.NutritionPer100g.CaloriesKcal, &l.NutritionPer100g.ProteinGrams,
		&l.NutritionPer100g.CarbsGrams, &l.NutritionPer100g.FatsGrams,
		&l.NutritionTotals.CaloriesKcal, &l.NutritionTotals.ProteinGrams,
		&l.NutritionTotals.CarbsGrams, &l.NutritionTotals.FatsGrams,
		&l.AddedAt,
	)
	return l, err
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save writes the draft when the stored version is draft.Version-1, or
// inserts it when draft.Version is 1 and nothing is stored yet. Any other
// state returns domain.ErrDraftVersionConflict.
func (r *Repo) Save(ctx context.Context, draft domain.DailyMenuDraft) error {
	if draft.Version < 1 {
		return fmt.Errorf("menu draft %s at version %d: %w", draft.ID, draft.Version, domain.ErrDraftVersionConflict)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if err := writeHeader(ctx, q, draft); err != nil {
			return err
		}
		return replaceLines(ctx, q, draft)
	})
}

func writeHeader(ctx context.Context, q postgres.Querier, d domain.DailyMenuDraft) error {
	var (
		query string
		args  []any
		err   error
	)
	if d.Version == 1 {
		query, args, err = psql.Insert("menu_drafts").
			Columns(draftColumns...).
			Values(d.ID, d.ParentID, d.ChildID, d.Day.Time(), string(d.Status), d.LockedAt, d.Version, d.UpdatedAt).
			Suffix("ON CONFLICT DO NOTHING").
			ToSql()
	} else {
		query, args, err = psql.Update("menu_drafts").
			Set("status", string(d.Status)).
			Set("locked_at", d.LockedAt).
			Set("version", d.Version).
			Set("updated_at", d.UpdatedAt).
			Where(squirrel.Eq{"id": d.ID}).
			Where(squirrel.Eq{"version": d.Version - 1}).
			ToSql()
	}
	if err != nil {
		return fmt.Errorf("build save draft query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "menu draft", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("menu draft %s at version %d: %w", d.ID, d.Version, domain.ErrDraftVersionConflict)
	}
	return nil
}

func replaceLines(ctx context.Context, q postgres.Querier, d domain.DailyMenuDraft) error {
	query, args, err := psql.Delete("menu_draft_lines").
		Where(squirrel.Eq{"draft_id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "menu draft lines", d.ID)
	}

	if len(d.Lines) == 0 {
		return nil
	}

	insert := psql.Insert("menu_draft_lines").
		Columns(append([]string{"draft_id", "position"}, lineColumns...)...)
	for i, l := range d.Lines {
		insert = insert.Values(
			d.ID, i, l.ID, l.FoodID, l.FoodName, l.QuantityGrams,
			l.NutritionPer100g.CaloriesKcal, l.NutritionPer100g.ProteinGrams,
			l.NutritionPer100g.CarbsGrams, l.NutritionPer100g.FatsGrams,
			l.NutritionTotals.CaloriesKcal, l.NutritionTotals.ProteinGrams,
			l.NutritionTotals.CarbsGrams, l.NutritionTotals.FatsGrams,
			l.AddedAt,
		)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "menu draft lines", d.ID)
	}
	return nil
}
