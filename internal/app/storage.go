package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kalculo-backend/internal/adapter/memory"
	"github.com/heartmarshall/kalculo-backend/internal/adapter/postgres"
	pgfood "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres/food"
	pgmacrotarget "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres/macrotarget"
	pgmenudraft "github.com/heartmarshall/kalculo-backend/internal/adapter/postgres/menudraft"
	"github.com/heartmarshall/kalculo-backend/internal/config"
	"github.com/heartmarshall/kalculo-backend/internal/domain"
	"github.com/heartmarshall/kalculo-backend/internal/transport/rest"
)

type foodSource interface {
	ListFoods(ctx context.Context) ([]domain.FoodItem, error)
	FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error)
}

type targetStore interface {
	LockChild(ctx context.Context, childID uuid.UUID) error
	GetActive(ctx context.Context, childID uuid.UUID) (*domain.MacroTargets, error)
	Upsert(ctx context.Context, targets domain.MacroTargets) error
	AppendHistory(ctx context.Context, entry domain.MacroTargetsHistoryEntry) error
	ListHistory(ctx context.Context, childID uuid.UUID) ([]domain.MacroTargetsHistoryEntry, error)
}

type draftStore interface {
	FindByKey(ctx context.Context, key domain.DraftKey) (*domain.DailyMenuDraft, error)
	Save(ctx context.Context, draft domain.DailyMenuDraft) error
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage is one consistent set of capability implementations.
type storage struct {
	foods   foodSource
	targets targetStore
	drafts  draftStore
	tx      txRunner
	checks  []rest.HealthCheck
	close   func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &storage{
			foods:   memory.NewFoodCatalog(memory.ReferenceFoods()...),
			targets: memory.NewMacroTargetStore(),
			drafts:  memory.NewDraftStore(),
			tx:      memory.NewTxManager(),
			close:   func() {},
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.MigratePool(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &storage{
			foods:   pgfood.New(pool),
			targets: pgmacrotarget.New(pool),
			drafts:  pgmenudraft.New(pool),
			tx:      postgres.NewTxManager(pool),
			checks:  []rest.HealthCheck{{Name: "database", Pinger: pool}},
			close:   pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
