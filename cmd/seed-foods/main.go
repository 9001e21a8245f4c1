// Command seed-foods loads the reference food catalog into PostgreSQL.
// Existing items with the same id are overwritten. When Redis is
// configured the cached catalog entries are dropped afterwards.
//
// Flags:
//
//	--migrate   apply pending migrations before seeding
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/kalculo-backend/internal/adapter/memory"
	"github.com/heartmarshall/kalculo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kalculo-backend/internal/adapter/postgres/food"
	"github.com/heartmarshall/kalculo-backend/internal/adapter/rediscache"
	"github.com/heartmarshall/kalculo-backend/internal/app"
	"github.com/heartmarshall/kalculo-backend/internal/config"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Storage.Driver != config.StoragePostgres {
		logger.Error("seed-foods requires storage.driver=postgres", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if *migrateFlag {
		if err := postgres.MigratePool(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repo := food.New(pool)
	foods := memory.ReferenceFoods()
	ids := make([]string, 0, len(foods))

	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		for _, f := range foods {
			if err := repo.Upsert(ctx, f); err != nil {
				return err
			}
			ids = append(ids, f.ID)
		}
		return nil
	})
	if err != nil {
		logger.Error("seed foods failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed foods completed", slog.Int("upserted", len(ids)))

	if !cfg.Redis.Enabled() {
		return
	}
	rdb, err := rediscache.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, cached catalog left to expire", slog.String("error", err.Error()))
		return
	}
	defer rdb.Close()

	cache := rediscache.NewFoodCatalog(logger, rdb, repo, cfg.Redis.CatalogTTL)
	if err := cache.Invalidate(ctx, ids...); err != nil {
		logger.Warn("invalidate cached catalog", slog.String("error", err.Error()))
	}
}
