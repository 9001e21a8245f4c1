package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kalculo-backend/internal/adapter/rediscache"
	"github.com/heartmarshall/kalculo-backend/internal/auth"
	"github.com/heartmarshall/kalculo-backend/internal/config"
	"github.com/heartmarshall/kalculo-backend/internal/service/macrotarget"
	"github.com/heartmarshall/kalculo-backend/internal/service/menudraft"
	"github.com/heartmarshall/kalculo-backend/internal/transport/middleware"
	"github.com/heartmarshall/kalculo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// storage backend and services, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("cache", cfg.Redis.Enabled()),
	)

	handler, cleanup, err := NewHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return serve(ctx, cfg.Server, handler, logger)
}

// NewHandler builds the full HTTP handler for cfg. cleanup releases the
// storage pool, cache client and rate limiter.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	closers := []func(){st.close}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	foods := st.foods
	checks := st.checks
	if cfg.Redis.Enabled() {
		rdb, err := rediscache.NewClient(ctx, cfg.Redis)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
		foods = rediscache.NewFoodCatalog(logger, rdb, foods, cfg.Redis.CatalogTTL)
		checks = append(checks, rest.HealthCheck{
			Name:   "cache",
			Pinger: rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
	}

	targetSvc := macrotarget.NewService(logger, st.targets, st.tx)
	draftSvc := menudraft.NewService(logger, foods, targetSvc, st.drafts)

	limiter := middleware.NewRateLimiter(time.Minute)
	closers = append(closers, limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Health:             rest.NewHealthHandler(BuildVersion(), checks...),
		Drafts:             rest.NewDraftHandler(draftSvc, logger),
		MacroTargets:       rest.NewMacroTargetHandler(targetSvc, logger),
		Tokens:             auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL),
		Limiter:            limiter,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		CORS:               cfg.CORS,
		Logger:             logger,
	})

	return handler, cleanup, nil
}

func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
