package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/kalculo-backend/internal/domain"
)

const (
	keyPrefix   = "kalculo:foods:"
	allFoodsKey = keyPrefix + "all"
)

// loadTimeout bounds a shared load, which outlives the caller that started it.
const loadTimeout = 5 * time.Second

func itemKey(id string) string { return keyPrefix + "item:" + id }

type catalog interface {
	ListFoods(ctx context.Context) ([]domain.FoodItem, error)
	FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error)
}

// FoodCatalog decorates a catalog with a Redis read-through cache.
// Concurrent misses for the same key share one load.
type FoodCatalog struct {
	next  catalog
	rdb   goredis.Cmdable
	ttl   time.Duration
	log   *slog.Logger
	group singleflight.Group
}

// NewFoodCatalog creates a cached catalog in front of next.
func NewFoodCatalog(log *slog.Logger, rdb goredis.Cmdable, next catalog, ttl time.Duration) *FoodCatalog {
	return &FoodCatalog{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With("adapter", "rediscache"),
	}
}

// ListFoods returns the cached catalog, loading it from the underlying
// catalog on a miss.
func (c *FoodCatalog) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	var cached []cachedFood
	if c.get(ctx, allFoodsKey, &cached) {
		foods := make([]domain.FoodItem, len(cached))
		for i, f := range cached {
			foods[i] = f.toDomain()
		}
		return foods, nil
	}

	v, err := c.load(ctx, allFoodsKey, func(ctx context.Context) (any, error) {
		foods, err := c.next.ListFoods(ctx)
		if err != nil {
			return nil, err
		}
		encoded := make([]cachedFood, len(foods))
		for i, f := range foods {
			encoded[i] = fromDomain(f)
		}
		c.set(ctx, allFoodsKey, encoded)
		return foods, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.FoodItem), nil
}

// FindFoodByID returns the cached item, loading it on a miss. Unknown ids
// are not cached.
func (c *FoodCatalog) FindFoodByID(ctx context.Context, id string) (*domain.FoodItem, error) {
	key := itemKey(id)

	var cached cachedFood
	if c.get(ctx, key, &cached) {
		food := cached.toDomain()
		return &food, nil
	}

	v, err := c.load(ctx, key, func(ctx context.Context) (any, error) {
		food, err := c.next.FindFoodByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, fromDomain(*food))
		return *food, nil
	})
	if err != nil {
		return nil, err
	}
	food := v.(domain.FoodItem)
	return &food, nil
}

// load runs fn once per key for all concurrent callers. fn gets a context
// detached from the caller's cancellation, so one caller giving up does not
// fail the others. Each caller still stops waiting when its own ctx ends.
func (c *FoodCatalog) load(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return fn(loadCtx)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the catalog listing and the given items from the cache.
func (c *FoodCatalog) Invalidate(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, allFoodsKey)
	for _, id := range ids {
		keys = append(keys, itemKey(id))
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate food cache: %w", err)
	}
	return nil
}

func (c *FoodCatalog) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.WarnContext(ctx, "food cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.WarnContext(ctx, "bad food cache payload", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *FoodCatalog) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "encode food cache payload", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "food cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// cachedFood is the JSON form of a FoodItem. JSON has no NaN, so missing
// nutrition values are encoded as null.
type cachedFood struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CaloriesKcal *float64 `json:"caloriesKcal"`
	ProteinGrams *float64 `json:"proteinGrams"`
	CarbsGrams   *float64 `json:"carbsGrams"`
	FatsGrams    *float64 `json:"fatsGrams"`
}

func fromDomain(f domain.FoodItem) cachedFood {
	n := f.NutritionPer100g
	return cachedFood{
		ID:           f.ID,
		Name:         f.Name,
		CaloriesKcal: finite(n.CaloriesKcal),
		ProteinGrams: finite(n.ProteinGrams),
		CarbsGrams:   finite(n.CarbsGrams),
		FatsGrams:    finite(n.FatsGrams),
	}
}

func (c cachedFood) toDomain() domain.FoodItem {
	return domain.FoodItem{
		ID:   c.ID,
		Name: c.Name,
		NutritionPer100g: domain.FoodNutritionPer100g{
			CaloriesKcal: valueOrNaN(c.CaloriesKcal),
			ProteinGrams: valueOrNaN(c.ProteinGrams),
			CarbsGrams:   valueOrNaN(c.CarbsGrams),
			FatsGrams:    valueOrNaN(c.FatsGrams),
		},
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
