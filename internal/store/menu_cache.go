package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/foodikal/ordering-go/internal/ordering"
	"github.com/redis/go-redis/v9"
)

// MenuCacheRepository wraps a MenuRepository with Redis caching for the full
// menu listing. The menu changes rarely and is read on every storefront load,
// so only List is cached; writes invalidate the cached listing.
type MenuCacheRepository struct {
	store  ordering.MenuRepository
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewMenuCacheRepository creates a new Redis-cached menu repository decorator.
func NewMenuCacheRepository(
	store ordering.MenuRepository, client *redis.Client, ttl time.Duration,
) *MenuCacheRepository {
	return &MenuCacheRepository{
		store:  store,
		client: client,
		key:    "menu:all",
		ttl:    ttl,
	}
}

// List returns all menu items, serving from cache when possible.
func (r *MenuCacheRepository) List(ctx context.Context) ([]ordering.MenuItem, error) {
	if items, err := r.getFromCache(ctx); err == nil {
		return items, nil
	}

	items, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	r.cacheItems(ctx, items)

	return items, nil
}

// ListByCategory filters the cached listing rather than querying the store.
func (r *MenuCacheRepository) ListByCategory(ctx context.Context, category string) ([]ordering.MenuItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var items []ordering.MenuItem

	for _, item := range all {
		if item.Category == category {
			items = append(items, item)
		}
	}

	return items, nil
}

func (r *MenuCacheRepository) ListByIDs(ctx context.Context, ids []int64) ([]ordering.MenuItem, error) {
	return r.store.ListByIDs(ctx, ids)
}

func (r *MenuCacheRepository) GetByID(ctx context.Context, id int64) (*ordering.MenuItem, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MenuCacheRepository) Create(ctx context.Context, item *ordering.MenuItem) (int64, error) {
	id, err := r.store.Create(ctx, item)
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx)

	return id, nil
}

func (r *MenuCacheRepository) Update(ctx context.Context, id int64, update ordering.MenuItemUpdate) error {
	if err := r.store.Update(ctx, id, update); err != nil {
		return err
	}

	r.invalidate(ctx)

	return nil
}

func (r *MenuCacheRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx)

	return nil
}

func (r *MenuCacheRepository) getFromCache(ctx context.Context) ([]ordering.MenuItem, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		return nil, err
	}

	var items []ordering.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MenuCacheRepository) cacheItems(ctx context.Context, items []ordering.MenuItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}

	// Cache failures are ignored; the store remains the source of truth.
	_ = r.client.Set(ctx, r.key, payload, r.ttl).Err()
}

func (r *MenuCacheRepository) invalidate(ctx context.Context) {
	_ = r.client.Del(ctx, r.key).Err()
}

// Compile-time check.
var _ ordering.MenuRepository = (*MenuCacheRepository)(nil)
