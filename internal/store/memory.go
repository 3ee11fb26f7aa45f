package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/foodikal/ordering-go/internal/ordering"
)

// MenuMemoryStore is an in-memory implementation of ordering.MenuRepository.
type MenuMemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]ordering.MenuItem
	nextID int64
}

// NewMenuMemoryStore creates a new in-memory menu store.
func NewMenuMemoryStore() *MenuMemoryStore {
	return &MenuMemoryStore{
		items:  make(map[int64]ordering.MenuItem),
		nextID: 1,
	}
}

func (m *MenuMemoryStore) List(_ context.Context) ([]ordering.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]ordering.MenuItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b ordering.MenuItem) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return items, nil
}

func (m *MenuMemoryStore) ListByCategory(ctx context.Context, category string) ([]ordering.MenuItem, error) {
	all, _ := m.List(ctx)

	var items []ordering.MenuItem

	for _, item := range all {
		if item.Category == category {
			items = append(items, item)
		}
	}

	return items, nil
}

func (m *MenuMemoryStore) ListByIDs(_ context.Context, ids []int64) ([]ordering.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []ordering.MenuItem

	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}

func (m *MenuMemoryStore) GetByID(_ context.Context, id int64) (*ordering.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return nil, ordering.ErrNotFound
	}

	return &item, nil
}

func (m *MenuMemoryStore) Create(_ context.Context, item *ordering.MenuItem) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	stored := *item
	stored.ID = id
	m.items[id] = stored

	return id, nil
}

func (m *MenuMemoryStore) Update(_ context.Context, id int64, update ordering.MenuItemUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok {
		return ordering.ErrNotFound
	}

	if update.Name != nil {
		item.Name = *update.Name
	}

	if update.Category != nil {
		item.Category = *update.Category
	}

	if update.Description != nil {
		item.Description = *update.Description
	}

	if update.Price != nil {
		item.Price = *update.Price
	}

	if update.Image != nil {
		item.Image = *update.Image
	}

	m.items[id] = item

	return nil
}

func (m *MenuMemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ordering.ErrNotFound
	}

	delete(m.items, id)

	return nil
}

// OrderMemoryStore is an in-memory implementation of ordering.OrderRepository.
type OrderMemoryStore struct {
	mu     sync.RWMutex
	orders map[int64]ordering.Order
	nextID int64
}

// NewOrderMemoryStore creates a new in-memory order store.
func NewOrderMemoryStore() *OrderMemoryStore {
	return &OrderMemoryStore{
		orders: make(map[int64]ordering.Order),
		nextID: 1,
	}
}

func (m *OrderMemoryStore) Create(_ context.Context, order *ordering.Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	stored := *order
	stored.ID = id
	stored.Items = slices.Clone(order.Items)
	m.orders[id] = stored

	return id, nil
}

func (m *OrderMemoryStore) List(_ context.Context) ([]ordering.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]ordering.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}

	slices.SortFunc(orders, func(a, b ordering.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders, nil
}

func (m *OrderMemoryStore) GetByID(_ context.Context, id int64) (*ordering.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok {
		return nil, ordering.ErrNotFound
	}

	return &order, nil
}

func (m *OrderMemoryStore) UpdateConfirmations(_ context.Context, id int64, update ordering.ConfirmationUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[id]
	if !ok {
		return ordering.ErrNotFound
	}

	if update.AfterCreation != nil {
		order.ConfirmedAfterCreation = *update.AfterCreation
	}

	if update.BeforeDelivery != nil {
		order.ConfirmedBeforeDelivery = *update.BeforeDelivery
	}

	order.UpdatedAt = time.Now()
	m.orders[id] = order

	return nil
}

func (m *OrderMemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[id]; !ok {
		return ordering.ErrNotFound
	}

	delete(m.orders, id)

	return nil
}

func (m *OrderMemoryStore) ListByDeliveryDateRange(_ context.Context, start, end string) ([]ordering.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var orders []ordering.Order

	for _, order := range m.orders {
		if order.DeliveryDate >= start && order.DeliveryDate <= end {
			orders = append(orders, order)
		}
	}

	slices.SortFunc(orders, func(a, b ordering.Order) int {
		if c := strings.Compare(a.DeliveryDate, b.DeliveryDate); c != 0 {
			return c
		}

		return strings.Compare(a.CustomerName, b.CustomerName)
	})

	return orders, nil
}

// PromoMemoryStore is an in-memory implementation of ordering.PromoRepository.
type PromoMemoryStore struct {
	mu    sync.RWMutex
	codes map[string]ordering.PromoCode
}

// NewPromoMemoryStore creates a new in-memory promo code store.
func NewPromoMemoryStore() *PromoMemoryStore {
	return &PromoMemoryStore{
		codes: make(map[string]ordering.PromoCode),
	}
}

func (m *PromoMemoryStore) List(_ context.Context) ([]ordering.PromoCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	codes := make([]ordering.PromoCode, 0, len(m.codes))
	for _, code := range m.codes {
		codes = append(codes, code)
	}

	slices.SortFunc(codes, func(a, b ordering.PromoCode) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return codes, nil
}

func (m *PromoMemoryStore) GetByCode(_ context.Context, code string) (*ordering.PromoCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	promo, ok := m.codes[code]
	if !ok {
		return nil, ordering.ErrNotFound
	}

	return &promo, nil
}

func (m *PromoMemoryStore) Create(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.codes[code]; ok {
		return ordering.ErrAlreadyExists
	}

	m.codes[code] = ordering.PromoCode{Code: code, CreatedAt: time.Now()}

	return nil
}

func (m *PromoMemoryStore) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.codes[code]; !ok {
		return ordering.ErrNotFound
	}

	delete(m.codes, code)

	return nil
}

// BannerMemoryStore is an in-memory implementation of ordering.BannerRepository.
type BannerMemoryStore struct {
	mu      sync.RWMutex
	banners map[int64]ordering.Banner
	nextID  int64
}

// NewBannerMemoryStore creates a new in-memory banner store.
func NewBannerMemoryStore() *BannerMemoryStore {
	return &BannerMemoryStore{
		banners: make(map[int64]ordering.Banner),
		nextID:  1,
	}
}

func (m *BannerMemoryStore) List(_ context.Context) ([]ordering.Banner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	banners := make([]ordering.Banner, 0, len(m.banners))
	for _, banner := range m.banners {
		banners = append(banners, banner)
	}

	slices.SortFunc(banners, func(a, b ordering.Banner) int {
		if a.DisplayOrder != b.DisplayOrder {
			return int(a.DisplayOrder - b.DisplayOrder)
		}

		return int(a.ID - b.ID)
	})

	return banners, nil
}

func (m *BannerMemoryStore) GetByID(_ context.Context, id int64) (*ordering.Banner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	banner, ok := m.banners[id]
	if !ok {
		return nil, ordering.ErrNotFound
	}

	return &banner, nil
}

func (m *BannerMemoryStore) Create(_ context.Context, banner *ordering.Banner) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	stored := *banner
	stored.ID = id

	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	m.banners[id] = stored

	return id, nil
}

func (m *BannerMemoryStore) Update(_ context.Context, id int64, update ordering.BannerUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	banner, ok := m.banners[id]
	if !ok {
		return ordering.ErrNotFound
	}

	if update.Name != nil {
		banner.Name = *update.Name
	}

	if update.ItemLink != nil {
		banner.ItemLink = *update.ItemLink
	}

	if update.ImageURL != nil {
		banner.ImageURL = *update.ImageURL
	}

	if update.DisplayOrder != nil {
		banner.DisplayOrder = *update.DisplayOrder
	}

	m.banners[id] = banner

	return nil
}

func (m *BannerMemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.banners[id]; !ok {
		return ordering.ErrNotFound
	}

	delete(m.banners, id)

	return nil
}

// Compile-time checks.
var (
	_ ordering.MenuRepository   = (*MenuMemoryStore)(nil)
	_ ordering.OrderRepository  = (*OrderMemoryStore)(nil)
	_ ordering.PromoRepository  = (*PromoMemoryStore)(nil)
	_ ordering.BannerRepository = (*BannerMemoryStore)(nil)
)
