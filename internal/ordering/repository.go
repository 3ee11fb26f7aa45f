package ordering

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when an entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when creating an entity whose key is taken.
var ErrAlreadyExists = errors.New("already exists")

// MenuRepository stores menu items.
type MenuRepository interface {
	List(ctx context.Context) ([]MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]MenuItem, error)
	ListByIDs(ctx context.Context, ids []int64) ([]MenuItem, error)
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	Create(ctx context.Context, item *MenuItem) (int64, error)
	Update(ctx context.Context, id int64, update MenuItemUpdate) error
	Delete(ctx context.Context, id int64) error
}

// MenuItemUpdate is a partial update; nil fields are left unchanged.
type MenuItemUpdate struct {
	Name        *string
	Category    *string
	Description *string
	Price       *int64
	Image       *string
}

// OrderRepository stores customer orders.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) (int64, error)
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	UpdateConfirmations(ctx context.Context, id int64, update ConfirmationUpdate) error
	Delete(ctx context.Context, id int64) error

	// ListByDeliveryDateRange returns orders with a delivery date between
	// start and end inclusive, ordered by delivery date then customer name.
	ListByDeliveryDateRange(ctx context.Context, start, end string) ([]Order, error)
}

// ConfirmationUpdate updates order confirmation flags; nil fields are left unchanged.
type ConfirmationUpdate struct {
	AfterCreation  *bool
	BeforeDelivery *bool
}

// IsEmpty reports whether the update carries no changes.
func (u ConfirmationUpdate) IsEmpty() bool {
	return u.AfterCreation == nil && u.BeforeDelivery == nil
}

// PromoRepository stores promo codes.
type PromoRepository interface {
	List(ctx context.Context) ([]PromoCode, error)
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	Create(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) error
}

// BannerRepository stores storefront banners.
type BannerRepository interface {
	List(ctx context.Context) ([]Banner, error)
	GetByID(ctx context.Context, id int64) (*Banner, error)
	Create(ctx context.Context, banner *Banner) (int64, error)
	Update(ctx context.Context, id int64, update BannerUpdate) error
	Delete(ctx context.Context, id int64) error
}

// BannerUpdate is a partial update; nil fields are left unchanged.
type BannerUpdate struct {
	Name         *string
	ItemLink     *string
	ImageURL     *string
	DisplayOrder *int64
}
