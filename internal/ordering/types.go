package ordering

import "time"

// MenuItem is a dish offered on the menu. Prices are whole RSD.
type MenuItem struct {
	ID          int64
	Name        string
	Category    string
	Description string
	Price       int64
	Image       string
}

// ItemSelection is a client's choice of a menu item and quantity. Prices are
// never taken from the client; selections are enriched from the menu.
type ItemSelection struct {
	ItemID   int64
	Quantity int64
}

// OrderItem is a priced line of an order, enriched from the menu at creation time.
type OrderItem struct {
	ItemID   int64
	Name     string
	Quantity int64
	Price    int64
}

// Order is a persisted customer order.
type Order struct {
	ID                      int64
	CustomerName            string
	CustomerContact         string
	DeliveryAddress         string
	DeliveryDate            string
	Comments                string
	Items                   []OrderItem
	ItemsSubtotal           int64
	DeliveryFee             int64
	TotalPrice              int64
	PromoCode               string
	OriginalPrice           int64
	DiscountAmount          int64
	ConfirmedAfterCreation  bool
	ConfirmedBeforeDelivery bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// PromoCode is a redeemable discount code.
type PromoCode struct {
	Code      string
	CreatedAt time.Time
}

// Banner is a promotional banner shown on the storefront.
type Banner struct {
	ID           int64
	Name         string
	ItemLink     string
	ImageURL     string
	DisplayOrder int64
	CreatedAt    time.Time
}
