package handlers

import (
	"time"

	"github.com/foodikal/ordering-go/internal/ordering"
)

// MenuItemPayload is the wire representation of a menu item.
type MenuItemPayload struct {
	ID          int64  `doc:"Menu item ID"              json:"id"`
	Name        string `doc:"Dish name"                 json:"name"`
	Category    string `doc:"Menu category"             json:"category"`
	Description string `doc:"Dish description"          json:"description,omitempty"`
	Price       int64  `doc:"Price in whole RSD"        json:"price"`
	Image       string `doc:"Image URL"                 json:"image,omitempty"`
}

func menuItemPayload(item ordering.MenuItem) MenuItemPayload {
	return MenuItemPayload{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
	}
}

func menuItemPayloads(items []ordering.MenuItem) []MenuItemPayload {
	payloads := make([]MenuItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, menuItemPayload(item))
	}

	return payloads
}

// OrderItemPayload is one priced line of an order.
type OrderItemPayload struct {
	ItemID   int64  `doc:"Menu item ID"          json:"item_id"`
	Name     string `doc:"Dish name"             json:"name"`
	Quantity int64  `doc:"Quantity ordered"      json:"quantity"`
	Price    int64  `doc:"Unit price in RSD"     json:"price"`
}

// ItemSelectionPayload is a client's choice of item and quantity. The price
// is always looked up server-side.
type ItemSelectionPayload struct {
	ItemID   int64 `doc:"Menu item ID"                           json:"item_id"`
	Quantity int64 `doc:"Quantity ordered" maximum:"50" minimum:"1" json:"quantity"`
}

func toSelections(payloads []ItemSelectionPayload) []ordering.ItemSelection {
	selections := make([]ordering.ItemSelection, 0, len(payloads))
	for _, p := range payloads {
		selections = append(selections, ordering.ItemSelection{
			ItemID:   p.ItemID,
			Quantity: p.Quantity,
		})
	}

	return selections
}

// OrderPayload is the wire representation of a stored order.
type OrderPayload struct {
	ID                      int64              `json:"id"`
	CustomerName            string             `json:"customer_name"`
	CustomerContact         string             `json:"customer_contact"`
	DeliveryAddress         string             `json:"delivery_address"`
	DeliveryDate            string             `json:"delivery_date"`
	Comments                string             `json:"comments,omitempty"`
	Items                   []OrderItemPayload `json:"order_items"`
	ItemsSubtotal           int64              `json:"items_subtotal"`
	DeliveryFee             int64              `json:"delivery_fee"`
	TotalPrice              int64              `json:"total_price"`
	PromoCode               string             `json:"promo_code,omitempty"`
	OriginalPrice           int64              `json:"original_price"`
	DiscountAmount          int64              `json:"discount_amount"`
	ConfirmedAfterCreation  bool               `json:"confirmed_after_creation"`
	ConfirmedBeforeDelivery bool               `json:"confirmed_before_delivery"`
	CreatedAt               time.Time          `json:"created_at"`
	UpdatedAt               time.Time          `json:"updated_at"`
}

func orderPayload(order *ordering.Order) OrderPayload {
	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemPayload{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return OrderPayload{
		ID:                      order.ID,
		CustomerName:            order.CustomerName,
		CustomerContact:         order.CustomerContact,
		DeliveryAddress:         order.DeliveryAddress,
		DeliveryDate:            order.DeliveryDate,
		Comments:                order.Comments,
		Items:                   items,
		ItemsSubtotal:           order.ItemsSubtotal,
		DeliveryFee:             order.DeliveryFee,
		TotalPrice:              order.TotalPrice,
		PromoCode:               order.PromoCode,
		OriginalPrice:           order.OriginalPrice,
		DiscountAmount:          order.DiscountAmount,
		ConfirmedAfterCreation:  order.ConfirmedAfterCreation,
		ConfirmedBeforeDelivery: order.ConfirmedBeforeDelivery,
		CreatedAt:               order.CreatedAt,
		UpdatedAt:               order.UpdatedAt,
	}
}

func orderPayloads(orders []ordering.Order) []OrderPayload {
	payloads := make([]OrderPayload, 0, len(orders))
	for i := range orders {
		payloads = append(payloads, orderPayload(&orders[i]))
	}

	return payloads
}

// BannerPayload is the wire representation of a storefront banner.
type BannerPayload struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ItemLink     string    `json:"item_link,omitempty"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int64     `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func bannerPayload(banner *ordering.Banner) BannerPayload {
	return BannerPayload{
		ID:           banner.ID,
		Name:         banner.Name,
		ItemLink:     banner.ItemLink,
		ImageURL:     banner.ImageURL,
		DisplayOrder: banner.DisplayOrder,
		CreatedAt:    banner.CreatedAt,
	}
}

func bannerPayloads(banners []ordering.Banner) []BannerPayload {
	payloads := make([]BannerPayload, 0, len(banners))
	for i := range banners {
		payloads = append(payloads, bannerPayload(&banners[i]))
	}

	return payloads
}

// PromoCodePayload is the wire representation of a promo code.
type PromoCodePayload struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func promoCodePayloads(codes []ordering.PromoCode) []PromoCodePayload {
	payloads := make([]PromoCodePayload, 0, len(codes))
	for _, code := range codes {
		payloads = append(payloads, PromoCodePayload{Code: code.Code, CreatedAt: code.CreatedAt})
	}

	return payloads
}
