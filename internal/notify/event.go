package notify

import (
	"time"

	"github.com/foodikal/ordering-go/internal/ordering"
)

// TopicOrderCreated is the topic order creation events are published to.
const TopicOrderCreated = "order.created"

// OrderCreatedEvent is emitted after an order has been persisted.
type OrderCreatedEvent struct {
	OrderID         int64       `json:"orderId"`
	CustomerName    string      `json:"customerName"`
	CustomerContact string      `json:"customerContact"`
	DeliveryAddress string      `json:"deliveryAddress"`
	DeliveryDate    string      `json:"deliveryDate"`
	Comments        string      `json:"comments,omitempty"`
	Items           []EventItem `json:"items"`
	ItemsSubtotal   int64       `json:"itemsSubtotal"`
	DeliveryFee     int64       `json:"deliveryFee"`
	TotalPrice      int64       `json:"totalPrice"`
	PromoCode       string      `json:"promoCode,omitempty"`
	DiscountAmount  int64       `json:"discountAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// EventItem is a priced order line carried in an event payload.
type EventItem struct {
	ItemID   int64  `json:"itemId"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
}

// NewOrderCreatedEvent builds the event for a persisted order.
func NewOrderCreatedEvent(order *ordering.Order) *OrderCreatedEvent {
	items := make([]EventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, EventItem{
			ItemID:   item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &OrderCreatedEvent{
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		CustomerContact: order.CustomerContact,
		DeliveryAddress: order.DeliveryAddress,
		DeliveryDate:    order.DeliveryDate,
		Comments:        order.Comments,
		Items:           items,
		ItemsSubtotal:   order.ItemsSubtotal,
		DeliveryFee:     order.DeliveryFee,
		TotalPrice:      order.TotalPrice,
		PromoCode:       order.PromoCode,
		DiscountAmount:  order.DiscountAmount,
		CreatedAt:       order.CreatedAt,
	}
}
