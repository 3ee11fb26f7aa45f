package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/messaging"
	"github.com/foodikal/ordering-go/internal/notify"
	"github.com/foodikal/ordering-go/internal/ordering"
	"go.uber.org/zap"
)

// OrderHandler handles order creation and admin order management.
type OrderHandler struct {
	orders              ordering.OrderRepository
	menu                ordering.MenuRepository
	promos              ordering.PromoRepository
	publishOrderCreated messaging.Publish[notify.OrderCreatedEvent]
	logger              *zap.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	orders ordering.OrderRepository,
	menu ordering.MenuRepository,
	promos ordering.PromoRepository,
	publishOrderCreated messaging.Publish[notify.OrderCreatedEvent],
	logger *zap.Logger,
) *OrderHandler {
	return &OrderHandler{
		orders:              orders,
		menu:                menu,
		promos:              promos,
		publishOrderCreated: publishOrderCreated,
		logger:              logger,
	}
}

// CreateOrderRequest is the public order submission.
type CreateOrderRequest struct {
	Body struct {
		CustomerName    string                 `doc:"Customer name"                         json:"customer_name"`
		CustomerContact string                 `doc:"Phone (+...) or Telegram (@...) handle" json:"customer_contact"`
		CustomerEmail   string                 `doc:"Optional email"                        json:"customer_email,omitempty"`
		DeliveryAddress string                 `doc:"Delivery address"                      json:"delivery_address"`
		DeliveryDate    string                 `doc:"Delivery date (YYYY-MM-DD)"            json:"delivery_date"`
		Comments        string                 `doc:"Optional comments"                     json:"comments,omitempty"`
		PromoCode       string                 `doc:"Optional promo code"                   json:"promo_code,omitempty"`
		Items           []ItemSelectionPayload `doc:"Selected items"                        json:"order_items"`
	}
}

// CreateOrderResponse confirms a created order with its pricing.
type CreateOrderResponse struct {
	Status int
	Body   struct {
		Success        bool   `json:"success"`
		OrderID        int64  `json:"order_id"`
		TotalPrice     int64  `json:"total_price"`
		Message        string `json:"message"`
		OriginalPrice  int64  `json:"original_price,omitempty"`
		DiscountAmount int64  `json:"discount_amount,omitempty"`
		PromoCode      string `json:"promo_code,omitempty"`
	}
}

func (h *OrderHandler) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	draft := ordering.OrderDraft{
		CustomerName:    req.Body.CustomerName,
		CustomerContact: req.Body.CustomerContact,
		CustomerEmail:   req.Body.CustomerEmail,
		DeliveryAddress: req.Body.DeliveryAddress,
		DeliveryDate:    req.Body.DeliveryDate,
		Comments:        req.Body.Comments,
		PromoCode:       req.Body.PromoCode,
		Items:           toSelections(req.Body.Items),
	}

	if errs := ordering.ValidateDraft(draft); len(errs) > 0 {
		return nil, validationError("invalid order data", errs)
	}

	ids := make([]int64, 0, len(draft.Items))
	for _, item := range draft.Items {
		ids = append(ids, item.ItemID)
	}

	menuItems, err := h.menu.ListByIDs(ctx, ids)
	if err != nil {
		h.logger.Error("failed to fetch menu items for order", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create order")
	}

	items, subtotal, err := ordering.PriceItems(draft.Items, ordering.MenuLookup(menuItems))
	if err != nil {
		return nil, huma.Error404NotFound("menu items not found")
	}

	order := &ordering.Order{
		CustomerName:    draft.CustomerName,
		CustomerContact: draft.CustomerContact,
		DeliveryAddress: draft.DeliveryAddress,
		DeliveryDate:    draft.DeliveryDate,
		Comments:        draft.Comments,
		Items:           items,
		ItemsSubtotal:   subtotal,
		TotalPrice:      subtotal,
		OriginalPrice:   subtotal,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if draft.PromoCode != "" {
		if !ordering.ValidPromoCodeFormat(draft.PromoCode) {
			return nil, huma.Error400BadRequest("invalid promo code format")
		}

		if _, err := h.promos.GetByCode(ctx, draft.PromoCode); err != nil {
			if errors.Is(err, ordering.ErrNotFound) {
				return nil, huma.Error400BadRequest("promo code not found")
			}

			h.logger.Error("failed to look up promo code", zap.Error(err))

			return nil, huma.Error500InternalServerError("failed to create order")
		}

		total, discount := ordering.ApplyPromoDiscount(subtotal)
		order.PromoCode = draft.PromoCode
		order.TotalPrice = total
		order.DiscountAmount = discount
	}

	id, err := h.orders.Create(ctx, order)
	if err != nil {
		h.logger.Error("failed to create order", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create order")
	}

	order.ID = id

	h.logger.Info("order created",
		zap.Int64("order_id", id),
		zap.Int64("total_price", order.TotalPrice),
		zap.Int("items_count", len(order.Items)),
	)

	// Notification failures never fail the order
	if err := h.publishOrderCreated(ctx, notify.NewOrderCreatedEvent(order)); err != nil {
		h.logger.Error("failed to publish order created event",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
	}

	resp := &CreateOrderResponse{Status: 201}
	resp.Body.Success = true
	resp.Body.OrderID = id
	resp.Body.TotalPrice = order.TotalPrice
	resp.Body.Message = "Order created successfully"

	if order.PromoCode != "" {
		resp.Body.OriginalPrice = order.OriginalPrice
		resp.Body.DiscountAmount = order.DiscountAmount
		resp.Body.PromoCode = order.PromoCode
	}

	return resp, nil
}

// ListOrdersResponse lists all orders, newest first.
type ListOrdersResponse struct {
	Body struct {
		Success bool           `json:"success"`
		Count   int            `json:"count"`
		Orders  []OrderPayload `json:"orders"`
	}
}

func (h *OrderHandler) ListOrders(ctx context.Context, _ *struct{}) (*ListOrdersResponse, error) {
	orders, err := h.orders.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch orders", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch orders")
	}

	resp := &ListOrdersResponse{}
	resp.Body.Success = true
	resp.Body.Count = len(orders)
	resp.Body.Orders = orderPayloads(orders)

	return resp, nil
}

// UpdateOrderRequest updates confirmation flags on an order.
type UpdateOrderRequest struct {
	ID   int64 `doc:"Order ID" path:"id"`
	Body struct {
		ConfirmedAfterCreation  *bool `doc:"Confirmed shortly after creation"  json:"confirmed_after_creation,omitempty"`
		ConfirmedBeforeDelivery *bool `doc:"Confirmed on the day of delivery" json:"confirmed_before_delivery,omitempty"`
	}
}

// UpdateOrderResponse returns the updated order.
type UpdateOrderResponse struct {
	Body struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Order   OrderPayload `json:"order"`
	}
}

func (h *OrderHandler) UpdateOrder(ctx context.Context, req *UpdateOrderRequest) (*UpdateOrderResponse, error) {
	update := ordering.ConfirmationUpdate{
		AfterCreation:  req.Body.ConfirmedAfterCreation,
		BeforeDelivery: req.Body.ConfirmedBeforeDelivery,
	}
	if update.IsEmpty() {
		return nil, huma.Error400BadRequest("no valid fields to update")
	}

	if err := h.orders.UpdateConfirmations(ctx, req.ID, update); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}

		h.logger.Error("failed to update order", zap.Int64("order_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update order")
	}

	h.logger.Info("order updated", zap.Int64("order_id", req.ID))

	order, err := h.orders.GetByID(ctx, req.ID)
	if err != nil {
		h.logger.Error("failed to fetch updated order", zap.Int64("order_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update order")
	}

	resp := &UpdateOrderResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Order updated successfully"
	resp.Body.Order = orderPayload(order)

	return resp, nil
}

// DeleteOrderRequest identifies the order to remove.
type DeleteOrderRequest struct {
	ID int64 `doc:"Order ID" path:"id"`
}

func (h *OrderHandler) DeleteOrder(ctx context.Context, req *DeleteOrderRequest) (*MessageResponse, error) {
	if err := h.orders.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("order not found")
		}

		h.logger.Error("failed to delete order", zap.Int64("order_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete order")
	}

	h.logger.Info("order deleted", zap.Int64("order_id", req.ID))

	return messageResponse("Order deleted successfully"), nil
}

// validationError builds a 400 with one detail per failed field.
func validationError(msg string, fields map[string]string) error {
	details := make([]error, 0, len(fields))
	for field, message := range fields {
		details = append(details, &huma.ErrorDetail{
			Location: "body." + field,
			Message:  message,
		})
	}

	return huma.Error400BadRequest(msg, details...)
}
