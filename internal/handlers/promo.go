package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/ordering"
	"go.uber.org/zap"
)

// PromoHandler handles public promo validation and admin promo management.
type PromoHandler struct {
	promos  ordering.PromoRepository
	menu    ordering.MenuRepository
	newCode func() string
	logger  *zap.Logger
}

// NewPromoHandler creates a new promo handler. newCode generates codes for
// admin requests that do not supply one.
func NewPromoHandler(
	promos ordering.PromoRepository,
	menu ordering.MenuRepository,
	newCode func() string,
	logger *zap.Logger,
) *PromoHandler {
	return &PromoHandler{promos: promos, menu: menu, newCode: newCode, logger: logger}
}

// ValidatePromoRequest checks a promo code against a cart.
type ValidatePromoRequest struct {
	Body struct {
		PromoCode string                 `doc:"Promo code to validate" json:"promo_code"`
		Items     []ItemSelectionPayload `doc:"Selected items"         json:"order_items"`
	}
}

// ValidatePromoResponse reports whether the code is valid and the resulting
// pricing. An unknown code is a valid response with Valid false, not an error.
type ValidatePromoResponse struct {
	Body struct {
		Success        bool   `json:"success"`
		Valid          bool   `json:"valid"`
		Error          string `json:"error,omitempty"`
		Subtotal       int64  `json:"subtotal,omitempty"`
		DiscountAmount int64  `json:"discount_amount,omitempty"`
		FinalTotal     int64  `json:"final_total,omitempty"`
	}
}

func (h *PromoHandler) ValidatePromo(ctx context.Context, req *ValidatePromoRequest) (*ValidatePromoResponse, error) {
	if !ordering.ValidPromoCodeFormat(req.Body.PromoCode) {
		return nil, huma.Error400BadRequest("invalid promo code format")
	}

	if len(req.Body.Items) == 0 {
		return nil, huma.Error400BadRequest("order items are required")
	}

	menuItems, err := h.menu.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch menu for promo validation", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to validate promo code")
	}

	if len(menuItems) == 0 {
		return nil, huma.Error400BadRequest("menu is empty")
	}

	_, subtotal, err := ordering.PriceItems(toSelections(req.Body.Items), ordering.MenuLookup(menuItems))
	if err != nil {
		return nil, huma.Error404NotFound("menu items not found")
	}

	resp := &ValidatePromoResponse{}
	resp.Body.Success = true

	if _, err := h.promos.GetByCode(ctx, req.Body.PromoCode); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			resp.Body.Valid = false
			resp.Body.Error = "Промокод не найден"

			return resp, nil
		}

		h.logger.Error("failed to look up promo code", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to validate promo code")
	}

	total, discount := ordering.ApplyPromoDiscount(subtotal)

	resp.Body.Valid = true
	resp.Body.Subtotal = subtotal
	resp.Body.DiscountAmount = discount
	resp.Body.FinalTotal = total

	return resp, nil
}

// ListPromoCodesResponse lists all promo codes, newest first.
type ListPromoCodesResponse struct {
	Body struct {
		Success    bool               `json:"success"`
		Count      int                `json:"count"`
		PromoCodes []PromoCodePayload `json:"promo_codes"`
	}
}

func (h *PromoHandler) ListPromoCodes(ctx context.Context, _ *struct{}) (*ListPromoCodesResponse, error) {
	codes, err := h.promos.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch promo codes", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch promo codes")
	}

	resp := &ListPromoCodesResponse{}
	resp.Body.Success = true
	resp.Body.Count = len(codes)
	resp.Body.PromoCodes = promoCodePayloads(codes)

	return resp, nil
}

// CreatePromoCodeRequest creates a promo code. When no code is supplied one
// is generated.
type CreatePromoCodeRequest struct {
	Body struct {
		Code string `doc:"Promo code; generated when omitted" json:"code,omitempty"`
	}
}

// CreatePromoCodeResponse confirms a created promo code.
type CreatePromoCodeResponse struct {
	Status int
	Body   struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
}

func (h *PromoHandler) CreatePromoCode(ctx context.Context, req *CreatePromoCodeRequest) (*CreatePromoCodeResponse, error) {
	code := req.Body.Code
	if code == "" {
		code = h.newCode()
	}

	if !ordering.ValidPromoCodeFormat(code) {
		return nil, huma.Error400BadRequest("invalid promo code format")
	}

	if err := h.promos.Create(ctx, code); err != nil {
		if errors.Is(err, ordering.ErrAlreadyExists) {
			return nil, huma.Error400BadRequest("promo code already exists")
		}

		h.logger.Error("failed to create promo code", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create promo code")
	}

	h.logger.Info("promo code created", zap.String("code", code))

	resp := &CreatePromoCodeResponse{Status: 201}
	resp.Body.Success = true
	resp.Body.Code = code
	resp.Body.Message = "Promo code created successfully"

	return resp, nil
}

// DeletePromoCodeRequest identifies the promo code to remove.
type DeletePromoCodeRequest struct {
	Code string `doc:"Promo code" path:"code"`
}

func (h *PromoHandler) DeletePromoCode(ctx context.Context, req *DeletePromoCodeRequest) (*MessageResponse, error) {
	if err := h.promos.Delete(ctx, req.Code); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("promo code not found")
		}

		h.logger.Error("failed to delete promo code", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete promo code")
	}

	h.logger.Info("promo code deleted", zap.String("code", req.Code))

	return messageResponse("Promo code deleted successfully"), nil
}
