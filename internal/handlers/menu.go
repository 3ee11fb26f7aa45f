package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/ordering"
	"go.uber.org/zap"
)

// MenuHandler handles menu browsing and admin menu management.
type MenuHandler struct {
	menu   ordering.MenuRepository
	logger *zap.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu ordering.MenuRepository, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, logger: logger}
}

// GetMenuResponse is the full menu grouped by category.
type GetMenuResponse struct {
	Body map[string][]MenuItemPayload
}

func (h *MenuHandler) GetMenu(ctx context.Context, _ *struct{}) (*GetMenuResponse, error) {
	items, err := h.menu.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch menu", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch menu")
	}

	grouped := make(map[string][]MenuItemPayload, len(ordering.Categories))
	for category, categoryItems := range ordering.GroupByCategory(items) {
		grouped[category] = menuItemPayloads(categoryItems)
	}

	return &GetMenuResponse{Body: grouped}, nil
}

// GetMenuByCategoryRequest selects a single menu category.
type GetMenuByCategoryRequest struct {
	Category string `doc:"Menu category name" example:"Салат" path:"category"`
}

// GetMenuByCategoryResponse lists the items of one category.
type GetMenuByCategoryResponse struct {
	Body struct {
		Success  bool              `json:"success"`
		Category string            `json:"category"`
		Data     []MenuItemPayload `json:"data"`
	}
}

func (h *MenuHandler) GetMenuByCategory(ctx context.Context, req *GetMenuByCategoryRequest) (*GetMenuByCategoryResponse, error) {
	if !ordering.ValidCategory(req.Category) {
		return nil, huma.Error404NotFound("invalid category")
	}

	items, err := h.menu.ListByCategory(ctx, req.Category)
	if err != nil {
		h.logger.Error("failed to fetch menu category",
			zap.String("category", req.Category),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("failed to fetch menu category")
	}

	resp := &GetMenuByCategoryResponse{}
	resp.Body.Success = true
	resp.Body.Category = req.Category
	resp.Body.Data = menuItemPayloads(items)

	return resp, nil
}

// AddMenuItemRequest is the admin request to add a dish.
type AddMenuItemRequest struct {
	Body struct {
		Name        string `doc:"Dish name"          json:"name"        minLength:"1"`
		Category    string `doc:"Menu category"      json:"category"`
		Description string `doc:"Dish description"   json:"description,omitempty"`
		Price       int64  `doc:"Price in whole RSD" json:"price"       minimum:"0"`
		Image       string `doc:"Image URL"          json:"image,omitempty"`
	}
}

// AddMenuItemResponse confirms a created menu item.
type AddMenuItemResponse struct {
	Status int
	Body   struct {
		Success    bool   `json:"success"`
		MenuItemID int64  `json:"menu_item_id"`
		Message    string `json:"message"`
	}
}

func (h *MenuHandler) AddMenuItem(ctx context.Context, req *AddMenuItemRequest) (*AddMenuItemResponse, error) {
	if !ordering.ValidCategory(req.Body.Category) {
		return nil, huma.Error400BadRequest(
			fmt.Sprintf("invalid category: must be one of %s", strings.Join(ordering.Categories, ", ")))
	}

	id, err := h.menu.Create(ctx, &ordering.MenuItem{
		Name:        strings.TrimSpace(req.Body.Name),
		Category:    req.Body.Category,
		Description: req.Body.Description,
		Price:       req.Body.Price,
		Image:       req.Body.Image,
	})
	if err != nil {
		h.logger.Error("failed to create menu item", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create menu item")
	}

	h.logger.Info("menu item created", zap.Int64("item_id", id), zap.String("name", req.Body.Name))

	resp := &AddMenuItemResponse{Status: 201}
	resp.Body.Success = true
	resp.Body.MenuItemID = id
	resp.Body.Message = "Menu item created successfully"

	return resp, nil
}

// UpdateMenuItemRequest is a partial admin update of a dish.
type UpdateMenuItemRequest struct {
	ID   int64 `doc:"Menu item ID" path:"id"`
	Body struct {
		Name        *string `doc:"Dish name"          json:"name,omitempty"`
		Category    *string `doc:"Menu category"      json:"category,omitempty"`
		Description *string `doc:"Dish description"   json:"description,omitempty"`
		Price       *int64  `doc:"Price in whole RSD" json:"price,omitempty"       minimum:"0"`
		Image       *string `doc:"Image URL"          json:"image,omitempty"`
	}
}

// MessageResponse is a success envelope carrying only a message.
type MessageResponse struct {
	Body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
}

func messageResponse(message string) *MessageResponse {
	resp := &MessageResponse{}
	resp.Body.Success = true
	resp.Body.Message = message

	return resp
}

func (h *MenuHandler) UpdateMenuItem(ctx context.Context, req *UpdateMenuItemRequest) (*MessageResponse, error) {
	if req.Body.Category != nil && !ordering.ValidCategory(*req.Body.Category) {
		return nil, huma.Error400BadRequest(
			fmt.Sprintf("invalid category: must be one of %s", strings.Join(ordering.Categories, ", ")))
	}

	err := h.menu.Update(ctx, req.ID, ordering.MenuItemUpdate{
		Name:        req.Body.Name,
		Category:    req.Body.Category,
		Description: req.Body.Description,
		Price:       req.Body.Price,
		Image:       req.Body.Image,
	})
	if err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("menu item not found")
		}

		h.logger.Error("failed to update menu item", zap.Int64("item_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update menu item")
	}

	h.logger.Info("menu item updated", zap.Int64("item_id", req.ID))

	return messageResponse("Menu item updated successfully"), nil
}

// DeleteMenuItemRequest identifies the dish to remove.
type DeleteMenuItemRequest struct {
	ID int64 `doc:"Menu item ID" path:"id"`
}

func (h *MenuHandler) DeleteMenuItem(ctx context.Context, req *DeleteMenuItemRequest) (*MessageResponse, error) {
	if err := h.menu.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("menu item not found")
		}

		h.logger.Error("failed to delete menu item", zap.Int64("item_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete menu item")
	}

	h.logger.Info("menu item deleted", zap.Int64("item_id", req.ID))

	return messageResponse("Menu item deleted successfully"), nil
}
