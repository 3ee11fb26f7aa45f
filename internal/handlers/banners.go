package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/ordering"
	"go.uber.org/zap"
)

// BannerHandler handles storefront banner listing and admin banner management.
type BannerHandler struct {
	banners ordering.BannerRepository
	logger  *zap.Logger
}

// NewBannerHandler creates a new banner handler.
func NewBannerHandler(banners ordering.BannerRepository, logger *zap.Logger) *BannerHandler {
	return &BannerHandler{banners: banners, logger: logger}
}

// ListBannersResponse lists banners in display order.
type ListBannersResponse struct {
	Body struct {
		Success bool            `json:"success"`
		Count   int             `json:"count"`
		Banners []BannerPayload `json:"banners"`
	}
}

func (h *BannerHandler) ListBanners(ctx context.Context, _ *struct{}) (*ListBannersResponse, error) {
	banners, err := h.banners.List(ctx)
	if err != nil {
		h.logger.Error("failed to fetch banners", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to fetch banners")
	}

	resp := &ListBannersResponse{}
	resp.Body.Success = true
	resp.Body.Count = len(banners)
	resp.Body.Banners = bannerPayloads(banners)

	return resp, nil
}

// CreateBannerRequest is the admin request to add a banner.
type CreateBannerRequest struct {
	Body struct {
		Name         string `doc:"Banner name"                 json:"name"          minLength:"1"`
		ItemLink     string `doc:"Optional link to a menu item" json:"item_link,omitempty"`
		ImageURL     string `doc:"Banner image URL"            json:"image_url"     minLength:"1"`
		DisplayOrder int64  `doc:"Position in the carousel"    json:"display_order" minimum:"0"`
	}
}

// CreateBannerResponse confirms a created banner.
type CreateBannerResponse struct {
	Status int
	Body   struct {
		Success  bool   `json:"success"`
		BannerID int64  `json:"banner_id"`
		Message  string `json:"message"`
	}
}

func (h *BannerHandler) CreateBanner(ctx context.Context, req *CreateBannerRequest) (*CreateBannerResponse, error) {
	id, err := h.banners.Create(ctx, &ordering.Banner{
		Name:         req.Body.Name,
		ItemLink:     req.Body.ItemLink,
		ImageURL:     req.Body.ImageURL,
		DisplayOrder: req.Body.DisplayOrder,
	})
	if err != nil {
		h.logger.Error("failed to create banner", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to create banner")
	}

	h.logger.Info("banner created", zap.Int64("banner_id", id), zap.String("name", req.Body.Name))

	resp := &CreateBannerResponse{Status: 201}
	resp.Body.Success = true
	resp.Body.BannerID = id
	resp.Body.Message = "Banner created successfully"

	return resp, nil
}

// UpdateBannerRequest is a partial admin update of a banner.
type UpdateBannerRequest struct {
	ID   int64 `doc:"Banner ID" path:"id"`
	Body struct {
		Name         *string `doc:"Banner name"                 json:"name,omitempty"`
		ItemLink     *string `doc:"Link to a menu item"         json:"item_link,omitempty"`
		ImageURL     *string `doc:"Banner image URL"            json:"image_url,omitempty"`
		DisplayOrder *int64  `doc:"Position in the carousel"    json:"display_order,omitempty" minimum:"0"`
	}
}

// UpdateBannerResponse returns the updated banner.
type UpdateBannerResponse struct {
	Body struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Banner  BannerPayload `json:"banner"`
	}
}

func (h *BannerHandler) UpdateBanner(ctx context.Context, req *UpdateBannerRequest) (*UpdateBannerResponse, error) {
	err := h.banners.Update(ctx, req.ID, ordering.BannerUpdate{
		Name:         req.Body.Name,
		ItemLink:     req.Body.ItemLink,
		ImageURL:     req.Body.ImageURL,
		DisplayOrder: req.Body.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("banner not found")
		}

		h.logger.Error("failed to update banner", zap.Int64("banner_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update banner")
	}

	h.logger.Info("banner updated", zap.Int64("banner_id", req.ID))

	banner, err := h.banners.GetByID(ctx, req.ID)
	if err != nil {
		h.logger.Error("failed to fetch updated banner", zap.Int64("banner_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to update banner")
	}

	resp := &UpdateBannerResponse{}
	resp.Body.Success = true
	resp.Body.Message = "Banner updated successfully"
	resp.Body.Banner = bannerPayload(banner)

	return resp, nil
}

// DeleteBannerRequest identifies the banner to remove.
type DeleteBannerRequest struct {
	ID int64 `doc:"Banner ID" path:"id"`
}

func (h *BannerHandler) DeleteBanner(ctx context.Context, req *DeleteBannerRequest) (*MessageResponse, error) {
	if err := h.banners.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			return nil, huma.Error404NotFound("banner not found")
		}

		h.logger.Error("failed to delete banner", zap.Int64("banner_id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to delete banner")
	}

	h.logger.Info("banner deleted", zap.Int64("banner_id", req.ID))

	return messageResponse("Banner deleted successfully"), nil
}
