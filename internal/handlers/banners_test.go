package handlers_test

import (
	"context"
	"testing"

	"github.com/foodikal/ordering-go/internal/handlers"
	"github.com/foodikal/ordering-go/internal/ordering"
	"github.com/foodikal/ordering-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBannerHandler(t *testing.T) (*handlers.BannerHandler, *store.BannerMemoryStore) {
	t.Helper()

	s := store.NewBannerMemoryStore()

	return handlers.NewBannerHandler(s, zap.NewNop()), s
}

func TestListBanners(t *testing.T) {
	t.Run("lists banners in display order", func(t *testing.T) {
		handler, s := newBannerHandler(t)

		_, _ = s.Create(context.Background(), &ordering.Banner{Name: "second", ImageURL: "https://img/2.png", DisplayOrder: 2})
		_, _ = s.Create(context.Background(), &ordering.Banner{Name: "first", ImageURL: "https://img/1.png", DisplayOrder: 1})

		resp, err := handler.ListBanners(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Body.Count)
		require.Len(t, resp.Body.Banners, 2)
		assert.Equal(t, "first", resp.Body.Banners[0].Name)
	})
}

func TestCreateBanner(t *testing.T) {
	t.Run("creates a banner", func(t *testing.T) {
		handler, s := newBannerHandler(t)

		req := &handlers.CreateBannerRequest{}
		req.Body.Name = "promo"
		req.Body.ImageURL = "https://img/promo.png"
		req.Body.DisplayOrder = 1

		resp, err := handler.CreateBanner(context.Background(), req)

		require.NoError(t, err)
		assert.True(t, resp.Body.Success)

		banner, err := s.GetByID(context.Background(), resp.Body.BannerID)
		require.NoError(t, err)
		assert.Equal(t, "promo", banner.Name)
	})
}

func TestUpdateBanner(t *testing.T) {
	t.Run("applies partial update and returns the banner", func(t *testing.T) {
		handler, s := newBannerHandler(t)

		id, _ := s.Create(context.Background(), &ordering.Banner{Name: "promo", ImageURL: "https://img/1.png"})

		url := "https://img/2.png"
		req := &handlers.UpdateBannerRequest{ID: id}
		req.Body.ImageURL = &url

		resp, err := handler.UpdateBanner(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "https://img/2.png", resp.Body.Banner.ImageURL)
		assert.Equal(t, "promo", resp.Body.Banner.Name)
	})

	t.Run("returns 404 for missing banner", func(t *testing.T) {
		handler, _ := newBannerHandler(t)

		name := "x"
		req := &handlers.UpdateBannerRequest{ID: 42}
		req.Body.Name = &name

		resp, err := handler.UpdateBanner(context.Background(), req)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}

func TestDeleteBanner(t *testing.T) {
	t.Run("deletes a banner", func(t *testing.T) {
		handler, s := newBannerHandler(t)

		id, _ := s.Create(context.Background(), &ordering.Banner{Name: "promo", ImageURL: "https://img/1.png"})

		resp, err := handler.DeleteBanner(context.Background(), &handlers.DeleteBannerRequest{ID: id})

		require.NoError(t, err)
		assert.True(t, resp.Body.Success)
	})

	t.Run("returns 404 for missing banner", func(t *testing.T) {
		handler, _ := newBannerHandler(t)

		resp, err := handler.DeleteBanner(context.Background(), &handlers.DeleteBannerRequest{ID: 42})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
