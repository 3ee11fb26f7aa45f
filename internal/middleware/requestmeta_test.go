package middleware_test

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"

	"github.com/foodikal/ordering-go/internal/handlers"
	"github.com/foodikal/ordering-go/internal/middleware"
)

func TestRequestMeta(t *testing.T) {
	t.Run("adds client IP and user agent to context", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.RequestMeta(api)

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["User-Agent"] = testUserAgent

		var meta handlers.RequestMeta

		mw(ctx, func(next huma.Context) {
			meta = handlers.RequestMetaFromContext(next.Context())
		})

		assert.Equal(t, "192.168.1.1", meta.ClientIP)
		assert.Equal(t, testUserAgent, meta.UserAgent)
	})

	t.Run("prefers X-Forwarded-For over host", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.RequestMeta(api)

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["X-Forwarded-For"] = "203.0.113.195, 70.41.3.18"

		var meta handlers.RequestMeta

		mw(ctx, func(next huma.Context) {
			meta = handlers.RequestMetaFromContext(next.Context())
		})

		assert.Equal(t, "203.0.113.195", meta.ClientIP)
	})

	t.Run("empty meta when nothing is set", func(t *testing.T) {
		meta := handlers.RequestMetaFromContext(t.Context())

		assert.Empty(t, meta.ClientIP)
		assert.Empty(t, meta.UserAgent)
	})
}
