package middleware_test

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodikal/ordering-go/internal/auth"
	"github.com/foodikal/ordering-go/internal/middleware"
	"github.com/foodikal/ordering-go/internal/ratelimit"
)

func adminOperation() *huma.Operation {
	return &huma.Operation{
		Path: "/api/admin/order_list",
		Metadata: map[string]any{
			auth.MetadataKey:      true,
			ratelimit.MetadataKey: ratelimit.PolicyAdmin.Name,
		},
	}
}

func TestAdminAuth(t *testing.T) {
	adminHash, err := auth.HashPassword("admin-secret")
	require.NoError(t, err)

	t.Run("passes through operations without the admin marker", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.operation = &huma.Operation{Path: "/api/menu"}

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.True(t, nextCalled, "public operations need no credentials")
	})

	t.Run("allows admin operations with valid credentials", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["Authorization"] = "Bearer admin-secret"
		ctx.operation = adminOperation()

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.True(t, nextCalled, "valid credentials should pass")
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["Authorization"] = "Bearer wrong-password"
		ctx.operation = adminOperation()

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.False(t, nextCalled, "next should not be called on bad credentials")
		assert.Equal(t, 401, ctx.statusCode)
		assert.Contains(t, string(ctx.written), "unauthorized")
	})

	t.Run("returns 401 on missing Authorization header", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.operation = adminOperation()

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.False(t, nextCalled)
		assert.Equal(t, 401, ctx.statusCode)
	})

	t.Run("locks the client out after repeated failures", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		for i := range ratelimit.PolicyFailedAuth.Limit {
			ctx := newMockHumaContext()
			ctx.host = testHostAddr
			ctx.headers["Authorization"] = "Bearer wrong-password"
			ctx.operation = adminOperation()

			mw(ctx, func(_ huma.Context) {})

			assert.Equal(t, 401, ctx.statusCode, "attempt %d should still be a plain 401", i+1)
		}

		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["Authorization"] = "Bearer wrong-password"
		ctx.operation = adminOperation()

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.False(t, nextCalled)
		assert.Equal(t, 429, ctx.statusCode)
		assert.Contains(t, string(ctx.written), "too many failed authentication attempts")
		assert.Equal(t, "900", ctx.setHeaders["Retry-After"])
	})

	t.Run("lockout does not affect other clients", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		for range ratelimit.PolicyFailedAuth.Limit + 1 {
			ctx := newMockHumaContext()
			ctx.host = testHostAddr
			ctx.headers["Authorization"] = "Bearer wrong-password"
			ctx.operation = adminOperation()

			mw(ctx, func(_ huma.Context) {})
		}

		ctx := newMockHumaContext()
		ctx.host = "192.168.1.2:12345"
		ctx.headers["Authorization"] = "Bearer wrong-password"
		ctx.operation = adminOperation()

		mw(ctx, func(_ huma.Context) {})

		assert.Equal(t, 401, ctx.statusCode, "a different client gets a fresh budget")
	})

	t.Run("valid credentials pass even after lockout", func(t *testing.T) {
		api := newTestAPI()
		mw := middleware.AdminAuth(api, newTestLimiter(), adminHash, zap.NewNop())

		for range ratelimit.PolicyFailedAuth.Limit + 1 {
			ctx := newMockHumaContext()
			ctx.host = testHostAddr
			ctx.headers["Authorization"] = "Bearer wrong-password"
			ctx.operation = adminOperation()

			mw(ctx, func(_ huma.Context) {})
		}

		// Only failed attempts count, so the real password still works
		ctx := newMockHumaContext()
		ctx.host = testHostAddr
		ctx.headers["Authorization"] = "Bearer admin-secret"
		ctx.operation = adminOperation()

		nextCalled := false

		mw(ctx, func(_ huma.Context) {
			nextCalled = true
		})

		assert.True(t, nextCalled, "valid credentials bypass the failed-auth counter")
	})
}
