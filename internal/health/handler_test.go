package health_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodikal/ordering-go/internal/health"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) Ping(_ context.Context) error {
	return m.err
}

func TestNewHandler(t *testing.T) {
	handler := health.NewHandler(&mockChecker{}, &mockChecker{})

	assert.NotNil(t, handler)
}

func TestHandler_Check(t *testing.T) {
	t.Run("returns ok when all dependencies are healthy", func(t *testing.T) {
		handler := health.NewHandler(&mockChecker{}, &mockChecker{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Redis)
		assert.Equal(t, "healthy", resp.Body.Postgres)
	})

	t.Run("returns degraded when redis is unhealthy", func(t *testing.T) {
		redisChecker := &mockChecker{err: errors.New("connection refused")}
		handler := health.NewHandler(redisChecker, &mockChecker{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Redis)
		assert.Equal(t, "healthy", resp.Body.Postgres)
	})

	t.Run("returns degraded when postgres is unhealthy", func(t *testing.T) {
		pgChecker := &mockChecker{err: errors.New("connection refused")}
		handler := health.NewHandler(&mockChecker{}, pgChecker)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Redis)
		assert.Equal(t, "unhealthy", resp.Body.Postgres)
	})
}

func TestRedisChecker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	t.Run("NewRedisChecker creates checker", func(t *testing.T) {
		checker := health.NewRedisChecker(client)

		assert.NotNil(t, checker)
	})

	t.Run("Ping returns nil when redis is available", func(t *testing.T) {
		checker := health.NewRedisChecker(client)

		err := checker.Ping(context.Background())

		assert.NoError(t, err)
	})
}
