package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodikal/ordering-go/internal/ratelimit"
	"github.com/foodikal/ordering-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// manualClock is a Clock advanced by hand.
type manualClock struct {
	now int64
}

func (c *manualClock) Now() int64 {
	return c.now
}

// spyStore wraps another store and records calls.
type spyStore struct {
	inner      ratelimit.Store
	puts       int
	lastPutCtx context.Context
}

func (s *spyStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, key)
}

func (s *spyStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	s.puts++
	s.lastPutCtx = ctx

	return s.inner.Put(ctx, key, value, ttl)
}

// failingStore raises a transport error on every call.
type failingStore struct{}

var errTransport = errors.New("connection refused")

func (failingStore) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, errTransport
}

func (failingStore) Put(_ context.Context, _, _ string, _ time.Duration) error {
	return errTransport
}

func newTestLimiter(s ratelimit.Store, clock ratelimit.Clock) *ratelimit.Limiter {
	return ratelimit.New(s, clock, zap.NewNop())
}

func TestCheckFirstCall(t *testing.T) {
	policies := []ratelimit.Policy{
		ratelimit.PolicyPublicRead,
		ratelimit.PolicyOrderCreation,
		ratelimit.PolicyPromoValidation,
		ratelimit.PolicyAdmin,
		ratelimit.PolicyFailedAuth,
	}

	for _, policy := range policies {
		t.Run(policy.Name, func(t *testing.T) {
			limiter := newTestLimiter(store.NewRateLimitMemoryStore(), &manualClock{now: 100})

			allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

			assert.True(t, allowed)
			assert.Zero(t, retryAfter)
		})
	}
}

func TestCheckExhaustsLimit(t *testing.T) {
	clock := &manualClock{now: 100}
	limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)
	policy := ratelimit.PolicyOrderCreation

	for i := int64(0); i < policy.Limit; i++ {
		allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

		require.True(t, allowed, "call %d should be allowed", i+1)
		require.Zero(t, retryAfter)
	}

	allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

	assert.False(t, allowed)
	assert.Positive(t, retryAfter)
	assert.LessOrEqual(t, retryAfter, policy.Window)
}

func TestCheckWindowRollover(t *testing.T) {
	clock := &manualClock{now: 100}
	memStore := store.NewRateLimitMemoryStore()
	limiter := newTestLimiter(memStore, clock)
	policy := ratelimit.PolicyOrderCreation

	for i := int64(0); i < policy.Limit; i++ {
		allowed, _ := limiter.Check(context.Background(), "10.0.0.1", policy)
		require.True(t, allowed)
	}

	allowed, _ := limiter.Check(context.Background(), "10.0.0.1", policy)
	require.False(t, allowed, "limit should be exhausted")

	// Advance past the window boundary: the stale count is discarded and the
	// effective count resets to 1.
	clock.now += policy.Window

	allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

	require.True(t, allowed)
	require.Zero(t, retryAfter)

	// Re-exhausting takes limit-1 further calls before the next rejection.
	for i := int64(1); i < policy.Limit; i++ {
		allowed, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
		require.True(t, allowed, "call %d of the new window should be allowed", i+1)
	}

	allowed, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
	assert.False(t, allowed)
}

func TestCheckRetryAfter(t *testing.T) {
	t.Run("equals remaining window at the moment of rejection", func(t *testing.T) {
		clock := &manualClock{now: 0}
		limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)
		policy := ratelimit.PolicyOrderCreation

		for i := int64(0); i < policy.Limit; i++ {
			_, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
		}

		clock.now = 13

		allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

		require.False(t, allowed)
		assert.Equal(t, policy.Window-13, retryAfter)
	})

	t.Run("strictly decreases across successive rejections", func(t *testing.T) {
		clock := &manualClock{now: 0}
		limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)
		policy := ratelimit.PolicyOrderCreation

		for i := int64(0); i < policy.Limit; i++ {
			_, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
		}

		previous := policy.Window + 1

		for _, now := range []int64{5, 17, 42} {
			clock.now = now

			allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

			require.False(t, allowed)
			assert.Less(t, retryAfter, previous)

			previous = retryAfter
		}
	})
}

func TestCheckRejectionDoesNotWrite(t *testing.T) {
	clock := &manualClock{now: 0}
	spy := &spyStore{inner: store.NewRateLimitMemoryStore()}
	limiter := newTestLimiter(spy, clock)
	policy := ratelimit.PolicyOrderCreation

	for i := int64(0); i < policy.Limit; i++ {
		_, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
	}

	putsBefore := spy.puts

	for range 5 {
		allowed, _ := limiter.Check(context.Background(), "10.0.0.1", policy)
		require.False(t, allowed)
	}

	assert.Equal(t, putsBefore, spy.puts, "rejected attempts must not write")
}

func TestCheckFailsOpen(t *testing.T) {
	t.Run("store errors on every call", func(t *testing.T) {
		limiter := newTestLimiter(failingStore{}, &manualClock{now: 0})

		for range 200 {
			allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", ratelimit.PolicyOrderCreation)

			require.True(t, allowed)
			require.Zero(t, retryAfter)
		}
	})

	t.Run("nil store", func(t *testing.T) {
		limiter := newTestLimiter(nil, &manualClock{now: 0})

		allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", ratelimit.PolicyAdmin)

		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
	})

	t.Run("empty identifier", func(t *testing.T) {
		spy := &spyStore{inner: store.NewRateLimitMemoryStore()}
		limiter := newTestLimiter(spy, &manualClock{now: 0})

		allowed, retryAfter := limiter.Check(context.Background(), "", ratelimit.PolicyAdmin)

		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
		assert.Zero(t, spy.puts, "empty identifier must not contact the store")
	})
}

func TestCheckMalformedRecord(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not a record", value: "garbage"},
		{name: "missing field", value: "3"},
		{name: "extra field", value: "3:100:7"},
		{name: "non-integer count", value: "x:100"},
		{name: "non-integer window start", value: "3:y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &manualClock{now: 500}
			memStore := store.NewRateLimitMemoryStore()
			limiter := newTestLimiter(memStore, clock)
			policy := ratelimit.PolicyOrderCreation

			key := "rate:" + policy.Name + ":10.0.0.1"
			require.NoError(t, memStore.Put(context.Background(), key, tt.value, time.Minute))

			// Corrupted value starts a fresh window instead of erroring.
			allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.1", policy)

			require.True(t, allowed)
			require.Zero(t, retryAfter)

			value, found, err := memStore.Get(context.Background(), key)

			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "1:500", value)
		})
	}
}

func TestCheckWriteSurvivesCancellation(t *testing.T) {
	clock := &manualClock{now: 0}
	spy := &spyStore{inner: store.NewRateLimitMemoryStore()}
	limiter := newTestLimiter(spy, clock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	allowed, _ := limiter.Check(ctx, "10.0.0.1", ratelimit.PolicyOrderCreation)

	require.True(t, allowed)
	require.NotNil(t, spy.lastPutCtx)
	assert.NoError(t, spy.lastPutCtx.Err(), "the store write must not inherit caller cancellation")
}

func TestCheckIdentifierIsolation(t *testing.T) {
	clock := &manualClock{now: 0}
	limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)
	policy := ratelimit.PolicyOrderCreation

	for i := int64(0); i <= policy.Limit; i++ {
		_, _ = limiter.Check(context.Background(), "10.0.0.1", policy)
	}

	allowed, _ := limiter.Check(context.Background(), "10.0.0.1", policy)
	require.False(t, allowed, "first identifier should be exhausted")

	allowed, retryAfter := limiter.Check(context.Background(), "10.0.0.2", policy)

	assert.True(t, allowed, "second identifier must not be affected")
	assert.Zero(t, retryAfter)
}

func TestCheckPolicyIsolation(t *testing.T) {
	clock := &manualClock{now: 0}
	limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)

	for i := int64(0); i <= ratelimit.PolicyPublicRead.Limit; i++ {
		_, _ = limiter.CheckPublicRead(context.Background(), "10.0.0.1")
	}

	allowed, _ := limiter.CheckPublicRead(context.Background(), "10.0.0.1")
	require.False(t, allowed, "public read should be exhausted")

	allowed, retryAfter := limiter.CheckOrderCreation(context.Background(), "10.0.0.1")

	assert.True(t, allowed, "order creation must not be affected")
	assert.Zero(t, retryAfter)
}

func TestOrderCreationScenario(t *testing.T) {
	clock := &manualClock{now: 0}
	limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)

	for i := 0; i < 10; i++ {
		allowed, retryAfter := limiter.CheckOrderCreation(context.Background(), "1.2.3.4")

		require.True(t, allowed)
		require.Zero(t, retryAfter)
	}

	clock.now = 5

	allowed, retryAfter := limiter.CheckOrderCreation(context.Background(), "1.2.3.4")

	require.False(t, allowed)
	assert.Equal(t, int64(55), retryAfter)

	clock.now = 61

	allowed, retryAfter = limiter.CheckOrderCreation(context.Background(), "1.2.3.4")

	assert.True(t, allowed)
	assert.Zero(t, retryAfter)
}

func TestFailedAuthScenario(t *testing.T) {
	clock := &manualClock{now: 0}
	limiter := newTestLimiter(store.NewRateLimitMemoryStore(), clock)

	for i := int64(0); i < 5; i++ {
		clock.now = i

		allowed, retryAfter := limiter.RecordFailedAuth(context.Background(), "1.2.3.4")

		require.True(t, allowed)
		require.Zero(t, retryAfter)
	}

	clock.now = 5

	allowed, retryAfter := limiter.RecordFailedAuth(context.Background(), "1.2.3.4")

	require.False(t, allowed)
	assert.Equal(t, int64(895), retryAfter)
}

func TestPolicyByName(t *testing.T) {
	t.Run("known policy", func(t *testing.T) {
		policy, ok := ratelimit.PolicyByName("create_order")

		require.True(t, ok)
		assert.Equal(t, ratelimit.PolicyOrderCreation, policy)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, ok := ratelimit.PolicyByName("nope")

		assert.False(t, ok)
	})
}
