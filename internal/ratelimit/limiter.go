package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Limiter throttles per-client request rates with fixed-window counters kept
// in an external Store shared across stateless handler instances. It holds no
// state of its own; every check is a fresh round trip.
//
// The read-then-write sequence is not atomic against the Store. Two
// concurrent checks for the same key can read the same count and each write
// count+1, so the effective limit can be exceeded by up to the degree of
// concurrency. That undercounting is accepted; the Store is not assumed to
// offer a compare-and-swap primitive.
//
// The limiter never blocks legitimate traffic on its own failures: a missing
// store, an empty identifier, a transport error, or a corrupted record all
// degrade to allowing the request.
type Limiter struct {
	store  Store
	clock  Clock
	logger *zap.Logger
}

// New creates a limiter over the given store. A nil store is valid and makes
// every check pass.
func New(store Store, clock Clock, logger *zap.Logger) *Limiter {
	return &Limiter{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Check decides whether the identifier may perform another action under the
// policy. It returns (false, retryAfter) only when a stored counter has
// reached the policy limit inside the current window; retryAfter is the
// number of seconds until the window rolls over.
func (l *Limiter) Check(ctx context.Context, identifier string, policy Policy) (allowed bool, retryAfter int64) {
	if identifier == "" || l.store == nil {
		return true, 0
	}

	key := "rate:" + policy.Name + ":" + identifier

	value, found, err := l.store.Get(ctx, key)
	if err != nil {
		l.logFailOpen("read", policy, identifier, err)

		return true, 0
	}

	now := l.clock.Now()

	if found {
		if rec, ok := parseRecord(value); ok {
			elapsed := now - rec.WindowStart
			if elapsed < policy.Window {
				if rec.Count >= policy.Limit {
					// Rejections never write back, so repeated rejected
					// attempts cause no write amplification.
					return false, policy.Window - elapsed
				}

				return l.put(ctx, key, record{Count: rec.Count + 1, WindowStart: rec.WindowStart}, policy, identifier)
			}
		}
		// Window rolled over or the record did not parse: stale counts are
		// discarded, not carried forward.
	}

	return l.put(ctx, key, record{Count: 1, WindowStart: now}, policy, identifier)
}

// CheckPublicRead checks the public read policy (menu, banners).
func (l *Limiter) CheckPublicRead(ctx context.Context, identifier string) (bool, int64) {
	return l.Check(ctx, identifier, PolicyPublicRead)
}

// CheckOrderCreation checks the order creation policy.
func (l *Limiter) CheckOrderCreation(ctx context.Context, identifier string) (bool, int64) {
	return l.Check(ctx, identifier, PolicyOrderCreation)
}

// CheckPromoValidation checks the promo validation policy.
func (l *Limiter) CheckPromoValidation(ctx context.Context, identifier string) (bool, int64) {
	return l.Check(ctx, identifier, PolicyPromoValidation)
}

// CheckAdmin checks the admin policy.
func (l *Limiter) CheckAdmin(ctx context.Context, identifier string) (bool, int64) {
	return l.Check(ctx, identifier, PolicyAdmin)
}

// RecordFailedAuth counts an authentication attempt that was already rejected
// by the authentication layer. It never gates the authentication check
// itself; a false result means the caller should surface a lockout.
func (l *Limiter) RecordFailedAuth(ctx context.Context, identifier string) (bool, int64) {
	return l.Check(ctx, identifier, PolicyFailedAuth)
}

func (l *Limiter) put(ctx context.Context, key string, rec record, policy Policy, identifier string) (bool, int64) {
	// A caller aborting mid-request must not abort the in-flight write; a
	// dangling half-updated record is worse than a slightly stale one.
	ctx = context.WithoutCancel(ctx)

	ttl := time.Duration(policy.Window) * time.Second
	if err := l.store.Put(ctx, key, rec.encode(), ttl); err != nil {
		l.logFailOpen("write", policy, identifier, err)
	}

	return true, 0
}

func (l *Limiter) logFailOpen(op string, policy Policy, identifier string, err error) {
	l.logger.Warn("rate limit store unavailable, failing open",
		zap.String("op", op),
		zap.String("policy", policy.Name),
		zap.String("identifier", truncateIdentifier(identifier)),
		zap.Error(err),
	)
}

// truncateIdentifier trims client identifiers for logging.
func truncateIdentifier(identifier string) string {
	const max = 16
	if len(identifier) <= max {
		return identifier
	}

	return identifier[:max] + "..."
}
