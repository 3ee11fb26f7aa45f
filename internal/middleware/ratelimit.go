package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimit returns a Huma middleware that throttles requests per client IP
// using the policy named in the operation metadata. Operations without a
// policy are not limited.
func RateLimit(api huma.API, limiter *ratelimit.Limiter, logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		policy, ok := operationPolicy(ctx)
		if !ok {
			next(ctx)

			return
		}

		allowed, retryAfter := limiter.Check(ctx.Context(), clientIP(ctx), policy)
		if !allowed {
			logger.Warn("rate limit exceeded",
				zap.String("policy", policy.Name),
				zap.String("path", operationPath(ctx)),
				zap.String("method", ctx.Method()),
				zap.Int64("retry_after", retryAfter),
			)

			ctx.SetHeader("Retry-After", strconv.FormatInt(retryAfter, 10))
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests,
				"rate limit exceeded, retry in "+strconv.FormatInt(retryAfter, 10)+" seconds")

			return
		}

		next(ctx)
	}
}

// operationPolicy resolves the rate limit policy named in the operation
// metadata, if any.
func operationPolicy(ctx huma.Context) (ratelimit.Policy, bool) {
	op := ctx.Operation()
	if op == nil {
		return ratelimit.Policy{}, false
	}

	name, ok := op.Metadata[ratelimit.MetadataKey].(string)
	if !ok || name == "" {
		return ratelimit.Policy{}, false
	}

	return ratelimit.PolicyByName(name)
}

func operationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}

// clientIP extracts the client IP from the request, considering proxies.
func clientIP(ctx huma.Context) string {
	// X-Forwarded-For may contain multiple IPs; the first is the client
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	host := ctx.Host()

	ip, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}

	return ip
}
