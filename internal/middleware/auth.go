package middleware

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/foodikal/ordering-go/internal/auth"
	"github.com/foodikal/ordering-go/internal/ratelimit"
	"go.uber.org/zap"
)

// AdminAuth returns a Huma middleware that guards operations tagged with
// auth.MetadataKey. Failed attempts count against the failed-auth policy so
// repeated guessing locks the client out.
func AdminAuth(
	api huma.API,
	limiter *ratelimit.Limiter,
	adminPasswordHash string,
	logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !requiresAdmin(ctx) {
			next(ctx)

			return
		}

		if auth.Authenticate(ctx.Header("Authorization"), adminPasswordHash) {
			next(ctx)

			return
		}

		ip := clientIP(ctx)

		allowed, retryAfter := limiter.RecordFailedAuth(ctx.Context(), ip)
		if !allowed {
			logger.Warn("auth attempts locked out",
				zap.String("path", operationPath(ctx)),
				zap.Int64("retry_after", retryAfter),
			)

			ctx.SetHeader("Retry-After", strconv.FormatInt(retryAfter, 10))
			_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests,
				"too many failed authentication attempts")

			return
		}

		logger.Warn("authentication failed",
			zap.String("path", operationPath(ctx)),
			zap.String("method", ctx.Method()),
		)

		_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "unauthorized")
	}
}

func requiresAdmin(ctx huma.Context) bool {
	op := ctx.Operation()
	if op == nil {
		return false
	}

	required, ok := op.Metadata[auth.MetadataKey].(bool)

	return ok && required
}
