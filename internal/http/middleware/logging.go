package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"sleepapi/internal/logger"
)

// RequestLogger returns fasthttp middleware that tags each request with an
// id (echoed in X-Request-ID) and logs method, path, status and duration.
func RequestLogger(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		requestID := uuid.NewString()
		ctx.Response.Header.Set("X-Request-ID", requestID)

		next(ctx)

		logger.Get().Infow("request",
			"id", requestID,
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", ctx.Response.StatusCode(),
			"duration", time.Since(start),
			"ip", ctx.RemoteAddr().String(),
		)
	}
}
