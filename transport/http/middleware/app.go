package middleware

import (
	"fmt"
	"net/http"

	"digitalpage/config"
	"digitalpage/infras/otel"
	"digitalpage/shared/cache"
	"digitalpage/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

// AppMiddleware carries the cross-cutting request middleware: tracing around
// every request and the Redis-backed rate limiter.
type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttribute("app.name", a.config.App.Name)
		scope.SetAttribute("http.path", r.URL.Path)
		scope.SetAttribute("http.method", r.Method)
		scope.SetAttribute("http.user_agent", r.Header.Get(constant.RequestHeaderUserAgent))
		scope.SetAttribute("http.host", r.Host)
		scope.SetAttribute("http.source", clientIP(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
