package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalpage/config"
	"digitalpage/infras/jwt"
	otelMocks "digitalpage/infras/otel/mocks"
	"digitalpage/transport/http/middleware"
)

func testConfig(authEnabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "digitalpage"
	cfg.Owner.AuthEnable = authEnabled
	cfg.Owner.JWTSecret = "test-secret"
	cfg.Owner.TokenExpireMin = 60

	return cfg
}

func guardedEndpoint(cfg *config.Config) http.Handler {
	guard := middleware.NewOwnerAuthMiddleware(jwt.New(cfg), otelMocks.NewOtel(), cfg)

	return guard.Guard(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestOwnerAuth_Guard(t *testing.T) {
	t.Run("disabled auth passes everything through", func(t *testing.T) {
		handler := guardedEndpoint(testConfig(false))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		handler := guardedEndpoint(testConfig(true))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		handler := guardedEndpoint(testConfig(true))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		handler := guardedEndpoint(testConfig(true))

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token accepted", func(t *testing.T) {
		cfg := testConfig(true)
		handler := guardedEndpoint(cfg)

		token, _, err := jwt.New(cfg).GenerateOwnerToken()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
