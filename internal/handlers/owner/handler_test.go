package owner_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalpage/config"
	"digitalpage/infras/jwt"
	otelMocks "digitalpage/infras/otel/mocks"
	"digitalpage/internal/handlers/owner"
	"digitalpage/transport/http/response"
)

func newTestRouter(cfg *config.Config) *chi.Mux {
	handler := owner.New(cfg, jwt.New(cfg), otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "digitalpage"
	cfg.Owner.Password = "open sesame"
	cfg.Owner.JWTSecret = "test-secret"
	cfg.Owner.TokenExpireMin = 60

	return cfg
}

func postLogin(router *chi.Mux, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"password": password})

	req := httptest.NewRequest(http.MethodPost, "/owner/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Login(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)

	t.Run("issues a token for the right password", func(t *testing.T) {
		rec := postLogin(router, "open sesame")

		assert.Equal(t, http.StatusOK, rec.Code)

		var res owner.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, int64(3600), res.ExpiresIn)
	})

	t.Run("rejects the wrong password", func(t *testing.T) {
		rec := postLogin(router, "guess")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var res response.Failed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Success)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		rec := postLogin(router, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Health(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
