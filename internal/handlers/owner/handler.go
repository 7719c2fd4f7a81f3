package owner

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"digitalpage/config"
	"digitalpage/infras/jwt"
	"digitalpage/infras/otel"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
	"digitalpage/shared/validator"
	"digitalpage/transport/http/response"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	config *config.Config
	jwt    jwt.JWT
	otel   otel.Otel
}

func New(cfg *config.Config, jwt jwt.JWT, otel otel.Otel) Handler {
	return Handler{
		config: cfg,
		jwt:    jwt,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/owner/login", handler.Login)
	router.Get("/health", handler.Health)
}

// Login exchanges the shop password for a dashboard session token. With
// owner auth disabled a token is still issued but nothing requires it.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(handler.config.Owner.Password)) != 1 {
		err := failure.Unauthorized("invalid password")
		scope.TraceError(err)
		log.Warn().Msg("rejected owner login attempt")

		response.WithError(w, err)

		return
	}

	token, expiresIn, err := handler.jwt.GenerateOwnerToken()
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue owner token")

		response.WithError(w, failure.InternalError(err))

		return
	}

	scope.AddEvent("Owner logged in")

	response.WithJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token, ExpiresIn: expiresIn})
}

func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
