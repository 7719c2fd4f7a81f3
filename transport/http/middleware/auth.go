package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"digitalpage/config"
	"digitalpage/infras/jwt"
	"digitalpage/infras/otel"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
	"digitalpage/transport/http/response"
)

// OwnerAuth protects the dashboard routes. When owner auth is disabled in
// config the guard passes every request through untouched.
type OwnerAuth interface {
	Guard(next http.Handler) http.Handler
}

type ownerAuthImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	config     *config.Config
}

func NewOwnerAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, config *config.Config) OwnerAuth {
	return &ownerAuthImpl{
		jwtService: jwtService,
		otel:       otel,
		config:     config,
	}
}

func (m *ownerAuthImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.config.Owner.AuthEnable {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "owner_auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			err := failure.Unauthorized("Invalid authorization header format")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			default:
				message = "Invalid token"
			}

			failureErr := failure.Unauthorized(message)
			scope.TraceError(failureErr)

			response.WithError(writer, failureErr)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyOwner, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
