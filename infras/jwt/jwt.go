package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"digitalpage/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the owner-session claim set.
type Claims struct {
	TokenID string `json:"token_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

const roleOwner = "owner"

// JWT issues and verifies owner dashboard session tokens.
type JWT interface {
	GenerateOwnerToken() (token string, expiresIn int64, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

func (s *Service) GenerateOwnerToken() (string, int64, error) {
	now := time.Now()
	expire := time.Duration(s.config.Owner.TokenExpireMin) * time.Minute

	claims := Claims{
		TokenID: uuid.NewString(),
		Role:    roleOwner,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.App.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Owner.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign owner token: %w", err)
	}

	return token, int64(expire.Seconds()), nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(s.config.Owner.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Role != roleOwner {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
