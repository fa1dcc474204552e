// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"panaderia/config"
	"panaderia/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	domainerrors "panaderia/internal/domain/errors"
)

// jwtService implements service.TokenService with signed, stateless session
// tokens. There is no server-side session table: a token is valid until it
// expires, which matches the "two known admins" usage model.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.SecretKey == "" {
		return nil, errors.New("auth secret key must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.SecretKey),
		ttl:    cfg.Auth.SessionTTL,
	}, nil
}

// Generate creates a session token for the given username.
func (s *jwtService) Generate(username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":  username,
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
		"type": "session",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// Validate checks a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrSessionInvalid
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	return &service.SessionClaims{
		Username:  username,
		ExpiresAt: exp.Time,
	}, nil
}
