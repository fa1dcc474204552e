package usecase

import (
	"context"
	"time"
)

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUsecase resolves admin logins into session tokens.
type AuthUsecase interface {
	// Login resolves the password against the static credential table,
	// issues a session token and logs the login. The device label comes
	// from the request's user agent.
	Login(ctx context.Context, password, device string) (*LoginOutput, error)
}
