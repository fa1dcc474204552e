// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import "time"

// SessionClaims is what a validated session token asserts.
type SessionClaims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenService signs and validates admin session tokens. This abstracts the
// token mechanics away from the use cases.
type TokenService interface {
	// Generate creates a session token for the given username.
	Generate(username string) (token string, expiresAt time.Time, err error)

	// Validate checks a token string and returns its claims.
	Validate(token string) (*SessionClaims, error)
}
