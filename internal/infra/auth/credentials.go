package auth

import (
	"crypto/subtle"
	"strings"

	"panaderia/config"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// credentialTable implements service.CredentialService over the small static
// table from the config file. Entries whose password value looks like a
// bcrypt hash are compared with bcrypt; anything else is compared in
// constant time (development convenience only).
type credentialTable struct {
	credentials []config.Credential
}

// NewCredentialTable is the constructor for credentialTable.
func NewCredentialTable(cfg *config.Config) service.CredentialService {
	return &credentialTable{credentials: cfg.Auth.Credentials}
}

// Resolve returns the username the password belongs to.
func (t *credentialTable) Resolve(password string) (string, error) {
	for _, cred := range t.credentials {
		if matches(cred.Password, password) {
			return cred.Username, nil
		}
	}

	return "", domainerrors.ErrInvalidCredentials
}

func matches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
