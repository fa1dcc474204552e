package service

// CredentialService resolves an admin password to a username.
//
// This is intentionally NOT a real authentication model: the bakery has a
// fixed, tiny credential table (see config.AuthConfig). The interface exists
// so a real credential store can replace it without touching the use cases.
type CredentialService interface {
	// Resolve returns the username the password belongs to, or
	// domain errors.ErrInvalidCredentials.
	Resolve(password string) (string, error)
}
