package ports

// TokenService issues and verifies signed session tokens. The signing
// secret and expiry duration are injected configuration; issuing and
// verifying are pure computations with no side effects.
type TokenService interface {
	// Issue produces a signed token embedding the user identifier.
	Issue(userID string) (string, error)
	// Verify returns the embedded user identifier, or
	// domain.ErrInvalidToken when the signature fails or the token expired.
	Verify(token string) (string, error)
}
