package ports

// TokenClaims is the identity a verified token asserts.
type TokenClaims struct {
	UserID string
	Roles  []string
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are not persisted server-side; validity is determined solely by
// signature and expiry at verification time.
type TokenService interface {
	Issue(userID string, roles []string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
