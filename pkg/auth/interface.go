package auth

//go:generate mockgen -destination=mocks/mock_jwt.go -package=mocks teamtrack/pkg/auth TokenManager

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	// GenerateToken issues a signed access token for the user.
	GenerateToken(userID string) (string, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
