package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a token for userID carrying roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
