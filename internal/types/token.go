package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

// Viewer is the immutable session snapshot passed into the role gate and
// the catalog filter. A nil Viewer means an anonymous request.
type Viewer struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}
