package service

import (
	"examadda/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an access token: subject, email and role.
type Claims struct {
	UserID uuid.UUID   `json:"-"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
type TokenService interface {
	// Issue signs a token for the user with the configured expiry.
	Issue(user *entity.User) (string, error)

	// Verify checks signature and expiry and returns the claims.
	Verify(token string) (*Claims, error)
}
