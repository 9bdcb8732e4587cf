package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
)

// JWTService issues and verifies the identity tokens that optional sign-in
// attaches to requests.
type JWTService interface {
	// GenerateToken creates a signed token carrying the identity's user ID,
	// email and display name. Anonymous identities cannot be encoded.
	GenerateToken(ctx context.Context, identity domain.Identity) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString and
	// returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of an identity token.
type Claims struct {
	UserID uuid.UUID `json:"uid,omitempty"`
	Email  string    `json:"email,omitempty"`
	Name   string    `json:"name,omitempty"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Identity converts the claims into the caller identity used by services.
func (c *Claims) Identity() domain.Identity {
	return domain.Authenticated(c.UserID, c.Email, c.Name)
}
