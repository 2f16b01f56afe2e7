package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// Actor is a cached copy of the "sub" (subject) claim: the operator name used
// for audit entries and as the manual-sync cooldown key.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Actor is the operator identity extracted from the "sub" claim.
	Actor string `json:"-"`
}

// GetActor returns the token's subject claim, failing when it is missing or
// empty.
func (t *Token) GetActor() (string, error) {
	actor, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if actor == "" {
		return "", errors.New("empty subject")
	}
	return actor, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenRequest is the body accepted by POST /api/auth/token.
type TokenRequest struct {
	Actor    string `json:"actor"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful token request.
type TokenResponse struct {
	Token     string    `json:"token"`
	Actor     string    `json:"actor"`
	ExpiresAt time.Time `json:"expires_at"`
}
