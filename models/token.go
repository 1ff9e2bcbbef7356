package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a session JWT with convenience accessors.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the
// Authorization header.
type Token struct {
	// Token is the underlying JWT used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is the agent identifier extracted from the "sub" claim,
	// cached to avoid repeated claim parsing.
	ClientID string `json:"-"`
}

// GetClientID extracts the agent identifier from the token's "sub"
// (subject) claim.
func (t *Token) GetClientID() (string, error) {
	clientID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting ClientID from token: %w", err)
	}
	if clientID == "" {
		return "", fmt.Errorf("token subject claim is empty")
	}

	return clientID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
