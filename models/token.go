package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every access token.
//
// Only the registered claims are used: "sub" holds the user's email, "iat"
// and "exp" bound the token lifetime and "jti" identifies the token for
// revocation on logout.
type Claims struct {
	jwt.RegisteredClaims
}

// Token wraps a signed access token together with its decoded claims.
type Token struct {
	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Subject returns the "sub" claim of the token.
func (t Token) Subject() string {
	return t.Claims.Subject
}

// ID returns the "jti" claim of the token.
func (t Token) ID() string {
	return t.Claims.ID
}

// ExpiresAt returns the expiry instant of the token or the zero time when the
// claim is absent.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// IssuedAt returns the issue instant of the token or the zero time when the
// claim is absent.
func (t Token) IssuedAt() time.Time {
	if t.Claims.IssuedAt == nil {
		return time.Time{}
	}
	return t.Claims.IssuedAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
