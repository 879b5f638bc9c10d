package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed administrator JWT.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. Tokens are issued by the
// identity provider of the admin front end; this service only verifies them.
type Token struct {
	// Token is the underlying JWT token. Excluded from JSON serialization.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// ActorID is the "sub" claim: the administrator recorded as createdBy,
	// updatedBy or submittedBy.
	ActorID string `json:"-"`
}
