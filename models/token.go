package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every issued credential.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, iat,
// exp, jti) and adds the single scalar Role. Role is turned into a [Roles]
// set when the credential is converted into a [Principal].
type Claims struct {
	jwt.RegisteredClaims

	// Role is the role granted to the subject, e.g. "admin".
	Role string `json:"role"`
}

// Principal converts the claims into the request identity.
// The scalar role becomes a one-element role set.
func (c *Claims) Principal() Principal {
	return Principal{
		ID:          c.Subject,
		DisplayName: c.Subject,
		Roles:       NewRoles(c.Role),
	}
}

// Token wraps a signed credential together with its decoded claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
