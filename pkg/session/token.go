package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the session manager cares about. The token is
// an opaque bearer credential as far as requests are concerned; only the
// expiry and the principal's name are read client-side.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the display name for the authenticated user. Some
	// gateways put the principal in "sub" instead; see Principal.
	Username string `json:"username,omitempty"`
}

// Principal returns the authenticated principal's display name, preferring
// the username claim over the registered subject.
func (c *Claims) Principal() string {
	if c.Username != "" {
		return c.Username
	}
	return c.Subject
}

// decodeToken decodes the claims segment of a bearer token without
// verifying the signature. Signature verification is the gateway's job; the
// client only needs the expiry for local decisions.
func decodeToken(raw string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %s", errDecode, err)
	}

	// A token without an expiry cannot be checked locally; treat it the
	// same as a malformed one.
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp claim", errDecode)
	}

	return claims, nil
}

// expired reports whether the claims are expired at instant now. Expiry is
// authoritative for local decisions: once now >= exp the token is treated
// as invalid regardless of what the gateway would say. No clock-skew
// leeway is applied.
func (c *Claims) expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt.Time)
}
