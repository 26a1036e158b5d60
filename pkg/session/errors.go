package session

import "errors"

var (
	// ErrInvalidCredentials is returned when the gateway rejects a login
	// attempt or the login round trip fails.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrRegistrationFailed is returned when the gateway rejects a
	// registration payload or the round trip fails.
	ErrRegistrationFailed = errors.New("registration_failed")

	// ErrAlreadyExpired is returned when a freshly issued token decodes to
	// an expiry in the past. This points at clock skew or a gateway bug;
	// the token is never adopted.
	ErrAlreadyExpired = errors.New("token_already_expired")
)

// errDecode marks a token that is structurally invalid or lacks an expiry.
// It is internal: stored tokens that fail to decode are purged silently and
// the error is never surfaced to callers.
var errDecode = errors.New("undecodable token")
