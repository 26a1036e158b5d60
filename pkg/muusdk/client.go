package muusdk

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/muusmart/muusmart/pkg/session"
)

// TokenProvider supplies the current bearer token, or "" when the client
// should send the request anonymously. *session.Manager satisfies this.
type TokenProvider interface {
	Token() string
}

// Client is a client for the MuuSmart API gateway.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokens       TokenProvider
	unauthorized *session.UnauthorizedSignal

	// The assistant endpoint is metered upstream; the client throttles
	// chat calls so a busy widget can't burn through the quota.
	assistantLimiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTokenProvider sets the source of bearer tokens for authenticated
// requests.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithUnauthorizedSignal sets the broadcast fired when a request that
// carried a token is answered with 401 or 403.
func WithUnauthorizedSignal(sig *session.UnauthorizedSignal) Option {
	return func(c *Client) { c.unauthorized = sig }
}

// WithAssistantRateLimit overrides the client-side throttle on assistant
// chat calls.
func WithAssistantRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.assistantLimiter = rate.NewLimiter(limit, burst) }
}

// New creates a gateway client with a 10 second request timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		assistantLimiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
