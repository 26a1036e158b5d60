package muusdk

import (
	"context"

	"github.com/muusmart/muusmart/pkg/session"
)

// Login authenticates with the gateway and returns the issued token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns the issued token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SessionAuth adapts the Client to the session manager's AuthClient
// interface, so the manager stays decoupled from the SDK's types.
type SessionAuth struct {
	Client *Client
}

func (a SessionAuth) Login(ctx context.Context, creds session.Credentials) (string, error) {
	resp, err := a.Client.Login(ctx, LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (a SessionAuth) Register(ctx context.Context, reg session.Registration) (string, error) {
	resp, err := a.Client.Register(ctx, RegisterRequest{
		Username: reg.Username,
		Email:    reg.Email,
		Password: reg.Password,
	})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
