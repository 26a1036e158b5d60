package muusdk

import (
	"context"
	"fmt"
)

// CreateStable registers a new stable.
func (c *Client) CreateStable(ctx context.Context, req CreateStableRequest) (*Stable, error) {
	var stable Stable
	if err := c.post(ctx, "/stables", req, &stable); err != nil {
		return nil, err
	}
	return &stable, nil
}

// ListStables returns the caller's stables.
func (c *Client) ListStables(ctx context.Context) ([]Stable, error) {
	var stables []Stable
	if err := c.get(ctx, "/stables", &stables); err != nil {
		return nil, err
	}
	return stables, nil
}

// GetStable fetches one stable by ID.
func (c *Client) GetStable(ctx context.Context, id int64) (*Stable, error) {
	var stable Stable
	if err := c.get(ctx, fmt.Sprintf("/stables/%d", id), &stable); err != nil {
		return nil, err
	}
	return &stable, nil
}
