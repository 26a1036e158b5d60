package muusdk

import "context"

// AdminListAnimals returns every animal in the system, across all users.
// Requires an admin token.
func (c *Client) AdminListAnimals(ctx context.Context) ([]Animal, error) {
	var animals []Animal
	if err := c.get(ctx, "/admin/animals", &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// AdminListStables returns every stable in the system.
func (c *Client) AdminListStables(ctx context.Context) ([]Stable, error) {
	var stables []Stable
	if err := c.get(ctx, "/admin/stables", &stables); err != nil {
		return nil, err
	}
	return stables, nil
}

// AdminGetStats returns system-wide statistics.
func (c *Client) AdminGetStats(ctx context.Context) (*AdminStats, error) {
	var stats AdminStats
	if err := c.get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminListSubscriptions returns every user's plan and limits.
func (c *Client) AdminListSubscriptions(ctx context.Context) ([]UserSubscription, error) {
	var subs []UserSubscription
	if err := c.get(ctx, "/admin/subscriptions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
