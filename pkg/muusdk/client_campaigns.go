package muusdk

import (
	"context"
	"fmt"
)

// CreateCampaign registers a marketing campaign for a stable.
func (c *Client) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*Campaign, error) {
	var campaign Campaign
	if err := c.post(ctx, "/campaigns", req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListCampaigns returns the caller's campaigns.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	if err := c.get(ctx, "/campaigns", &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// GetCampaign fetches one campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, id int64) (*Campaign, error) {
	var campaign Campaign
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%d", id), &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/campaigns/%d", id))
}

// UpdateCampaignStatus moves a campaign between PLANNED, ACTIVE and
// COMPLETED.
func (c *Client) UpdateCampaignStatus(ctx context.Context, id int64, req UpdateCampaignStatusRequest) (*Campaign, error) {
	var campaign Campaign
	if err := c.patch(ctx, fmt.Sprintf("/campaigns/%d/update-status", id), req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// AddGoal attaches a measurable goal to a campaign.
func (c *Client) AddGoal(ctx context.Context, id int64, req AddGoalRequest) (*Campaign, error) {
	var campaign Campaign
	if err := c.patch(ctx, fmt.Sprintf("/campaigns/%d/add-goal", id), req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// AddChannel attaches a delivery channel to a campaign.
func (c *Client) AddChannel(ctx context.Context, id int64, req AddChannelRequest) (*Campaign, error) {
	var campaign Campaign
	if err := c.patch(ctx, fmt.Sprintf("/campaigns/%d/add-channel", id), req, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListGoals returns a campaign's goals.
func (c *Client) ListGoals(ctx context.Context, id int64) ([]Goal, error) {
	var goals []Goal
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%d/goals", id), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// ListChannels returns a campaign's channels.
func (c *Client) ListChannels(ctx context.Context, id int64) ([]Channel, error) {
	var channels []Channel
	if err := c.get(ctx, fmt.Sprintf("/campaigns/%d/channels", id), &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
