package muusdk

import (
	"context"
	"fmt"
)

// GetAnimalFullReport returns the consolidated report for one animal.
func (c *Client) GetAnimalFullReport(ctx context.Context, animalID int64) (*AnimalFullReport, error) {
	var report AnimalFullReport
	if err := c.get(ctx, fmt.Sprintf("/reports/animal/%d/full", animalID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetStableFullReport returns the consolidated report for one stable.
func (c *Client) GetStableFullReport(ctx context.Context, stableID int64) (*StableFullReport, error) {
	var report StableFullReport
	if err := c.get(ctx, fmt.Sprintf("/reports/stable/%d/full", stableID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}
