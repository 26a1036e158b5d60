package muusdk

import (
	"context"
	"fmt"
)

// CreateHealthRecord records a veterinary event.
func (c *Client) CreateHealthRecord(ctx context.Context, req CreateHealthRecordRequest) (*HealthRecord, error) {
	var record HealthRecord
	if err := c.post(ctx, "/health", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetHealthRecord fetches one health record by ID.
func (c *Client) GetHealthRecord(ctx context.Context, id int64) (*HealthRecord, error) {
	var record HealthRecord
	if err := c.get(ctx, fmt.Sprintf("/health/%d", id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListHealthRecords returns all health records visible to the caller.
func (c *Client) ListHealthRecords(ctx context.Context) ([]HealthRecord, error) {
	var records []HealthRecord
	if err := c.get(ctx, "/health", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListHealthRecordsByAnimal returns an animal's health history.
func (c *Client) ListHealthRecordsByAnimal(ctx context.Context, animalID int64) ([]HealthRecord, error) {
	var records []HealthRecord
	if err := c.get(ctx, fmt.Sprintf("/health/animal/%d", animalID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateHealthRecord replaces a health record's attributes.
func (c *Client) UpdateHealthRecord(ctx context.Context, id int64, req UpdateHealthRecordRequest) (*HealthRecord, error) {
	var record HealthRecord
	if err := c.put(ctx, fmt.Sprintf("/health/%d", id), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteHealthRecord removes a health record.
func (c *Client) DeleteHealthRecord(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/health/%d", id))
}

// GetHealthPenalty returns the accumulated condition penalty for an
// animal. The endpoint responds with a bare number.
func (c *Client) GetHealthPenalty(ctx context.Context, animalID int64) (float64, error) {
	var penalty float64
	if err := c.get(ctx, fmt.Sprintf("/health/condition/%d", animalID), &penalty); err != nil {
		return 0, err
	}
	return penalty, nil
}
