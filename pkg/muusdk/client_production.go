package muusdk

import (
	"context"
	"fmt"
)

// CreateMilkRecord records a day's milk yield.
func (c *Client) CreateMilkRecord(ctx context.Context, req MilkRecordRequest) (*MilkRecord, error) {
	var record MilkRecord
	if err := c.post(ctx, "/milk", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListMilkRecords returns all milk records visible to the caller.
func (c *Client) ListMilkRecords(ctx context.Context) ([]MilkRecord, error) {
	var records []MilkRecord
	if err := c.get(ctx, "/milk", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListMilkRecordsByAnimal returns an animal's milk history.
func (c *Client) ListMilkRecordsByAnimal(ctx context.Context, animalID int64) ([]MilkRecord, error) {
	var records []MilkRecord
	if err := c.get(ctx, fmt.Sprintf("/milk/animal/%d", animalID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetMilkSummary returns an animal's aggregated milk production.
func (c *Client) GetMilkSummary(ctx context.Context, animalID int64) (*MilkSummary, error) {
	var summary MilkSummary
	if err := c.get(ctx, fmt.Sprintf("/milk/animal/%d/summary", animalID), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateMilkRecord replaces a milk record.
func (c *Client) UpdateMilkRecord(ctx context.Context, id int64, req MilkRecordRequest) (*MilkRecord, error) {
	var record MilkRecord
	if err := c.put(ctx, fmt.Sprintf("/milk/%d", id), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteMilkRecord removes a milk record.
func (c *Client) DeleteMilkRecord(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/milk/%d", id))
}

// CreateWeightRecord records a weigh-in.
func (c *Client) CreateWeightRecord(ctx context.Context, req WeightRecordRequest) (*WeightRecord, error) {
	var record WeightRecord
	if err := c.post(ctx, "/weights", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListWeightRecords returns all weight records visible to the caller.
func (c *Client) ListWeightRecords(ctx context.Context) ([]WeightRecord, error) {
	var records []WeightRecord
	if err := c.get(ctx, "/weights", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListWeightRecordsByAnimal returns an animal's weigh-in history.
func (c *Client) ListWeightRecordsByAnimal(ctx context.Context, animalID int64) ([]WeightRecord, error) {
	var records []WeightRecord
	if err := c.get(ctx, fmt.Sprintf("/weights/animal/%d", animalID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetWeightSummary returns an animal's weight trend aggregates.
func (c *Client) GetWeightSummary(ctx context.Context, animalID int64) (*WeightSummary, error) {
	var summary WeightSummary
	if err := c.get(ctx, fmt.Sprintf("/weights/animal/%d/summary", animalID), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// UpdateWeightRecord replaces a weight record.
func (c *Client) UpdateWeightRecord(ctx context.Context, id int64, req WeightRecordRequest) (*WeightRecord, error) {
	var record WeightRecord
	if err := c.put(ctx, fmt.Sprintf("/weights/%d", id), req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteWeightRecord removes a weight record.
func (c *Client) DeleteWeightRecord(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/weights/%d", id))
}

// GetAnimalAnalytics returns combined milk and weight analytics for an
// animal.
func (c *Client) GetAnimalAnalytics(ctx context.Context, animalID int64) (*AnimalAnalytics, error) {
	var analytics AnimalAnalytics
	if err := c.get(ctx, fmt.Sprintf("/analytics/animal/%d", animalID), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}
