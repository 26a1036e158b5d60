package muusdk

import (
	"context"
	"fmt"
)

// CreateAnimal registers a new animal.
func (c *Client) CreateAnimal(ctx context.Context, req AnimalRequest) (*Animal, error) {
	var animal Animal
	if err := c.post(ctx, "/animals", req, &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// ListAnimals returns the caller's animals (all animals for admins).
func (c *Client) ListAnimals(ctx context.Context) ([]Animal, error) {
	var animals []Animal
	if err := c.get(ctx, "/animals", &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// GetAnimal fetches one animal by ID.
func (c *Client) GetAnimal(ctx context.Context, id int64) (*Animal, error) {
	var animal Animal
	if err := c.get(ctx, fmt.Sprintf("/animals/%d", id), &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// ListAnimalsByStable returns the animals housed in a stable.
func (c *Client) ListAnimalsByStable(ctx context.Context, stableID int64) ([]Animal, error) {
	var animals []Animal
	if err := c.get(ctx, fmt.Sprintf("/animals/stable/%d", stableID), &animals); err != nil {
		return nil, err
	}
	return animals, nil
}

// UpdateAnimal replaces an animal's attributes.
func (c *Client) UpdateAnimal(ctx context.Context, id int64, req AnimalRequest) (*Animal, error) {
	var animal Animal
	if err := c.put(ctx, fmt.Sprintf("/animals/%d", id), req, &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// DeleteAnimal removes an animal.
func (c *Client) DeleteAnimal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/animals/%d", id))
}
