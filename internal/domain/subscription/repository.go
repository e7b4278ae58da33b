package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for subscription persistence
type Repository interface {
	// FindByID finds a subscription by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// FindByCustomerAndFarm finds the subscription a customer holds with a
	// farm, ErrNotFound when none exists
	FindByCustomerAndFarm(ctx context.Context, customerID, farmID uuid.UUID) (*Subscription, error)

	// FindByCustomer finds all subscriptions held by a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Subscription, error)

	// FindByFarm finds all subscriptions against a farm
	FindByFarm(ctx context.Context, farmID uuid.UUID) ([]Subscription, error)

	// Save creates or updates a subscription
	Save(ctx context.Context, s *Subscription) error

	// Delete deletes a subscription
	Delete(ctx context.Context, id uuid.UUID) error
}
