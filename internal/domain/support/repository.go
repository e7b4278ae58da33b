package support

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for issue persistence
type Repository interface {
	// FindByID finds an issue by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Issue, error)

	// FindByUser finds issues reported by a user, newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Issue, error)

	// Save creates or updates an issue
	Save(ctx context.Context, i *Issue) error

	// Delete deletes an issue
	Delete(ctx context.Context, id uuid.UUID) error
}
