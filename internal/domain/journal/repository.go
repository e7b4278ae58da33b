package journal

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for journal entry persistence
type Repository interface {
	// FindByID finds an entry by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)

	// FindByFarmer finds a farmer's entries, newest first
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]Entry, error)

	// Save creates or updates an entry
	Save(ctx context.Context, e *Entry) error

	// Delete deletes an entry
	Delete(ctx context.Context, id uuid.UUID) error
}
