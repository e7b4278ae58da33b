package farm

import (
	"context"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Repository defines the interface for farm persistence
type Repository interface {
	// FindByID finds a farm by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Farm, error)

	// FindByOwner finds the farm owned by the given user, ErrNotFound when none
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Farm, error)

	// FindByName finds a farm by its unique display name
	FindByName(ctx context.Context, name string) (*Farm, error)

	// FindByIDs loads the given farms, preserving no particular order
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Farm, error)

	// FindAll finds farms with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Farm, error)

	// Save creates or updates a farm
	Save(ctx context.Context, f *Farm) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, f *Farm) error

	// Delete deletes a farm
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts farms matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// Distance pairs a farm ID with its distance from a query origin
type Distance struct {
	FarmID uuid.UUID
	Meters float64
}

// GeoIndex answers nearest-farm queries. Queries are read-only: running
// the same query twice against an unchanged index returns the same result.
type GeoIndex interface {
	// Upsert records or refreshes a farm's position
	Upsert(ctx context.Context, farmID uuid.UUID, location valueobject.GeoPoint) error

	// Remove drops a farm from the index
	Remove(ctx context.Context, farmID uuid.UUID) error

	// Nearest returns farms ordered by ascending great-circle distance from
	// origin. limit <= 0 means no limit.
	Nearest(ctx context.Context, origin valueobject.GeoPoint, limit int) ([]Distance, error)
}
