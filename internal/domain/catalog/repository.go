package catalog

import (
	"context"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs loads the given products in one round trip
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindByFarm finds all products listed by a farm
	FindByFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindAll finds products with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, p *Product) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, p *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ReviewStats aggregates the reviews of a single product
type ReviewStats struct {
	ProductID     uuid.UUID
	AverageRating float64
	ReviewCount   int64
}

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByID finds a review by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// FindByProduct finds all reviews of a product, newest first
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)

	// FindByProductAndCustomer finds the review a customer left on a product,
	// ErrNotFound when none exists
	FindByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (*Review, error)

	// FindByProducts finds reviews across the given products, newest first
	FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]Review, error)

	// StatsByProducts computes per-product average rating and review count.
	// Products with no reviews are absent from the result.
	StatsByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]ReviewStats, error)

	// AverageRatingForProducts computes a single average over all reviews of
	// the given products, 0 when there are none
	AverageRatingForProducts(ctx context.Context, productIDs []uuid.UUID) (float64, error)

	// Save creates or updates a review
	Save(ctx context.Context, r *Review) error

	// Delete deletes a review
	Delete(ctx context.Context, id uuid.UUID) error
}
