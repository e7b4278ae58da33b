package persistence

import (
	"context"
	"errors"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReviewRepository implements catalog.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	var review catalog.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByProduct finds all reviews of a product, newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Review, error) {
	var reviews []catalog.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByProductAndCustomer finds the review a customer left on a product
func (r *GormReviewRepository) FindByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (*catalog.Review, error) {
	var review catalog.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND customer_id = ?", productID, customerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByProducts finds reviews across the given products, newest first
func (r *GormReviewRepository) FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]catalog.Review, error) {
	if len(productIDs) == 0 {
		return []catalog.Review{}, nil
	}
	var reviews []catalog.Review
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

type reviewStatsRow struct {
	ProductID     uuid.UUID
	AverageRating float64
	ReviewCount   int64
}

// StatsByProducts computes per-product average rating and review count in one
// query. Products with no reviews are absent from the result.
func (r *GormReviewRepository) StatsByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]catalog.ReviewStats, error) {
	stats := make(map[uuid.UUID]catalog.ReviewStats, len(productIDs))
	if len(productIDs) == 0 {
		return stats, nil
	}

	var rows []reviewStatsRow
	err := r.db.WithContext(ctx).Model(&catalog.Review{}).
		Select("product_id, AVG(rating) AS average_rating, COUNT(*) AS review_count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.ProductID] = catalog.ReviewStats{
			ProductID:     row.ProductID,
			AverageRating: row.AverageRating,
			ReviewCount:   row.ReviewCount,
		}
	}
	return stats, nil
}

// AverageRatingForProducts computes a single average over all reviews of the
// given products, 0 when there are none
func (r *GormReviewRepository) AverageRatingForProducts(ctx context.Context, productIDs []uuid.UUID) (float64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	var avg *float64
	err := r.db.WithContext(ctx).Model(&catalog.Review{}).
		Select("AVG(rating)").
		Where("product_id IN ?", productIDs).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormReviewRepository implements catalog.ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
