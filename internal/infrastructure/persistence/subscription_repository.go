package persistence

import (
	"context"
	"errors"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/subscription"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSubscriptionRepository implements subscription.Repository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// FindByID finds a subscription by its ID
func (r *GormSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// FindByCustomerAndFarm finds the subscription a customer holds with a farm
func (r *GormSubscriptionRepository) FindByCustomerAndFarm(ctx context.Context, customerID, farmID uuid.UUID) (*subscription.Subscription, error) {
	var sub subscription.Subscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND farm_id = ?", customerID, farmID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

// FindByCustomer finds all subscriptions held by a customer
func (r *GormSubscriptionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]subscription.Subscription, error) {
	var subs []subscription.Subscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// FindByFarm finds all subscriptions against a farm
func (r *GormSubscriptionRepository) FindByFarm(ctx context.Context, farmID uuid.UUID) ([]subscription.Subscription, error) {
	var subs []subscription.Subscription
	err := r.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Save creates or updates a subscription
func (r *GormSubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete deletes a subscription
func (r *GormSubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&subscription.Subscription{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSubscriptionRepository implements subscription.Repository
var _ subscription.Repository = (*GormSubscriptionRepository)(nil)
