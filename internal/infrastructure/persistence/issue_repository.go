package persistence

import (
	"context"
	"errors"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/support"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIssueRepository implements support.Repository using GORM
type GormIssueRepository struct {
	db *gorm.DB
}

// NewGormIssueRepository creates a new GormIssueRepository
func NewGormIssueRepository(db *gorm.DB) *GormIssueRepository {
	return &GormIssueRepository{db: db}
}

// FindByID finds an issue by its ID
func (r *GormIssueRepository) FindByID(ctx context.Context, id uuid.UUID) (*support.Issue, error) {
	var issue support.Issue
	if err := r.db.WithContext(ctx).First(&issue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// FindByUser finds issues reported by a user, newest first
func (r *GormIssueRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]support.Issue, error) {
	var issues []support.Issue
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// Save creates or updates an issue
func (r *GormIssueRepository) Save(ctx context.Context, i *support.Issue) error {
	return r.db.WithContext(ctx).Save(i).Error
}

// Delete deletes an issue
func (r *GormIssueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&support.Issue{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormIssueRepository implements support.Repository
var _ support.Repository = (*GormIssueRepository)(nil)
