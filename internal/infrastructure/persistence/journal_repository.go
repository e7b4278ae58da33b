package persistence

import (
	"context"
	"errors"

	"github.com/alnsrinivas/Milkmitra/internal/domain/journal"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJournalRepository implements journal.Repository using GORM
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GormJournalRepository
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// FindByID finds a journal entry by its ID
func (r *GormJournalRepository) FindByID(ctx context.Context, id uuid.UUID) (*journal.Entry, error) {
	var entry journal.Entry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByFarmer finds a farmer's journal entries, newest first
func (r *GormJournalRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]journal.Entry, error) {
	var entries []journal.Entry
	err := r.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Save creates or updates a journal entry
func (r *GormJournalRepository) Save(ctx context.Context, e *journal.Entry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete deletes a journal entry
func (r *GormJournalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&journal.Entry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormJournalRepository implements journal.Repository
var _ journal.Repository = (*GormJournalRepository)(nil)
