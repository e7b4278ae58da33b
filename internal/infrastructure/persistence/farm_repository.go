package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFarmRepository implements farm.Repository using GORM
type GormFarmRepository struct {
	db *gorm.DB
}

// NewGormFarmRepository creates a new GormFarmRepository
func NewGormFarmRepository(db *gorm.DB) *GormFarmRepository {
	return &GormFarmRepository{db: db}
}

// FindByID finds a farm by its ID
func (r *GormFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	var f farm.Farm
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByOwner finds the farm owned by the given user
func (r *GormFarmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*farm.Farm, error) {
	var f farm.Farm
	if err := r.db.WithContext(ctx).First(&f, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByName finds a farm by its unique display name
func (r *GormFarmRepository) FindByName(ctx context.Context, name string) (*farm.Farm, error) {
	var f farm.Farm
	if err := r.db.WithContext(ctx).First(&f, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByIDs loads the given farms in one query
func (r *GormFarmRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]farm.Farm, error) {
	if len(ids) == 0 {
		return []farm.Farm{}, nil
	}
	var farms []farm.Farm
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

// FindAll finds farms with filtering
func (r *GormFarmRepository) FindAll(ctx context.Context, filter shared.Filter) ([]farm.Farm, error) {
	var farms []farm.Farm
	query := r.applyFilter(r.db.WithContext(ctx).Model(&farm.Farm{}), filter)
	if err := query.Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

// Save creates or updates a farm
func (r *GormFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormFarmRepository) SaveWithLock(ctx context.Context, f *farm.Farm) error {
	currentVersion := f.Version
	f.Version++
	f.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&farm.Farm{}).
		Where("id = ? AND version = ?", f.ID, currentVersion).
		Updates(map[string]interface{}{
			"name":       f.Name,
			"address":    f.Address,
			"longitude":  f.Longitude,
			"latitude":   f.Latitude,
			"version":    f.Version,
			"updated_at": f.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "The farm has been modified by another user")
	}
	return nil
}

// Delete deletes a farm
func (r *GormFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&farm.Farm{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts farms matching the filter
func (r *GormFarmRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&farm.Farm{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormFarmRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

// applySearch uses LOWER(...) LIKE so the same query runs on both Postgres
// and the SQLite used in tests.
func (r *GormFarmRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormFarmRepository implements farm.Repository
var _ farm.Repository = (*GormFarmRepository)(nil)
