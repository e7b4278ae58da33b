package persistence

import (
	"context"
	"testing"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFarmTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&farm.Farm{})
	require.NoError(t, err)

	return db
}

func createTestFarm(t *testing.T, name string) *farm.Farm {
	location, err := valueobject.NewGeoPoint(77.5946, 12.9716)
	require.NoError(t, err)

	f, err := farm.NewFarm(uuid.New(), name, "12 Dairy Lane, Bengaluru", location)
	require.NoError(t, err)
	return f
}

func TestGormFarmRepository_Save(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	t.Run("saves new farm", func(t *testing.T) {
		f := createTestFarm(t, "Green Meadows")

		err := repo.Save(ctx, f)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Green Meadows", found.Name)
		assert.Equal(t, f.OwnerID, found.OwnerID)
		assert.InDelta(t, 77.5946, found.Longitude, 1e-9)
		assert.InDelta(t, 12.9716, found.Latitude, 1e-9)
	})

	t.Run("updates existing farm", func(t *testing.T) {
		f := createTestFarm(t, "Sunrise Dairy")
		require.NoError(t, repo.Save(ctx, f))

		require.NoError(t, f.Rename("Sunrise Organic Dairy"))
		require.NoError(t, repo.Save(ctx, f))

		found, err := repo.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sunrise Organic Dairy", found.Name)
	})
}

func TestGormFarmRepository_FindByOwner(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	t.Run("finds the owner's farm", func(t *testing.T) {
		f := createTestFarm(t, "Hillside Farm")
		require.NoError(t, repo.Save(ctx, f))

		found, err := repo.FindByOwner(ctx, f.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, f.ID, found.ID)
	})

	t.Run("returns not found for owner without a farm", func(t *testing.T) {
		found, err := repo.FindByOwner(ctx, uuid.New())
		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormFarmRepository_FindByName(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	f := createTestFarm(t, "Riverbank Dairy")
	require.NoError(t, repo.Save(ctx, f))

	t.Run("finds farm by name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "Riverbank Dairy")
		require.NoError(t, err)
		assert.Equal(t, f.ID, found.ID)
	})

	t.Run("returns not found for unknown name", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "No Such Farm")
		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormFarmRepository_FindByIDs(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	a := createTestFarm(t, "Farm A")
	b := createTestFarm(t, "Farm B")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	t.Run("loads requested farms in one call", func(t *testing.T) {
		farms, err := repo.FindByIDs(ctx, []uuid.UUID{a.ID, b.ID})
		require.NoError(t, err)
		assert.Len(t, farms, 2)
	})

	t.Run("returns empty slice for empty input", func(t *testing.T) {
		farms, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, farms)
	})
}

func TestGormFarmRepository_FindAll(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestFarm(t, "Happy Cows")))
	require.NoError(t, repo.Save(ctx, createTestFarm(t, "Buffalo Grove")))

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "happy"

		farms, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, farms, 1)
		assert.Equal(t, "Happy Cows", farms[0].Name)
	})

	t.Run("pagination limits results", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.PageSize = 1

		farms, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, farms, 1)
	})
}

func TestGormFarmRepository_SaveWithLock(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	t.Run("saves when version matches", func(t *testing.T) {
		f := createTestFarm(t, "Lockstep Farm")
		require.NoError(t, repo.Save(ctx, f))

		require.NoError(t, f.Rename("Lockstep Dairy"))
		err := repo.SaveWithLock(ctx, f)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lockstep Dairy", found.Name)
		assert.Equal(t, f.Version, found.Version)
	})

	t.Run("rejects stale version", func(t *testing.T) {
		f := createTestFarm(t, "Contested Farm")
		require.NoError(t, repo.Save(ctx, f))

		stale := *f
		require.NoError(t, repo.SaveWithLock(ctx, f))

		err := repo.SaveWithLock(ctx, &stale)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONCURRENT_MODIFICATION", domainErr.Code)
	})
}

func TestGormFarmRepository_Delete(t *testing.T) {
	db := setupFarmTestDB(t)
	repo := NewGormFarmRepository(db)
	ctx := context.Background()

	t.Run("deletes existing farm", func(t *testing.T) {
		f := createTestFarm(t, "Short-lived Farm")
		require.NoError(t, repo.Save(ctx, f))

		require.NoError(t, repo.Delete(ctx, f.ID))

		_, err := repo.FindByID(ctx, f.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("returns not found for unknown farm", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
