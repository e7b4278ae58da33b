package farm

import (
	"testing"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation(t *testing.T) valueobject.GeoPoint {
	t.Helper()
	p, err := valueobject.NewGeoPoint(77.5946, 12.9716)
	require.NoError(t, err)
	return p
}

func TestNewFarm(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates farm with valid data", func(t *testing.T) {
		f, err := NewFarm(ownerID, "Green Pastures", "12 Village Road, Hosur", testLocation(t))
		require.NoError(t, err)
		assert.Equal(t, "Green Pastures", f.Name)
		assert.Equal(t, ownerID, f.OwnerID)
		assert.Equal(t, 77.5946, f.Longitude)
		assert.Equal(t, 12.9716, f.Latitude)
		assert.Equal(t, 1, f.Version)
	})

	t.Run("raises registered event", func(t *testing.T) {
		f, err := NewFarm(ownerID, "Green Pastures", "12 Village Road", testLocation(t))
		require.NoError(t, err)
		events := f.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeFarmRegistered, events[0].EventType())
	})

	t.Run("rejects empty owner", func(t *testing.T) {
		_, err := NewFarm(uuid.Nil, "Green Pastures", "12 Village Road", testLocation(t))
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewFarm(ownerID, "   ", "12 Village Road", testLocation(t))
		assert.Error(t, err)
	})

	t.Run("rejects empty address", func(t *testing.T) {
		_, err := NewFarm(ownerID, "Green Pastures", "", testLocation(t))
		assert.Error(t, err)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		f, err := NewFarm(ownerID, "  Green Pastures  ", "  12 Village Road  ", testLocation(t))
		require.NoError(t, err)
		assert.Equal(t, "Green Pastures", f.Name)
		assert.Equal(t, "12 Village Road", f.Address)
	})
}

func TestFarmRename(t *testing.T) {
	f, err := NewFarm(uuid.New(), "Green Pastures", "12 Village Road", testLocation(t))
	require.NoError(t, err)

	t.Run("renames with valid name", func(t *testing.T) {
		require.NoError(t, f.Rename("Happy Cows"))
		assert.Equal(t, "Happy Cows", f.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		assert.Error(t, f.Rename(""))
	})
}

func TestFarmRelocate(t *testing.T) {
	f, err := NewFarm(uuid.New(), "Green Pastures", "12 Village Road", testLocation(t))
	require.NoError(t, err)
	f.ClearDomainEvents()

	t.Run("updates address and coordinates", func(t *testing.T) {
		newLoc, err := valueobject.NewGeoPoint(78.4867, 17.3850)
		require.NoError(t, err)
		require.NoError(t, f.Relocate("45 Lake View, Hyderabad", newLoc))
		assert.Equal(t, "45 Lake View, Hyderabad", f.Address)
		assert.Equal(t, 78.4867, f.Longitude)
		assert.Equal(t, 17.3850, f.Latitude)

		events := f.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeFarmRelocated, events[0].EventType())
	})

	t.Run("rejects empty address", func(t *testing.T) {
		assert.Error(t, f.Relocate("", testLocation(t)))
	})
}

func TestFarmLocation(t *testing.T) {
	f, err := NewFarm(uuid.New(), "Green Pastures", "12 Village Road", testLocation(t))
	require.NoError(t, err)
	loc := f.Location()
	assert.Equal(t, 77.5946, loc.Longitude())
	assert.Equal(t, 12.9716, loc.Latitude())
}
