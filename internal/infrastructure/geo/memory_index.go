package geo

import (
	"context"
	"sort"
	"sync"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// MemoryGeoIndex keeps farm coordinates in process memory. It is suitable
// for single-instance deployments and for tests; the index is rebuilt from
// the farms table on startup.
type MemoryGeoIndex struct {
	mu        sync.RWMutex
	locations map[uuid.UUID]valueobject.GeoPoint
}

// NewMemoryGeoIndex creates an empty in-memory geo index
func NewMemoryGeoIndex() *MemoryGeoIndex {
	return &MemoryGeoIndex{
		locations: make(map[uuid.UUID]valueobject.GeoPoint),
	}
}

// Upsert adds or moves a farm in the index
func (i *MemoryGeoIndex) Upsert(_ context.Context, farmID uuid.UUID, location valueobject.GeoPoint) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.locations[farmID] = location
	return nil
}

// Remove drops a farm from the index
func (i *MemoryGeoIndex) Remove(_ context.Context, farmID uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.locations, farmID)
	return nil
}

// Nearest returns up to limit farms ordered by distance from origin.
// Ties break on farm ID so repeated calls return the same order.
func (i *MemoryGeoIndex) Nearest(_ context.Context, origin valueobject.GeoPoint, limit int) ([]farm.Distance, error) {
	i.mu.RLock()
	distances := make([]farm.Distance, 0, len(i.locations))
	for id, loc := range i.locations {
		distances = append(distances, farm.Distance{
			FarmID: id,
			Meters: origin.DistanceTo(loc),
		})
	}
	i.mu.RUnlock()

	sort.Slice(distances, func(a, b int) bool {
		if distances[a].Meters != distances[b].Meters {
			return distances[a].Meters < distances[b].Meters
		}
		return distances[a].FarmID.String() < distances[b].FarmID.String()
	})

	if limit > 0 && len(distances) > limit {
		distances = distances[:limit]
	}
	return distances, nil
}

// Len returns the number of indexed farms
func (i *MemoryGeoIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.locations)
}

// Ensure MemoryGeoIndex implements farm.GeoIndex
var _ farm.GeoIndex = (*MemoryGeoIndex)(nil)
