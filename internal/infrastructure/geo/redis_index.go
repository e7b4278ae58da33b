package geo

import (
	"context"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// maxSearchRadiusKm covers the whole globe; Nearest has no distance cutoff,
// ranking alone decides what the caller sees.
const maxSearchRadiusKm = 40075

// RedisGeoIndex keeps farm coordinates in a Redis geo set. It is suitable
// for distributed deployments where multiple instances serve listings.
type RedisGeoIndex struct {
	client *redis.Client
	key    string
}

// NewRedisGeoIndex creates a geo index backed by the given Redis client.
// All farms live under a single sorted-set key.
func NewRedisGeoIndex(client *redis.Client, key string) *RedisGeoIndex {
	if key == "" {
		key = "milkmitra:farms:geo"
	}
	return &RedisGeoIndex{
		client: client,
		key:    key,
	}
}

// Upsert adds or moves a farm in the index
func (i *RedisGeoIndex) Upsert(ctx context.Context, farmID uuid.UUID, location valueobject.GeoPoint) error {
	err := i.client.GeoAdd(ctx, i.key, &redis.GeoLocation{
		Name:      farmID.String(),
		Longitude: location.Longitude(),
		Latitude:  location.Latitude(),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to index farm location: %w", err)
	}
	return nil
}

// Remove drops a farm from the index
func (i *RedisGeoIndex) Remove(ctx context.Context, farmID uuid.UUID) error {
	if err := i.client.ZRem(ctx, i.key, farmID.String()).Err(); err != nil {
		return fmt.Errorf("failed to remove farm from index: %w", err)
	}
	return nil
}

// Nearest returns up to limit farms ordered by distance from origin
func (i *RedisGeoIndex) Nearest(ctx context.Context, origin valueobject.GeoPoint, limit int) ([]farm.Distance, error) {
	query := &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  origin.Longitude(),
			Latitude:   origin.Latitude(),
			Radius:     maxSearchRadiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      limit,
		},
		WithDist: true,
	}

	locations, err := i.client.GeoSearchLocation(ctx, i.key, query).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search farm locations: %w", err)
	}

	distances := make([]farm.Distance, 0, len(locations))
	for _, loc := range locations {
		id, parseErr := uuid.Parse(loc.Name)
		if parseErr != nil {
			// Skip entries written by something other than this index
			continue
		}
		distances = append(distances, farm.Distance{
			FarmID: id,
			Meters: loc.Dist * 1000,
		})
	}
	return distances, nil
}

// Ensure RedisGeoIndex implements farm.GeoIndex
var _ farm.GeoIndex = (*RedisGeoIndex)(nil)
