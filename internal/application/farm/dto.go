package farm

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterFarmRequest represents a request to register a new farm
type RegisterFarmRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=200"`
	Address   string  `json:"address" binding:"required,min=1"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// UpdateFarmRequest represents a request to update a farm.
// Coordinates travel together: setting one without the other is rejected.
type UpdateFarmRequest struct {
	Name      *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Address   *string  `json:"address" binding:"omitempty,min=1"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// FarmResponse represents a farm in API responses
type FarmResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Address   string    `json:"address"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// NearbyFarmResponse is a farm paired with its distance from the query origin
type NearbyFarmResponse struct {
	FarmResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// NearestFarmsQuery represents a nearest-farms lookup
type NearestFarmsQuery struct {
	Longitude float64 `form:"longitude" binding:"required"`
	Latitude  float64 `form:"latitude" binding:"required"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

// FarmStatsResponse summarizes a farm's trading day
type FarmStatsResponse struct {
	FarmID          uuid.UUID       `json:"farm_id"`
	OrdersToday     int64           `json:"orders_today"`
	RevenueToday    decimal.Decimal `json:"revenue_today"`
	AverageRating   float64         `json:"average_rating"`
	ActiveCustomers int64           `json:"active_customers"`
}

// ToFarmResponse converts a domain Farm to FarmResponse
func ToFarmResponse(f *farm.Farm) FarmResponse {
	return FarmResponse{
		ID:        f.ID,
		Name:      f.Name,
		OwnerID:   f.OwnerID,
		Address:   f.Address,
		Longitude: f.Longitude,
		Latitude:  f.Latitude,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		Version:   f.Version,
	}
}
