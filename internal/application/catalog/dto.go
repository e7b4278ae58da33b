package catalog

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sort options for the public product listing
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// CreateProductRequest represents a farmer's request to list a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Type        string          `json:"type" binding:"required"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Unit        string          `json:"unit" binding:"required,min=1,max=20"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url"`
	Stock       *int            `json:"stock" binding:"omitempty,min=0"`
}

// UpdateProductRequest represents a farmer's request to change a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Type        *string          `json:"type"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Unit        *string          `json:"unit" binding:"omitempty,min=1,max=20"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,url"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	FarmID      uuid.UUID       `json:"farm_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ListProductsQuery represents the public discovery query
type ListProductsQuery struct {
	Longitude *float64 `form:"longitude"`
	Latitude  *float64 `form:"latitude"`
	Type      string   `form:"type"`
	Search    string   `form:"search"`
	Sort      string   `form:"sort" binding:"omitempty,oneof=price_asc price_desc"`
}

// FarmSummary carries the owning farm's details on a listing entry
type FarmSummary struct {
	FarmID   uuid.UUID `json:"farm_id"`
	FarmName string    `json:"farm_name"`
	Address  string    `json:"address"`
	OwnerID  uuid.UUID `json:"owner_id"`
}

// ListingEntry is one product in the discovery listing: the product joined
// to its farm, annotated with review stats and, when the query carried
// coordinates, the distance to the farm.
type ListingEntry struct {
	ProductResponse
	Farm           FarmSummary `json:"farm"`
	AverageRating  float64     `json:"average_rating"`
	ReviewCount    int64       `json:"review_count"`
	DistanceMeters *float64    `json:"distance_meters,omitempty"`
}

// AddReviewRequest represents a customer's review submission
type AddReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=2000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		FarmID:      p.FarmID,
		Name:        p.Name,
		Type:        p.Type.String(),
		Description: p.Description,
		Price:       p.Price,
		Unit:        p.Unit,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToReviewResponse converts a domain Review to ReviewResponse
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
