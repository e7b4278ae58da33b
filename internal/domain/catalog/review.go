package catalog

import (
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// Review represents a customer's rating of a product.
// A customer may review a given product at most once; the repository
// enforces the (product, customer) uniqueness.
type Review struct {
	shared.BaseEntity
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_product_customer,priority:1"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_product_customer,priority:2"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a new review with a rating between 1 and 5
func NewReview(productID, customerID uuid.UUID, rating int, comment string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	}, nil
}
