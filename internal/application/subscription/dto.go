package subscription

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/subscription"
	"github.com/google/uuid"
)

// SubscribeRequest represents a request to subscribe to a farm through
// one of its products
type SubscribeRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Plan      string    `json:"plan" binding:"required"`
}

// SubscriptionResponse represents a subscription in API responses
type SubscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	FarmID    uuid.UUID `json:"farm_id"`
	FarmName  string    `json:"farm_name,omitempty"`
	Plan      string    `json:"plan"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSubscriptionResponse converts a domain subscription to a response DTO
func ToSubscriptionResponse(s *subscription.Subscription, farmName string) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        s.ID,
		FarmID:    s.FarmID,
		FarmName:  farmName,
		Plan:      s.Plan.String(),
		Status:    s.Status.String(),
		StartDate: s.StartDate,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
