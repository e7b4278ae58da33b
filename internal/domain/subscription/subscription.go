package subscription

import (
	"fmt"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// Plan represents a subscription plan
type Plan string

const (
	PlanPremium Plan = "Premium Plan"
	PlanFamily  Plan = "Family Plan"
)

// IsValid checks if the plan is a known Plan
func (p Plan) IsValid() bool {
	return p == PlanPremium || p == PlanFamily
}

// String returns the string representation of Plan
func (p Plan) String() string {
	return string(p)
}

// Status represents the state of a subscription
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a known Status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Subscription represents a recurring delivery arrangement between a
// customer and a farm. At most one subscription exists per
// (customer, farm) pair; re-subscribing updates the existing one.
type Subscription struct {
	shared.BaseAggregateRoot
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_customer_farm,priority:1"`
	FarmID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sub_customer_farm,priority:2"`
	Plan       Plan      `gorm:"type:varchar(30);not null"`
	Status     Status    `gorm:"type:varchar(20);not null;default:'active'"`
	StartDate  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// NewSubscription creates a new active subscription
func NewSubscription(customerID, farmID uuid.UUID, plan Plan) (*Subscription, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if farmID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FARM", "Farm ID cannot be empty")
	}
	if !plan.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLAN", fmt.Sprintf("Unknown plan: %s", plan))
	}

	return &Subscription{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		FarmID:            farmID,
		Plan:              plan,
		Status:            StatusActive,
		StartDate:         time.Now(),
	}, nil
}

// Renew switches the plan, reactivates the subscription and restarts
// the start date. Used when a customer subscribes to a farm they
// already have a subscription with.
func (s *Subscription) Renew(plan Plan) error {
	if !plan.IsValid() {
		return shared.NewDomainError("INVALID_PLAN", fmt.Sprintf("Unknown plan: %s", plan))
	}
	now := time.Now()
	s.Plan = plan
	s.Status = StatusActive
	s.StartDate = now
	s.UpdatedAt = now
	return nil
}

// Pause pauses an active subscription
func (s *Subscription) Pause() error {
	if s.Status != StatusActive {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot pause a %s subscription", s.Status))
	}
	s.Status = StatusPaused
	s.Touch()
	return nil
}

// Resume reactivates a paused subscription
func (s *Subscription) Resume() error {
	if s.Status != StatusPaused {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot resume a %s subscription", s.Status))
	}
	s.Status = StatusActive
	s.Touch()
	return nil
}

// Cancel cancels the subscription
func (s *Subscription) Cancel() error {
	if s.Status == StatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Subscription is already cancelled")
	}
	s.Status = StatusCancelled
	s.Touch()
	return nil
}
