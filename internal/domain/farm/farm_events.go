package farm

import (
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeFarm = "Farm"

// Event type constants
const (
	EventTypeFarmRegistered = "FarmRegistered"
	EventTypeFarmRelocated  = "FarmRelocated"
)

// FarmRegisteredEvent is raised when a new farm is registered
type FarmRegisteredEvent struct {
	shared.BaseDomainEvent
	FarmID    uuid.UUID `json:"farm_id"`
	FarmName  string    `json:"farm_name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
}

// NewFarmRegisteredEvent creates a new FarmRegisteredEvent
func NewFarmRegisteredEvent(f *Farm) *FarmRegisteredEvent {
	return &FarmRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFarmRegistered, AggregateTypeFarm, f.ID),
		FarmID:          f.ID,
		FarmName:        f.Name,
		OwnerID:         f.OwnerID,
		Longitude:       f.Longitude,
		Latitude:        f.Latitude,
	}
}

// EventType returns the event type name
func (e *FarmRegisteredEvent) EventType() string {
	return EventTypeFarmRegistered
}

// FarmRelocatedEvent is raised when a farm changes address or coordinates.
// The geo index listens for this to refresh the farm's position.
type FarmRelocatedEvent struct {
	shared.BaseDomainEvent
	FarmID    uuid.UUID `json:"farm_id"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
}

// NewFarmRelocatedEvent creates a new FarmRelocatedEvent
func NewFarmRelocatedEvent(f *Farm) *FarmRelocatedEvent {
	return &FarmRelocatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFarmRelocated, AggregateTypeFarm, f.ID),
		FarmID:          f.ID,
		Longitude:       f.Longitude,
		Latitude:        f.Latitude,
	}
}

// EventType returns the event type name
func (e *FarmRelocatedEvent) EventType() string {
	return EventTypeFarmRelocated
}
