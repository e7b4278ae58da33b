package farm

import (
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Farm represents a dairy farm registered by a farmer.
// It is the aggregate root for farm-related operations.
// Each farmer can own at most one farm; the repository enforces the
// uniqueness of OwnerID and Name.
type Farm struct {
	shared.BaseAggregateRoot
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Address   string    `gorm:"type:text;not null"`
	Longitude float64   `gorm:"not null;default:0"`
	Latitude  float64   `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Farm) TableName() string {
	return "farms"
}

// NewFarm creates a new farm for the given owner
func NewFarm(ownerID uuid.UUID, name, address string, location valueobject.GeoPoint) (*Farm, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if err := validateFarmName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(address) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Farm address cannot be empty")
	}

	farm := &Farm{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		OwnerID:           ownerID,
		Address:           strings.TrimSpace(address),
		Longitude:         location.Longitude(),
		Latitude:          location.Latitude(),
	}

	farm.AddDomainEvent(NewFarmRegisteredEvent(farm))

	return farm, nil
}

// Location returns the farm coordinates as a GeoPoint.
// Stored coordinates were validated on the way in, so reconstruction
// cannot fail for persisted rows.
func (f *Farm) Location() valueobject.GeoPoint {
	p, _ := valueobject.NewGeoPoint(f.Longitude, f.Latitude)
	return p
}

// Rename changes the farm display name
func (f *Farm) Rename(name string) error {
	if err := validateFarmName(name); err != nil {
		return err
	}
	f.Name = strings.TrimSpace(name)
	f.Touch()
	return nil
}

// Relocate updates the farm address and coordinates
func (f *Farm) Relocate(address string, location valueobject.GeoPoint) error {
	if strings.TrimSpace(address) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Farm address cannot be empty")
	}

	f.Address = strings.TrimSpace(address)
	f.Longitude = location.Longitude()
	f.Latitude = location.Latitude()
	f.Touch()

	f.AddDomainEvent(NewFarmRelocatedEvent(f))

	return nil
}

func validateFarmName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_FARM_NAME", "Farm name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_FARM_NAME", "Farm name cannot exceed 200 characters")
	}
	return nil
}
