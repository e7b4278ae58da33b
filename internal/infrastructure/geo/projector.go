package geo

import (
	"context"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FarmLocationProjector keeps the geo index in sync with the farm
// aggregate by listening for registration and relocation events.
type FarmLocationProjector struct {
	index  farm.GeoIndex
	logger *zap.Logger
}

// NewFarmLocationProjector creates a projector writing into index
func NewFarmLocationProjector(index farm.GeoIndex, logger *zap.Logger) *FarmLocationProjector {
	return &FarmLocationProjector{
		index:  index,
		logger: logger,
	}
}

// EventTypes returns the farm events the projector reacts to
func (p *FarmLocationProjector) EventTypes() []string {
	return []string{
		farm.EventTypeFarmRegistered,
		farm.EventTypeFarmRelocated,
	}
}

// Handle projects the farm's new coordinates into the index
func (p *FarmLocationProjector) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *farm.FarmRegisteredEvent:
		return p.upsert(ctx, e.FarmID, e.Longitude, e.Latitude)
	case *farm.FarmRelocatedEvent:
		return p.upsert(ctx, e.FarmID, e.Longitude, e.Latitude)
	default:
		return nil
	}
}

func (p *FarmLocationProjector) upsert(ctx context.Context, farmID uuid.UUID, longitude, latitude float64) error {
	location, err := valueobject.NewGeoPoint(longitude, latitude)
	if err != nil {
		// The aggregate validated on the way in, so this only happens for
		// corrupt events; log and drop rather than retry forever.
		p.logger.Error("invalid farm coordinates in event",
			zap.String("farm_id", farmID.String()),
			zap.Error(err))
		return nil
	}

	if err := p.index.Upsert(ctx, farmID, location); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}
	return nil
}

// Ensure FarmLocationProjector implements shared.EventHandler
var _ shared.EventHandler = (*FarmLocationProjector)(nil)
