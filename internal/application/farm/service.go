package farm

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultNearestLimit caps nearest-farm queries that do not ask for a limit
const defaultNearestLimit = 20

// FarmService handles farm registration, updates and farmer-facing stats
type FarmService struct {
	farmRepo       farm.Repository
	productRepo    catalog.ProductRepository
	reviewRepo     catalog.ReviewRepository
	orderRepo      order.Repository
	geoIndex       farm.GeoIndex
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewFarmService creates a new FarmService
func NewFarmService(
	farmRepo farm.Repository,
	productRepo catalog.ProductRepository,
	reviewRepo catalog.ReviewRepository,
	orderRepo order.Repository,
	geoIndex farm.GeoIndex,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *FarmService {
	return &FarmService{
		farmRepo:       farmRepo,
		productRepo:    productRepo,
		reviewRepo:     reviewRepo,
		orderRepo:      orderRepo,
		geoIndex:       geoIndex,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Register registers a farm for the given owner. Each farmer can register
// at most one farm, and farm names are unique across the platform.
func (s *FarmService) Register(ctx context.Context, ownerID uuid.UUID, req RegisterFarmRequest) (*FarmResponse, error) {
	location, err := valueobject.NewGeoPoint(req.Longitude, req.Latitude)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_COORDINATE", err.Error())
	}

	if _, err := s.farmRepo.FindByOwner(ctx, ownerID); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "You have already registered a farm")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if _, err := s.farmRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A farm with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	f, err := farm.NewFarm(ownerID, req.Name, req.Address, location)
	if err != nil {
		return nil, err
	}

	if err := s.farmRepo.Save(ctx, f); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, f)

	response := ToFarmResponse(f)
	return &response, nil
}

// GetMyFarm returns the farm owned by the given farmer
func (s *FarmService) GetMyFarm(ctx context.Context, ownerID uuid.UUID) (*FarmResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	response := ToFarmResponse(f)
	return &response, nil
}

// GetByID returns a farm by its ID
func (s *FarmService) GetByID(ctx context.Context, farmID uuid.UUID) (*FarmResponse, error) {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return nil, err
	}

	response := ToFarmResponse(f)
	return &response, nil
}

// Update changes the farmer's own farm. A new name must still be unique;
// new coordinates must be a valid pair.
func (s *FarmService) Update(ctx context.Context, ownerID uuid.UUID, req UpdateFarmRequest) (*FarmResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != f.Name {
		if _, err := s.farmRepo.FindByName(ctx, *req.Name); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A farm with this name already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if err := f.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if (req.Longitude == nil) != (req.Latitude == nil) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Longitude and latitude must be provided together")
	}

	if req.Address != nil || req.Longitude != nil {
		address := f.Address
		if req.Address != nil {
			address = *req.Address
		}

		location := f.Location()
		if req.Longitude != nil {
			location, err = valueobject.NewGeoPoint(*req.Longitude, *req.Latitude)
			if err != nil {
				return nil, shared.NewDomainError("INVALID_COORDINATE", err.Error())
			}
		}

		if err := f.Relocate(address, location); err != nil {
			return nil, err
		}
	}

	if err := s.farmRepo.SaveWithLock(ctx, f); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, f)

	response := ToFarmResponse(f)
	return &response, nil
}

// NearestFarms returns farms ordered by distance from the given origin
func (s *FarmService) NearestFarms(ctx context.Context, query NearestFarmsQuery) ([]NearbyFarmResponse, error) {
	origin, err := valueobject.NewGeoPoint(query.Longitude, query.Latitude)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_COORDINATE", err.Error())
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultNearestLimit
	}

	distances, err := s.geoIndex.Nearest(ctx, origin, limit)
	if err != nil {
		s.logger.Error("geo index query failed", zap.Error(err))
		return nil, shared.ErrServiceUnavailable
	}

	ids := make([]uuid.UUID, len(distances))
	for i, d := range distances {
		ids[i] = d.FarmID
	}

	farms, err := s.farmRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*farm.Farm, len(farms))
	for i := range farms {
		byID[farms[i].ID] = &farms[i]
	}

	// Preserve the index ordering; farms deleted since the last index
	// refresh are skipped.
	responses := make([]NearbyFarmResponse, 0, len(distances))
	for _, d := range distances {
		f, ok := byID[d.FarmID]
		if !ok {
			continue
		}
		responses = append(responses, NearbyFarmResponse{
			FarmResponse:   ToFarmResponse(f),
			DistanceMeters: d.Meters,
		})
	}
	return responses, nil
}

// Stats summarizes the farmer's trading day: orders and revenue since local
// midnight, the average rating across all their products (one decimal) and
// the number of distinct customers who ever ordered.
func (s *FarmService) Stats(ctx context.Context, ownerID uuid.UUID) (*FarmStatsResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sales, err := s.orderRepo.SalesForFarm(ctx, f.ID, midnight)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByFarm(ctx, f.ID, shared.Filter{})
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	avgRating, err := s.reviewRepo.AverageRatingForProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	activeCustomers, err := s.orderRepo.SalesForFarm(ctx, f.ID, time.Time{})
	if err != nil {
		return nil, err
	}

	return &FarmStatsResponse{
		FarmID:          f.ID,
		OrdersToday:     sales.OrderCount,
		RevenueToday:    sales.Revenue,
		AverageRating:   math.Round(avgRating*10) / 10,
		ActiveCustomers: activeCustomers.DistinctBuyers,
	}, nil
}

func (s *FarmService) publishDomainEvents(ctx context.Context, f *farm.Farm) {
	if s.eventPublisher == nil {
		return
	}
	events := f.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Handler failures are logged by the bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
	f.ClearDomainEvents()
}
