package farm

import (
	"context"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFarmRepository is a mock implementation of farm.Repository
type MockFarmRepository struct {
	mock.Mock
}

func (m *MockFarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*farm.Farm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*farm.Farm, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) FindByName(ctx context.Context, name string) (*farm.Farm, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]farm.Farm, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) FindAll(ctx context.Context, filter shared.Filter) ([]farm.Farm, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]farm.Farm), args.Error(1)
}

func (m *MockFarmRepository) Save(ctx context.Context, f *farm.Farm) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFarmRepository) SaveWithLock(ctx context.Context, f *farm.Farm) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFarmRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, farmID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository is a mock implementation of catalog.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProductAndCustomer(ctx context.Context, productID, customerID uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, productID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]catalog.Review, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) StatsByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]catalog.ReviewStats, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]catalog.ReviewStats), args.Error(1)
}

func (m *MockReviewRepository) AverageRatingForProducts(ctx context.Context, productIDs []uuid.UUID) (float64, error) {
	args := m.Called(ctx, productIDs)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *catalog.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByFarm(ctx context.Context, farmID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, farmID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByFarm(ctx context.Context, farmID uuid.UUID) (int64, error) {
	args := m.Called(ctx, farmID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SalesForFarm(ctx context.Context, farmID uuid.UUID, since time.Time) (*order.FarmSales, error) {
	args := m.Called(ctx, farmID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.FarmSales), args.Error(1)
}

func (m *MockOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockGeoIndex is a mock implementation of farm.GeoIndex
type MockGeoIndex struct {
	mock.Mock
}

func (m *MockGeoIndex) Upsert(ctx context.Context, farmID uuid.UUID, location valueobject.GeoPoint) error {
	args := m.Called(ctx, farmID, location)
	return args.Error(0)
}

func (m *MockGeoIndex) Remove(ctx context.Context, farmID uuid.UUID) error {
	args := m.Called(ctx, farmID)
	return args.Error(0)
}

func (m *MockGeoIndex) Nearest(ctx context.Context, origin valueobject.GeoPoint, limit int) ([]farm.Distance, error) {
	args := m.Called(ctx, origin, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]farm.Distance), args.Error(1)
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// Test helper functions
func newTestOwnerID() uuid.UUID {
	return uuid.MustParse("11111111-1111-1111-1111-111111111111")
}

func newTestFarm(ownerID uuid.UUID, name string) *farm.Farm {
	location, _ := valueobject.NewGeoPoint(77.5946, 12.9716)
	f, _ := farm.NewFarm(ownerID, name, "Hosur Road, Bengaluru", location)
	f.ClearDomainEvents()
	return f
}
