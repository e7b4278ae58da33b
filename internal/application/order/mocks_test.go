package order

import (
	"context"
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockMailer is a mock implementation of notification.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

// MockRecipientDirectory is a mock implementation of RecipientDirectory
type MockRecipientDirectory struct {
	mock.Mock
}

func (m *MockRecipientDirectory) EmailForUser(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// Test helper functions
func newTestCustomerID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func newTestFarm(ownerID uuid.UUID, name string) *farm.Farm {
	location, _ := valueobject.NewGeoPoint(77.5946, 12.9716)
	f, _ := farm.NewFarm(ownerID, name, "Hosur Road, Bengaluru", location)
	f.ClearDomainEvents()
	return f
}

func newTestOrder(customerID, farmID uuid.UUID) *order.Order {
	o, _ := order.NewOrder("MM-2026-00042", customerID, farmID, "14 MG Road, Bengaluru")
	_, _ = o.AddItem(uuid.New(), "Fresh Cow Milk", "litre", 2, valueobject.NewMoneyINRFromFloat(60))
	o.ClearDomainEvents()
	return o
}
