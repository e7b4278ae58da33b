package subscription

import (
	"context"
	"testing"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/alnsrinivas/Milkmitra/internal/domain/subscription"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubscriptionRepository is a mock implementation of subscription.Repository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByCustomerAndFarm(ctx context.Context, customerID, farmID uuid.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, customerID, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]subscription.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByFarm(ctx context.Context, farmID uuid.UUID) ([]subscription.Subscription, error) {
	args := m.Called(ctx, farmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Save(ctx context.Context, s *subscription.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func newTestCustomerID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func newTestFarm(name string) *farm.Farm {
	location, _ := valueobject.NewGeoPoint(77.5946, 12.9716)
	f, _ := farm.NewFarm(uuid.New(), name, "Hosur Road, Bengaluru", location)
	f.ClearDomainEvents()
	return f
}

func newTestProduct(farmID uuid.UUID) *catalog.Product {
	p, _ := catalog.NewProduct(farmID, "Fresh Cow Milk", catalog.MilkTypeCow, "", valueobject.NewMoneyINRFromFloat(60), "litre")
	p.ClearDomainEvents()
	return p
}

func TestSubscriptionService_Subscribe_New(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	customerID := newTestCustomerID()
	f := newTestFarm("Sunrise Dairy")
	product := newTestProduct(f.ID)
	req := &SubscribeRequest{ProductID: product.ID, Plan: "Premium Plan"}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockSubRepo.On("FindByCustomerAndFarm", ctx, customerID, f.ID).Return(nil, shared.ErrNotFound)
	mockSubRepo.On("Save", ctx, mock.AnythingOfType("*subscription.Subscription")).Return(nil)
	mockFarmRepo.On("FindByID", ctx, f.ID).Return(f, nil)

	result, err := service.Subscribe(ctx, customerID, req)

	assert.NoError(t, err)
	assert.Equal(t, "Premium Plan", result.Plan)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, "Sunrise Dairy", result.FarmName)
	mockSubRepo.AssertExpectations(t)
}

func TestSubscriptionService_Subscribe_ExistingIsRenewed(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	customerID := newTestCustomerID()
	f := newTestFarm("Sunrise Dairy")
	product := newTestProduct(f.ID)
	existing, _ := subscription.NewSubscription(customerID, f.ID, subscription.PlanPremium)
	assert.NoError(t, existing.Cancel())
	req := &SubscribeRequest{ProductID: product.ID, Plan: "Family Plan"}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	mockSubRepo.On("FindByCustomerAndFarm", ctx, customerID, f.ID).Return(existing, nil)
	mockSubRepo.On("Save", ctx, existing).Return(nil)
	mockFarmRepo.On("FindByID", ctx, f.ID).Return(f, nil)

	result, err := service.Subscribe(ctx, customerID, req)

	assert.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
	assert.Equal(t, "Family Plan", result.Plan)
	assert.Equal(t, "active", result.Status)
	mockSubRepo.AssertExpectations(t)
}

func TestSubscriptionService_Subscribe_UnknownPlan(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	f := newTestFarm("Sunrise Dairy")
	product := newTestProduct(f.ID)
	req := &SubscribeRequest{ProductID: product.ID, Plan: "Gold Plan"}

	mockProductRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	result, err := service.Subscribe(ctx, newTestCustomerID(), req)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PLAN", domainErr.Code)
	mockSubRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubscriptionService_Subscribe_ProductNotFound(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	missingID := uuid.New()

	mockProductRepo.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

	result, err := service.Subscribe(ctx, newTestCustomerID(), &SubscribeRequest{ProductID: missingID, Plan: "Premium Plan"})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestSubscriptionService_PauseAndResume(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	customerID := newTestCustomerID()
	f := newTestFarm("Sunrise Dairy")
	sub, _ := subscription.NewSubscription(customerID, f.ID, subscription.PlanPremium)

	mockSubRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)
	mockSubRepo.On("Save", ctx, sub).Return(nil)
	mockFarmRepo.On("FindByID", ctx, f.ID).Return(f, nil)

	paused, err := service.Pause(ctx, customerID, sub.ID)
	assert.NoError(t, err)
	assert.Equal(t, "paused", paused.Status)

	resumed, err := service.Resume(ctx, customerID, sub.ID)
	assert.NoError(t, err)
	assert.Equal(t, "active", resumed.Status)
}

func TestSubscriptionService_Pause_NotOwner(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	sub, _ := subscription.NewSubscription(newTestCustomerID(), uuid.New(), subscription.PlanPremium)

	mockSubRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)

	result, err := service.Pause(ctx, uuid.New(), sub.ID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrForbidden)
	mockSubRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSubscriptionService_Cancel_AlreadyCancelled(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	customerID := newTestCustomerID()
	sub, _ := subscription.NewSubscription(customerID, uuid.New(), subscription.PlanPremium)
	assert.NoError(t, sub.Cancel())

	mockSubRepo.On("FindByID", ctx, sub.ID).Return(sub, nil)

	result, err := service.Cancel(ctx, customerID, sub.ID)

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestSubscriptionService_ListMySubscriptions(t *testing.T) {
	mockSubRepo := new(MockSubscriptionRepository)
	mockProductRepo := new(MockProductRepository)
	mockFarmRepo := new(MockFarmRepository)
	service := NewSubscriptionService(mockSubRepo, mockProductRepo, mockFarmRepo)

	ctx := context.Background()
	customerID := newTestCustomerID()
	sunrise := newTestFarm("Sunrise Dairy")
	meadow := newTestFarm("Green Meadow")
	s1, _ := subscription.NewSubscription(customerID, sunrise.ID, subscription.PlanPremium)
	s2, _ := subscription.NewSubscription(customerID, meadow.ID, subscription.PlanFamily)

	mockSubRepo.On("FindByCustomer", ctx, customerID).Return([]subscription.Subscription{*s1, *s2}, nil)
	mockFarmRepo.On("FindByIDs", ctx, mock.Anything).Return([]farm.Farm{*sunrise, *meadow}, nil)

	result, err := service.ListMySubscriptions(ctx, customerID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Sunrise Dairy", result[0].FarmName)
	assert.Equal(t, "Green Meadow", result[1].FarmName)
}
