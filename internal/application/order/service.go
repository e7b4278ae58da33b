package order

import (
	"context"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order retrieval and lifecycle transitions
type OrderService struct {
	orderRepo      order.Repository
	farmRepo       farm.Repository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo order.Repository,
	farmRepo farm.Repository,
	eventPublisher shared.EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		farmRepo:       farmRepo,
		eventPublisher: eventPublisher,
	}
}

// ListCustomerOrders returns the customer's own orders, newest first
func (s *OrderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, customerID, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListFarmOrders returns the orders received by the farmer's farm
func (s *OrderService) ListFarmOrders(ctx context.Context, ownerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByFarm(ctx, f.ID, toDomainFilter(filter))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// GetOrder returns an order to its customer or to the owner of the farm it
// was placed with; anyone else is refused.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.CustomerID != userID {
		f, err := s.farmRepo.FindByID(ctx, o.FarmID)
		if err != nil || f.OwnerID != userID {
			return nil, shared.ErrForbidden
		}
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// UpdateStatus moves an order along the delivery chain. Only the owner of
// the farm the order was placed with may do this.
func (s *OrderService) UpdateStatus(ctx context.Context, ownerID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	f, err := s.farmRepo.FindByID(ctx, o.FarmID)
	if err != nil || f.OwnerID != ownerID {
		return nil, shared.ErrForbidden
	}

	target := order.Status(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown order status: %s", req.Status))
	}

	if err := o.TransitionTo(target); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// CancelOrder cancels the customer's own order from any non-terminal state
func (s *OrderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, shared.ErrForbidden
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

func (s *OrderService) publishDomainEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	o.ClearDomainEvents()
}

func toDomainFilter(filter OrderListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}

func toOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
