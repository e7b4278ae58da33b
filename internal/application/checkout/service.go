package checkout

import (
	"context"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService turns a multi-farm cart into one order per farm
type CheckoutService struct {
	orderRepo      order.Repository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Checkout validates the cart, splits it by farm and persists one order per
// farm. Validation runs in full before any order is created; once creation
// starts, a failure part-way reports the orders already placed.
func (s *CheckoutService) Checkout(ctx context.Context, customerID uuid.UUID, req CheckoutRequest) (*CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cart cannot be empty")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
		}
	}

	// Resolve every product up front so stock and existence problems
	// surface before anything is written.
	productIDs := make([]uuid.UUID, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	// Reserving against the in-memory copies accumulates quantities of
	// repeated cart lines and rejects any line exceeding the available
	// stock before anything is written.
	for _, item := range req.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s not found", item.ProductID))
		}
		if err := product.Reserve(item.Quantity); err != nil {
			return nil, err
		}
	}

	// Split the cart by farm, keeping farms in first-appearance order
	farmOrder := make([]uuid.UUID, 0)
	itemsByFarm := make(map[uuid.UUID][]CartItem)
	for _, item := range req.Items {
		farmID := productsByID[item.ProductID].FarmID
		if _, seen := itemsByFarm[farmID]; !seen {
			farmOrder = append(farmOrder, farmID)
		}
		itemsByFarm[farmID] = append(itemsByFarm[farmID], item)
	}

	placed := make([]OrderResponse, 0, len(farmOrder))
	grandTotal := decimal.Zero
	for _, farmID := range farmOrder {
		o, err := s.placeFarmOrder(ctx, customerID, farmID, itemsByFarm[farmID], req.DeliveryAddress, productsByID)
		if err != nil {
			if len(placed) > 0 {
				succeeded := make([]string, len(placed))
				for i, p := range placed {
					succeeded[i] = p.OrderNumber
				}
				return nil, shared.NewPartialFailureError(
					fmt.Sprintf("Checkout failed after %d of %d orders were placed", len(placed), len(farmOrder)),
					succeeded, err)
			}
			return nil, err
		}

		s.publishDomainEvents(ctx, o)
		placed = append(placed, ToOrderResponse(o))
		grandTotal = grandTotal.Add(o.TotalAmount)
	}

	return &CheckoutResponse{
		Orders:      placed,
		TotalAmount: grandTotal,
	}, nil
}

func (s *CheckoutService) placeFarmOrder(
	ctx context.Context,
	customerID, farmID uuid.UUID,
	items []CartItem,
	deliveryAddress string,
	productsByID map[uuid.UUID]*catalog.Product,
) (*order.Order, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(orderNumber, customerID, farmID, deliveryAddress)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product := productsByID[item.ProductID]
		if _, err := o.AddItem(product.ID, product.Name, product.Unit, item.Quantity, product.PriceMoney()); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	// Persist the reserved stock levels for this farm's products
	for _, item := range items {
		if err := s.productRepo.Save(ctx, productsByID[item.ProductID]); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (s *CheckoutService) publishDomainEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Notification is fire-and-forget; handler failures never fail checkout
	_ = s.eventPublisher.Publish(ctx, events...)
	o.ClearDomainEvents()
}
