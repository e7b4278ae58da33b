package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/subscription"
	"github.com/google/uuid"
)

// SubscriptionService handles subscription use cases
type SubscriptionService struct {
	subscriptionRepo subscription.Repository
	productRepo      catalog.ProductRepository
	farmRepo         farm.Repository
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo subscription.Repository,
	productRepo catalog.ProductRepository,
	farmRepo farm.Repository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		farmRepo:         farmRepo,
	}
}

// Subscribe subscribes a customer to the farm that sells the given
// product. A customer holds at most one subscription per farm;
// subscribing again switches the plan and reactivates it.
func (s *SubscriptionService) Subscribe(ctx context.Context, customerID uuid.UUID, req *SubscribeRequest) (*SubscriptionResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Product %s not found", req.ProductID))
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	plan := subscription.Plan(req.Plan)
	if !plan.IsValid() {
		return nil, shared.NewDomainError("INVALID_PLAN", fmt.Sprintf("Unknown plan: %s", req.Plan))
	}

	sub, err := s.subscriptionRepo.FindByCustomerAndFarm(ctx, customerID, product.FarmID)
	switch {
	case err == nil:
		if err := sub.Renew(plan); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		sub, err = subscription.NewSubscription(customerID, product.FarmID, plan)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}

	if err := s.subscriptionRepo.Save(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	return ToSubscriptionResponse(sub, s.farmName(ctx, sub.FarmID)), nil
}

// ListMySubscriptions lists all subscriptions held by a customer
func (s *SubscriptionService) ListMySubscriptions(ctx context.Context, customerID uuid.UUID) ([]SubscriptionResponse, error) {
	subs, err := s.subscriptionRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	farmIDs := make([]uuid.UUID, 0, len(subs))
	for i := range subs {
		farmIDs = append(farmIDs, subs[i].FarmID)
	}
	farms, err := s.farmRepo.FindByIDs(ctx, farmIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load farms: %w", err)
	}
	namesByID := make(map[uuid.UUID]string, len(farms))
	for i := range farms {
		namesByID[farms[i].ID] = farms[i].Name
	}

	responses := make([]SubscriptionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, *ToSubscriptionResponse(&subs[i], namesByID[subs[i].FarmID]))
	}
	return responses, nil
}

// Pause pauses an active subscription
func (s *SubscriptionService) Pause(ctx context.Context, customerID, subscriptionID uuid.UUID) (*SubscriptionResponse, error) {
	return s.transition(ctx, customerID, subscriptionID, (*subscription.Subscription).Pause)
}

// Resume reactivates a paused subscription
func (s *SubscriptionService) Resume(ctx context.Context, customerID, subscriptionID uuid.UUID) (*SubscriptionResponse, error) {
	return s.transition(ctx, customerID, subscriptionID, (*subscription.Subscription).Resume)
}

// Cancel cancels a subscription
func (s *SubscriptionService) Cancel(ctx context.Context, customerID, subscriptionID uuid.UUID) (*SubscriptionResponse, error) {
	return s.transition(ctx, customerID, subscriptionID, (*subscription.Subscription).Cancel)
}

func (s *SubscriptionService) transition(ctx context.Context, customerID, subscriptionID uuid.UUID, apply func(*subscription.Subscription) error) (*SubscriptionResponse, error) {
	sub, err := s.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", err)
	}
	if sub.CustomerID != customerID {
		return nil, shared.ErrForbidden
	}

	if err := apply(sub); err != nil {
		return nil, err
	}
	if err := s.subscriptionRepo.Save(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	return ToSubscriptionResponse(sub, s.farmName(ctx, sub.FarmID)), nil
}

// farmName is best effort; a missing farm leaves the name blank rather
// than failing the whole operation.
func (s *SubscriptionService) farmName(ctx context.Context, farmID uuid.UUID) string {
	f, err := s.farmRepo.FindByID(ctx, farmID)
	if err != nil {
		return ""
	}
	return f.Name
}
