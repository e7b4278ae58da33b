package order

import (
	"context"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/notification"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipientDirectory resolves a user ID to an email address.
// Implementations may back onto an identity provider or a user table.
type RecipientDirectory interface {
	EmailForUser(ctx context.Context, userID uuid.UUID) (string, error)
}

// NotificationHandler emails the people affected by order events: the farm
// owner when an order is placed, the customer when it is confirmed or
// delivered. Delivery is fire-and-forget; failures are logged and never
// propagate back into the operation that raised the event.
type NotificationHandler struct {
	farmRepo   farm.Repository
	recipients RecipientDirectory
	mailer     notification.Mailer
	logger     *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(
	farmRepo farm.Repository,
	recipients RecipientDirectory,
	mailer notification.Mailer,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		farmRepo:   farmRepo,
		recipients: recipients,
		mailer:     mailer,
		logger:     logger,
	}
}

// Async reports that the handler must run off the publishing goroutine.
// SMTP delivery blocks on a network round-trip, and checkout must not
// wait for it.
func (h *NotificationHandler) Async() bool {
	return true
}

// EventTypes returns the order events the handler reacts to
func (h *NotificationHandler) EventTypes() []string {
	return []string{
		order.EventTypeOrderPlaced,
		order.EventTypeOrderStatusChanged,
	}
}

// Handle dispatches the notification for the event
func (h *NotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderPlacedEvent:
		h.notifyFarmOwner(ctx, e)
	case *order.OrderStatusChangedEvent:
		// Customers only hear about the milestones they care about
		if e.ToStatus == order.StatusConfirmed || e.ToStatus == order.StatusDelivered {
			h.notifyCustomer(ctx, e)
		}
	}
	return nil
}

func (h *NotificationHandler) notifyFarmOwner(ctx context.Context, e *order.OrderPlacedEvent) {
	f, err := h.farmRepo.FindByID(ctx, e.FarmID)
	if err != nil {
		h.logger.Warn("cannot notify farm owner, farm lookup failed",
			zap.String("order_number", e.OrderNumber),
			zap.String("farm_id", e.FarmID.String()),
			zap.Error(err))
		return
	}

	subject := fmt.Sprintf("New order %s", e.OrderNumber)
	body := fmt.Sprintf("Your farm %s received order %s for ₹%s.",
		f.Name, e.OrderNumber, e.TotalAmount.StringFixed(2))

	h.send(ctx, f.OwnerID, subject, body, e.OrderNumber)
}

func (h *NotificationHandler) notifyCustomer(ctx context.Context, e *order.OrderStatusChangedEvent) {
	subject := fmt.Sprintf("Order %s %s", e.OrderNumber, e.ToStatus)
	body := fmt.Sprintf("Your order %s is now %s.", e.OrderNumber, e.ToStatus)

	h.send(ctx, e.CustomerID, subject, body, e.OrderNumber)
}

func (h *NotificationHandler) send(ctx context.Context, userID uuid.UUID, subject, body, orderNumber string) {
	to, err := h.recipients.EmailForUser(ctx, userID)
	if err != nil {
		h.logger.Debug("no email address for user, notification skipped",
			zap.String("user_id", userID.String()),
			zap.String("order_number", orderNumber),
			zap.Error(err))
		return
	}

	if err := h.mailer.Send(ctx, to, subject, body); err != nil {
		h.logger.Error("failed to send order notification",
			zap.String("order_number", orderNumber),
			zap.String("to", to),
			zap.Error(err))
		return
	}

	h.logger.Info("order notification sent",
		zap.String("order_number", orderNumber),
		zap.String("subject", subject))
}

// Ensure NotificationHandler implements shared.AsyncEventHandler
var _ shared.AsyncEventHandler = (*NotificationHandler)(nil)
