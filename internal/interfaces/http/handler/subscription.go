package handler

import (
	"context"

	subscriptionapp "github.com/alnsrinivas/Milkmitra/internal/application/subscription"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubscriptionHandler handles recurring delivery subscription endpoints
type SubscriptionHandler struct {
	BaseHandler
	subscriptionService *subscriptionapp.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *subscriptionapp.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// RegisterRoutes registers the subscription routes
func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscriptions", h.Subscribe)
	rg.GET("/subscriptions", h.ListMine)
	rg.POST("/subscriptions/:id/pause", h.Pause)
	rg.POST("/subscriptions/:id/resume", h.Resume)
	rg.POST("/subscriptions/:id/cancel", h.Cancel)
}

// Subscribe starts a subscription with the farm behind the given product.
// Subscribing again with the same farm renews the existing subscription.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req subscriptionapp.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), customerID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sub)
}

// ListMine returns the caller's subscriptions
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	subs, err := h.subscriptionService.ListMySubscriptions(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, subs)
}

// Pause pauses one of the caller's subscriptions
func (h *SubscriptionHandler) Pause(c *gin.Context) {
	h.transition(c, h.subscriptionService.Pause)
}

// Resume resumes one of the caller's paused subscriptions
func (h *SubscriptionHandler) Resume(c *gin.Context) {
	h.transition(c, h.subscriptionService.Resume)
}

// Cancel cancels one of the caller's subscriptions
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	h.transition(c, h.subscriptionService.Cancel)
}

func (h *SubscriptionHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, customerID, subscriptionID uuid.UUID) (*subscriptionapp.SubscriptionResponse, error),
) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid subscription ID format")
		return
	}

	sub, err := apply(c.Request.Context(), customerID, subscriptionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sub)
}
