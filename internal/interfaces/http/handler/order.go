package handler

import (
	orderapp "github.com/alnsrinivas/Milkmitra/internal/application/order"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order retrieval and lifecycle endpoints for both
// customers and farm owners
type OrderHandler struct {
	BaseHandler
	orderService *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.ListMine)
	rg.GET("/orders/:id", h.GetByID)
	rg.POST("/orders/:id/cancel", h.Cancel)

	farmer := rg.Group("/farmer", middleware.RequireRole(auth.RoleFarmer))
	farmer.GET("/orders", h.ListFarmOrders)
	farmer.PUT("/orders/:id/status", h.UpdateStatus)
}

// ListMine returns the caller's orders as a customer, newest first
func (h *OrderHandler) ListMine(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter orderapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	orders, err := h.orderService.ListCustomerOrders(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns an order visible to the caller: its customer or the
// owner of the farm it was placed with
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// Cancel cancels one of the caller's orders
func (h *OrderHandler) Cancel(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// ListFarmOrders returns orders placed with the caller's farm
func (h *OrderHandler) ListFarmOrders(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter orderapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	orders, err := h.orderService.ListFarmOrders(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orders)
}

// UpdateStatus moves an order along its delivery chain
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req orderapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), ownerID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
