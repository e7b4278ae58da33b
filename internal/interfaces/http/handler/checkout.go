package handler

import (
	checkoutapp "github.com/alnsrinivas/Milkmitra/internal/application/checkout"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles cart checkout
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// RegisterRoutes registers the checkout route
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
}

// Checkout places the caller's cart. Items spanning multiple farms split
// into one order per farm; when only some of those orders could be placed
// the response is 207 with the placed order numbers.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req checkoutapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
