package handler

import (
	catalogapp "github.com/alnsrinivas/Milkmitra/internal/application/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review submission and the farmer's review feed
type ReviewHandler struct {
	BaseHandler
	reviewService *catalogapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *catalogapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers the review routes
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Add)
	rg.GET("/farmer/reviews", middleware.RequireRole(auth.RoleFarmer), h.ListFarmReviews)
}

// Add submits a review. One review per customer per product; a repeat
// submission is rejected.
func (h *ReviewHandler) Add(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, review)
}

// ListFarmReviews returns all reviews across the caller's farm's products
func (h *ReviewHandler) ListFarmReviews(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviews, err := h.reviewService.ListFarmReviews(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reviews)
}
