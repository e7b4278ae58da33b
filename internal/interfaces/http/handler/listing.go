package handler

import (
	catalogapp "github.com/alnsrinivas/Milkmitra/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListingHandler serves the public product discovery endpoints. No
// authentication is required; coordinates are optional query parameters.
type ListingHandler struct {
	BaseHandler
	listingService *catalogapp.ListingService
	productService *catalogapp.ProductService
	reviewService  *catalogapp.ReviewService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(
	listingService *catalogapp.ListingService,
	productService *catalogapp.ProductService,
	reviewService *catalogapp.ReviewService,
) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		productService: productService,
		reviewService:  reviewService,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/products/:id", h.GetByID)
	rg.GET("/products/:id/reviews", h.ListReviews)
}

// List returns the discovery listing: products joined with their farms,
// annotated with review stats, filtered and sorted per query parameters.
func (h *ListingHandler) List(c *gin.Context) {
	var query catalogapp.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	entries, err := h.listingService.ListProducts(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// GetByID returns a single product
func (h *ListingHandler) GetByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListReviews returns all reviews for a product, newest first
func (h *ListingHandler) ListReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	reviews, err := h.reviewService.ListProductReviews(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reviews)
}
