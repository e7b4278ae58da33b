package handler

import (
	catalogapp "github.com/alnsrinivas/Milkmitra/internal/application/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductHandler handles a farmer's own product management endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the farmer product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	farmer := rg.Group("/farmer", middleware.RequireRole(auth.RoleFarmer))
	farmer.POST("/products", h.Create)
	farmer.GET("/products", h.ListMine)
	farmer.PUT("/products/:id", h.Update)
	farmer.PATCH("/products/:id/stock", h.UpdateStock)
	farmer.DELETE("/products/:id", h.Delete)
}

// UpdateStockRequest sets a product's stock level
type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}

// Create lists a new product under the caller's farm
func (h *ProductHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// ListMine returns the caller's products
func (h *ProductHandler) ListMine(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.productService.ListMyProducts(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Update changes one of the caller's products
func (h *ProductHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), ownerID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// UpdateStock sets the stock level of one of the caller's products
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), ownerID, productID, catalogapp.UpdateProductRequest{
		Stock: req.Stock,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes one of the caller's products
func (h *ProductHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), ownerID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
