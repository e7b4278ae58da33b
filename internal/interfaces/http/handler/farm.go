package handler

import (
	farmapp "github.com/alnsrinivas/Milkmitra/internal/application/farm"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FarmHandler handles farm registration, profile and stats endpoints.
// The nearest-farms lookup is public; everything else requires the caller
// to be the farm's owner.
type FarmHandler struct {
	BaseHandler
	farmService *farmapp.FarmService
}

// NewFarmHandler creates a new FarmHandler
func NewFarmHandler(farmService *farmapp.FarmService) *FarmHandler {
	return &FarmHandler{
		farmService: farmService,
	}
}

// RegisterRoutes registers the farm routes
func (h *FarmHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/farms/nearest", h.Nearest)
	rg.GET("/farms/:id", h.GetByID)

	farmer := rg.Group("/farmer", middleware.RequireRole(auth.RoleFarmer))
	farmer.POST("/farm", h.Register)
	farmer.GET("/farm", h.GetMine)
	farmer.PUT("/farm", h.Update)
	farmer.GET("/farm/stats", h.Stats)
}

// Register creates the caller's farm. Each owner can register one farm.
func (h *FarmHandler) Register(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req farmapp.RegisterFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	farm, err := h.farmService.Register(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, farm)
}

// GetMine returns the caller's farm
func (h *FarmHandler) GetMine(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	farm, err := h.farmService.GetMyFarm(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, farm)
}

// GetByID returns a farm by its ID
func (h *FarmHandler) GetByID(c *gin.Context) {
	farmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farm ID format")
		return
	}

	farm, err := h.farmService.GetByID(c.Request.Context(), farmID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, farm)
}

// Update changes the caller's farm profile
func (h *FarmHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req farmapp.UpdateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	farm, err := h.farmService.Update(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, farm)
}

// Nearest returns farms closest to the given coordinates
func (h *FarmHandler) Nearest(c *gin.Context) {
	var query farmapp.NearestFarmsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}

	farms, err := h.farmService.NearestFarms(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, farms)
}

// Stats returns today's order count and revenue plus overall rating for
// the caller's farm
func (h *FarmHandler) Stats(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.farmService.Stats(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
