package handler

import (
	journalapp "github.com/alnsrinivas/Milkmitra/internal/application/journal"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JournalHandler handles farm journal endpoints
type JournalHandler struct {
	BaseHandler
	journalService *journalapp.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService *journalapp.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// RegisterRoutes registers the journal routes
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	farmer := rg.Group("/farmer", middleware.RequireRole(auth.RoleFarmer))
	farmer.GET("/journal", h.ListMine)
	farmer.POST("/journal", h.Create)
	farmer.PUT("/journal/:id", h.Update)
	farmer.DELETE("/journal/:id", h.Delete)
}

// ListMine returns the caller's journal entries, newest first
func (h *JournalHandler) ListMine(c *gin.Context) {
	farmerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entries, err := h.journalService.ListMyEntries(c.Request.Context(), farmerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// Create writes a new journal entry
func (h *JournalHandler) Create(c *gin.Context) {
	farmerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req journalapp.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), farmerID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, entry)
}

// Update revises one of the caller's journal entries
func (h *JournalHandler) Update(c *gin.Context) {
	farmerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	var req journalapp.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), farmerID, entryID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete removes one of the caller's journal entries
func (h *JournalHandler) Delete(c *gin.Context) {
	farmerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid entry ID format")
		return
	}

	if err := h.journalService.DeleteEntry(c.Request.Context(), farmerID, entryID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
