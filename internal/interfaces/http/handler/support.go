package handler

import (
	supportapp "github.com/alnsrinivas/Milkmitra/internal/application/support"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupportHandler handles support issue endpoints
type SupportHandler struct {
	BaseHandler
	supportService *supportapp.SupportService
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(supportService *supportapp.SupportService) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
	}
}

// RegisterRoutes registers the support routes
func (h *SupportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/issues", h.Report)
	rg.GET("/issues", h.ListMine)
	rg.PUT("/issues/:id/status", h.UpdateStatus)
}

// Report files a new support issue
func (h *SupportHandler) Report(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req supportapp.ReportIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	issue, err := h.supportService.ReportIssue(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, issue)
}

// ListMine returns the caller's issues
func (h *SupportHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	issues, err := h.supportService.ListMyIssues(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, issues)
}

// UpdateStatus changes the status of one of the caller's issues
func (h *SupportHandler) UpdateStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	issueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid issue ID format")
		return
	}

	var req supportapp.UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	issue, err := h.supportService.UpdateIssueStatus(c.Request.Context(), userID, issueID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, issue)
}
