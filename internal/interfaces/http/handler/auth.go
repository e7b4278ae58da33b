package handler

import (
	"net/http"

	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/auth"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler issues development tokens. Real identity lives in the
// gateway in front of this service; this endpoint exists so local and
// staging environments can mint tokens without it, and is disabled in
// production.
type AuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	env        string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *auth.JWTService, env string) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		env:        env,
	}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token", h.IssueToken)
}

// IssueTokenRequest represents a development token request
type IssueTokenRequest struct {
	UserID string `json:"user_id" binding:"omitempty,uuid"`
	Email  string `json:"email" binding:"omitempty,email"`
	Role   string `json:"role" binding:"required,oneof=customer farmer"`
}

// IssueTokenResponse carries the minted token
type IssueTokenResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// IssueToken mints a token for the given (or a fresh) user ID
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if h.env == "production" {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("NOT_FOUND", "Not found"))
		return
	}

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			h.BadRequest(c, "Invalid user ID format")
			return
		}
		userID = parsed
	}

	token, expiresAt, err := h.jwtService.GenerateToken(userID, req.Email, req.Role)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, IssueTokenResponse{
		Token:     token,
		UserID:    userID.String(),
		Role:      req.Role,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
