package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/dto"
	"github.com/alnsrinivas/Milkmitra/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getUserID extracts the caller's user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("INVALID_INPUT", message))
}

// BindError sends a 400 with a readable message for a binding failure
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	h.BadRequest(c, middleware.ValidationMessage(err))
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", message))
}

// HandleError converts domain errors to HTTP responses. Partial checkout
// failures carry the order numbers that were placed; everything else maps
// through the domain error code table.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var partialErr *shared.PartialFailureError
	if errors.As(err, &partialErr) {
		c.JSON(dto.HTTPStatusForCode(partialErr.Code), dto.Response{
			Success: false,
			Error: &dto.ErrorInfo{
				Code:      partialErr.Code,
				Message:   partialErr.Message,
				Succeeded: partialErr.Succeeded,
			},
		})
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.HTTPStatusForCode(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	// A deadline expiring mid-operation surfaces from the repository or a
	// backing client as a wrapped context error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		c.JSON(dto.HTTPStatusForCode(shared.ErrTimeout.Code), dto.NewErrorResponse(shared.ErrTimeout.Code, shared.ErrTimeout.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("INTERNAL_ERROR", "An unexpected error occurred"))
}
