package support

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/support"
	"github.com/google/uuid"
)

// ReportIssueRequest represents a request to open a support issue
type ReportIssueRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

// UpdateIssueStatusRequest represents a request to change an issue's
// handling state
type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// IssueResponse represents a support issue in API responses
type IssueResponse struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToIssueResponse converts a domain issue to a response DTO
func ToIssueResponse(i *support.Issue) *IssueResponse {
	return &IssueResponse{
		ID:          i.ID,
		Subject:     i.Subject,
		Description: i.Description,
		Status:      i.Status.String(),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
