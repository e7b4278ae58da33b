package journal

import (
	"time"

	"github.com/alnsrinivas/Milkmitra/internal/domain/journal"
	"github.com/google/uuid"
)

// CreateEntryRequest represents a request to write a journal entry
type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

// UpdateEntryRequest represents a request to revise a journal entry.
// Omitted fields keep their current values.
type UpdateEntryRequest struct {
	Title   string `json:"title" binding:"max=200"`
	Content string `json:"content"`
}

// EntryResponse represents a journal entry in API responses
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToEntryResponse converts a domain entry to a response DTO
func ToEntryResponse(e *journal.Entry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
