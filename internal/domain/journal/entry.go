package journal

import (
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// Entry is a dated note a farmer keeps about their farm: yields,
// feed changes, veterinary visits, anything worth remembering.
type Entry struct {
	shared.BaseEntity
	FarmerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(200);not null"`
	Content  string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "journal_entries"
}

// NewEntry creates a new journal entry for a farmer
func NewEntry(farmerID uuid.UUID, title, content string) (*Entry, error) {
	if farmerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Farmer ID cannot be empty")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Content cannot be empty")
	}

	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		FarmerID:   farmerID,
		Title:      title,
		Content:    content,
	}, nil
}

// Update revises the entry. Blank fields keep their current value, so
// a farmer can retitle an entry without resending its content.
func (e *Entry) Update(title, content string) error {
	title = strings.TrimSpace(title)
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	if title != "" {
		e.Title = title
	}
	if content = strings.TrimSpace(content); content != "" {
		e.Content = content
	}
	e.Touch()
	return nil
}
