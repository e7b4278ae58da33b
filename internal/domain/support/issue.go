package support

import (
	"fmt"
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// IssueStatus represents the handling state of a support issue
type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "Open"
	IssueStatusInProgress IssueStatus = "In Progress"
	IssueStatusResolved   IssueStatus = "Resolved"
)

// IsValid checks if the status is a known IssueStatus
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusOpen, IssueStatusInProgress, IssueStatusResolved:
		return true
	}
	return false
}

// String returns the string representation of IssueStatus
func (s IssueStatus) String() string {
	return string(s)
}

// Issue represents a problem reported by a user
type Issue struct {
	shared.BaseEntity
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	Subject     string      `gorm:"type:varchar(200);not null"`
	Description string      `gorm:"type:text;not null"`
	Status      IssueStatus `gorm:"type:varchar(20);not null;default:'Open'"`
}

// TableName returns the table name for GORM
func (Issue) TableName() string {
	return "issues"
}

// NewIssue creates a new open issue
func NewIssue(userID uuid.UUID, subject, description string) (*Issue, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, shared.NewDomainError("INVALID_SUBJECT", "Subject cannot be empty")
	}
	if len(subject) > 200 {
		return nil, shared.NewDomainError("INVALID_SUBJECT", "Subject cannot exceed 200 characters")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	return &Issue{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Subject:     subject,
		Description: strings.TrimSpace(description),
		Status:      IssueStatusOpen,
	}, nil
}

// SetStatus moves the issue to the given handling state
func (i *Issue) SetStatus(status IssueStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown issue status: %s", status))
	}
	i.Status = status
	i.Touch()
	return nil
}
