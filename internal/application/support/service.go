package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/support"
	"github.com/google/uuid"
)

// SupportService handles support issue use cases
type SupportService struct {
	issueRepo support.Repository
}

// NewSupportService creates a new support service
func NewSupportService(issueRepo support.Repository) *SupportService {
	return &SupportService{issueRepo: issueRepo}
}

// ReportIssue opens a new issue for a user
func (s *SupportService) ReportIssue(ctx context.Context, userID uuid.UUID, req *ReportIssueRequest) (*IssueResponse, error) {
	issue, err := support.NewIssue(userID, req.Subject, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.issueRepo.Save(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to save issue: %w", err)
	}
	return ToIssueResponse(issue), nil
}

// ListMyIssues lists all issues reported by a user, newest first
func (s *SupportService) ListMyIssues(ctx context.Context, userID uuid.UUID) ([]IssueResponse, error) {
	issues, err := s.issueRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	responses := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		responses = append(responses, *ToIssueResponse(&issues[i]))
	}
	return responses, nil
}

// UpdateIssueStatus moves an issue to a new handling state. Only the
// reporting user may update their own issues.
func (s *SupportService) UpdateIssueStatus(ctx context.Context, userID, issueID uuid.UUID, req *UpdateIssueStatusRequest) (*IssueResponse, error) {
	issue, err := s.issueRepo.FindByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}
	if issue.UserID != userID {
		return nil, shared.ErrForbidden
	}

	if err := issue.SetStatus(support.IssueStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.issueRepo.Save(ctx, issue); err != nil {
		return nil, fmt.Errorf("failed to save issue: %w", err)
	}
	return ToIssueResponse(issue), nil
}
