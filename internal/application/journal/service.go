package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnsrinivas/Milkmitra/internal/domain/journal"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// JournalService handles farm journal use cases
type JournalService struct {
	entryRepo journal.Repository
}

// NewJournalService creates a new journal service
func NewJournalService(entryRepo journal.Repository) *JournalService {
	return &JournalService{entryRepo: entryRepo}
}

// CreateEntry writes a new journal entry for a farmer
func (s *JournalService) CreateEntry(ctx context.Context, farmerID uuid.UUID, req *CreateEntryRequest) (*EntryResponse, error) {
	entry, err := journal.NewEntry(farmerID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return ToEntryResponse(entry), nil
}

// ListMyEntries lists a farmer's journal entries, newest first
func (s *JournalService) ListMyEntries(ctx context.Context, farmerID uuid.UUID) ([]EntryResponse, error) {
	entries, err := s.entryRepo.FindByFarmer(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *ToEntryResponse(&entries[i]))
	}
	return responses, nil
}

// UpdateEntry revises one of the farmer's own entries
func (s *JournalService) UpdateEntry(ctx context.Context, farmerID, entryID uuid.UUID, req *UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.findOwnEntry(ctx, farmerID, entryID)
	if err != nil {
		return nil, err
	}

	if err := entry.Update(req.Title, req.Content); err != nil {
		return nil, err
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return ToEntryResponse(entry), nil
}

// DeleteEntry removes one of the farmer's own entries
func (s *JournalService) DeleteEntry(ctx context.Context, farmerID, entryID uuid.UUID) error {
	if _, err := s.findOwnEntry(ctx, farmerID, entryID); err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return nil
}

func (s *JournalService) findOwnEntry(ctx context.Context, farmerID, entryID uuid.UUID) (*journal.Entry, error) {
	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}
	if entry.FarmerID != farmerID {
		return nil, shared.ErrForbidden
	}
	return entry, nil
}
