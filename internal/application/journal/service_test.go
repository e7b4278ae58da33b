package journal

import (
	"context"
	"testing"

	"github.com/alnsrinivas/Milkmitra/internal/domain/journal"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock implementation of journal.Repository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*journal.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*journal.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]journal.Entry, error) {
	args := m.Called(ctx, farmerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]journal.Entry), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, e *journal.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestFarmerID() uuid.UUID {
	return uuid.MustParse("33333333-3333-3333-3333-333333333333")
}

func TestJournalService_CreateEntry_Success(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	req := &CreateEntryRequest{
		Title:   "Calf born",
		Content: "Healthy female calf from Ganga this morning",
	}

	mockRepo.On("Save", ctx, mock.AnythingOfType("*journal.Entry")).Return(nil)

	result, err := service.CreateEntry(ctx, newTestFarmerID(), req)

	assert.NoError(t, err)
	assert.Equal(t, "Calf born", result.Title)
	mockRepo.AssertExpectations(t)
}

func TestJournalService_CreateEntry_EmptyTitle(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	result, err := service.CreateEntry(context.Background(), newTestFarmerID(), &CreateEntryRequest{
		Title:   "   ",
		Content: "something",
	})

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TITLE", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestJournalService_ListMyEntries(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	farmerID := newTestFarmerID()
	e1, _ := journal.NewEntry(farmerID, "Calf born", "healthy calf")
	e2, _ := journal.NewEntry(farmerID, "Feed change", "green fodder from today")

	mockRepo.On("FindByFarmer", ctx, farmerID).Return([]journal.Entry{*e2, *e1}, nil)

	result, err := service.ListMyEntries(ctx, farmerID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Feed change", result[0].Title)
}

func TestJournalService_UpdateEntry_Success(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	farmerID := newTestFarmerID()
	entry, _ := journal.NewEntry(farmerID, "Vet visit", "vaccinated the herd")

	mockRepo.On("FindByID", ctx, entry.ID).Return(entry, nil)
	mockRepo.On("Save", ctx, entry).Return(nil)

	result, err := service.UpdateEntry(ctx, farmerID, entry.ID, &UpdateEntryRequest{Title: "Vet visit done"})

	assert.NoError(t, err)
	assert.Equal(t, "Vet visit done", result.Title)
	assert.Equal(t, "vaccinated the herd", result.Content)
	mockRepo.AssertExpectations(t)
}

func TestJournalService_UpdateEntry_NotOwner(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	entry, _ := journal.NewEntry(newTestFarmerID(), "Vet visit", "vaccinated the herd")

	mockRepo.On("FindByID", ctx, entry.ID).Return(entry, nil)

	result, err := service.UpdateEntry(ctx, uuid.New(), entry.ID, &UpdateEntryRequest{Title: "hijacked"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestJournalService_UpdateEntry_NotFound(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	entryID := uuid.New()

	mockRepo.On("FindByID", ctx, entryID).Return(nil, shared.ErrNotFound)

	result, err := service.UpdateEntry(ctx, newTestFarmerID(), entryID, &UpdateEntryRequest{Title: "anything"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestJournalService_DeleteEntry_Success(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	farmerID := newTestFarmerID()
	entry, _ := journal.NewEntry(farmerID, "Vet visit", "vaccinated the herd")

	mockRepo.On("FindByID", ctx, entry.ID).Return(entry, nil)
	mockRepo.On("Delete", ctx, entry.ID).Return(nil)

	assert.NoError(t, service.DeleteEntry(ctx, farmerID, entry.ID))
	mockRepo.AssertExpectations(t)
}

func TestJournalService_DeleteEntry_NotOwner(t *testing.T) {
	mockRepo := new(MockEntryRepository)
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	entry, _ := journal.NewEntry(newTestFarmerID(), "Vet visit", "vaccinated the herd")

	mockRepo.On("FindByID", ctx, entry.ID).Return(entry, nil)

	assert.ErrorIs(t, service.DeleteEntry(ctx, uuid.New(), entry.ID), shared.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
