package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"finsight/internal/domain"
	"finsight/internal/port"
)

// MockJournalEntryRepo is a mock implementation of port.JournalEntryRepository.
type MockJournalEntryRepo struct {
	mock.Mock
}

var _ port.JournalEntryRepository = (*MockJournalEntryRepo)(nil)

func (m *MockJournalEntryRepo) Create(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalEntryRepo) CreateBatch(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockJournalEntryRepo) List(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepo) Delete(ctx context.Context, tenantID, entryID uuid.UUID) error {
	args := m.Called(ctx, tenantID, entryID)
	return args.Error(0)
}
