package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"finsight/internal/domain"
	"finsight/internal/service"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

var _ service.ReportService = (*MockReportService)(nil)

func (m *MockReportService) TrialBalance(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportService) GSTR2A(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR2AReport, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTR2AReport), args.Error(1)
}

func (m *MockReportService) GSTR3B(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR3BReport, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTR3BReport), args.Error(1)
}

func (m *MockReportService) BankReconciliation(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.BankReconciliationReport, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliationReport), args.Error(1)
}

func (m *MockReportService) ExportTrialBalanceCSV(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]byte, string, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockReportService) EmailReport(ctx context.Context, tenantID uuid.UUID, input service.EmailReportInput) error {
	args := m.Called(ctx, tenantID, input)
	return args.Error(0)
}
