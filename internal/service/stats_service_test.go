package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finsight/internal/domain"
	"finsight/internal/service"
	"finsight/mocks"
)

func TestStatsService_GetStats_ComputesComplianceScore(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		failures      int
		expectedScore int
	}{
		{"no failures", 12, 0, 100},
		{"two of ten failed", 10, 2, 80},
		{"truncates to whole percent", 3, 1, 66},
		{"all failed", 4, 4, 0},
		{"no documents", 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statsRepo := new(mocks.MockStatsRepo)
			svc := service.NewStatsService(statsRepo)

			tenantID := uuid.New()
			statsRepo.On("GetTenantStats", mock.Anything, tenantID).Return(&domain.Stats{
				DocumentsProcessed: tt.total,
				ValidationErrors:   tt.failures,
				JournalEntries:     40,
			}, nil)

			stats, err := svc.GetStats(context.Background(), tenantID)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedScore, stats.ComplianceScore)
			assert.Equal(t, tt.total, stats.DocumentsProcessed)
		})
	}
}

func TestStatsService_GetStats_RepoError(t *testing.T) {
	statsRepo := new(mocks.MockStatsRepo)
	svc := service.NewStatsService(statsRepo)

	tenantID := uuid.New()
	statsRepo.On("GetTenantStats", mock.Anything, tenantID).Return(nil, assert.AnError)

	_, err := svc.GetStats(context.Background(), tenantID)
	assert.Error(t, err)
}
