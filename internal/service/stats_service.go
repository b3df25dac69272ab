package service

import (
	"context"

	"github.com/google/uuid"

	"finsight/internal/domain"
	"finsight/internal/port"
)

// StatsService provides dashboard statistics.
type StatsService interface {
	GetStats(ctx context.Context, tenantID uuid.UUID) (*domain.Stats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context, tenantID uuid.UUID) (*domain.Stats, error) {
	stats, err := s.statsRepo.GetTenantStats(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	stats.ComplianceScore = complianceScore(stats.DocumentsProcessed, stats.ValidationErrors)
	return stats, nil
}

// complianceScore is the share of documents that processed without failing,
// as a whole percentage. A tenant with no documents scores 100.
func complianceScore(total, failures int) int {
	if total <= 0 {
		return 100
	}
	return (total - failures) * 100 / total
}
