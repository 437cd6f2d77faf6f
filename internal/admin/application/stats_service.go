package application

import (
	"context"

	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
)

// statsService implements StatsService.
type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Overview(ctx context.Context) (*admindomain.StatsOverview, error) {
	return s.repo.Overview(ctx)
}
