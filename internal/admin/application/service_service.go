package application

import (
	"context"

	publicdomain "github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// serviceService implements ServiceService.
type serviceService struct {
	repo ServiceRepository
}

func NewServiceService(repo ServiceRepository) ServiceService {
	return &serviceService{repo: repo}
}

func (s *serviceService) Create(ctx context.Context, cmd CreateServiceCommand) (*publicdomain.Service, error) {
	return s.repo.Create(ctx, cmd)
}

func (s *serviceService) Update(ctx context.Context, id int64, cmd UpdateServiceCommand) (*publicdomain.Service, error) {
	return s.repo.Update(ctx, id, cmd)
}

func (s *serviceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
