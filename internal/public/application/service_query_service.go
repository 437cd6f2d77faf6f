package application

import (
	"context"

	"github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

// serviceQueryService is the concrete implementation of ServiceQueryService.
type serviceQueryService struct {
	repo ServiceRepository
}

// NewServiceQueryService creates a new service query service.
func NewServiceQueryService(repo ServiceRepository) ServiceQueryService {
	return &serviceQueryService{repo: repo}
}

func (s *serviceQueryService) List(ctx context.Context, filter ServiceFilter, sort []SortKey, paging Paging) (ListResult, error) {
	items, total, err := s.repo.FindPage(ctx, filter, sort, paging)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Items: items, Meta: paging.Meta(total)}, nil
}

func (s *serviceQueryService) Export(ctx context.Context, filter ServiceFilter, sort []SortKey) ([]domain.Service, error) {
	return s.repo.FindAll(ctx, filter, sort)
}

func (s *serviceQueryService) Detail(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}
