package industries

import (
	"context"
)

// Service implements industry operations on top of the repository.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, code, name string) (Industry, error) {
	return s.repo.Create(ctx, Industry{Code: code, Industry: name})
}

func (s *Service) List(ctx context.Context) ([]WithCompanies, error) {
	return s.repo.ListWithCompanies(ctx)
}

// Associate links a company to an industry. A duplicate pair is a conflict;
// unknown codes on either side fail the foreign keys.
func (s *Service) Associate(ctx context.Context, compCode, industryCode string) error {
	return s.repo.Associate(ctx, compCode, industryCode)
}
