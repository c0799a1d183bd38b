package companies

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aldenhart/biztime/internal/platform/httpx"
)

// Service implements company operations on top of the repository.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns the company with its related invoice ids and industry codes.
// The three lookups are independent and run concurrently.
func (s *Service) Get(ctx context.Context, code string) (Detail, error) {
	var detail Detail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		company, err := s.repo.Get(ctx, code)
		if err != nil {
			return err
		}
		detail.Company = company
		return nil
	})
	g.Go(func() error {
		ids, err := s.repo.InvoiceIDs(ctx, code)
		if err != nil {
			return err
		}
		detail.Invoices = ids
		return nil
	})
	g.Go(func() error {
		codes, err := s.repo.IndustryCodes(ctx, code)
		if err != nil {
			return err
		}
		detail.Industries = codes
		return nil
	})
	if err := g.Wait(); err != nil {
		return Detail{}, err
	}
	return detail, nil
}

// Create inserts a company. When code is empty it is derived from the name
// via Slugify; a collision with an existing code surfaces as a duplicate.
func (s *Service) Create(ctx context.Context, code, name string, description *string) (Company, error) {
	name = strings.TrimSpace(name)
	if code == "" {
		code = Slugify(name)
	}
	if code == "" {
		return Company{}, fmt.Errorf("%w: company name must contain letters or digits", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, Company{Code: code, Name: name, Description: description})
}

// Update overwrites name and description. The code is immutable.
func (s *Service) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	return s.repo.Update(ctx, code, strings.TrimSpace(name), description)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
