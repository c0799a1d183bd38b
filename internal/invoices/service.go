package invoices

import (
	"context"
	"time"
)

// Service implements invoice operations on top of the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Get returns the invoice with its referenced company embedded. The company
// lookup is keyed on comp_code; a missing company leaves the field nil.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	company, err := s.repo.Company(ctx, inv.CompCode)
	if err != nil {
		return Detail{}, err
	}
	return Detail{Invoice: inv, Company: company}, nil
}

// Create inserts an invoice for an existing company. paid defaults to false
// and add_date to the current date at the schema level; an unknown comp_code
// fails the foreign key and surfaces as an invalid reference.
func (s *Service) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	return s.repo.Create(ctx, compCode, amt)
}

// Update persists a new amount and paid flag. paid_date is derived from the
// stored state inside a single transaction so two concurrent updates cannot
// interleave between the read and the write.
func (s *Service) Update(ctx context.Context, id int64, amt float64, paid bool) (Invoice, error) {
	var updated Invoice
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		paidDate := NextPaidDate(current.Paid, current.PaidDate, paid, s.now())
		updated, err = tx.Update(ctx, id, amt, paid, paidDate)
		return err
	})
	if err != nil {
		return Invoice{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
