package companies

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aldenhart/biztime/internal/platform/httpx"
)

type memoryCompanyRepo struct {
	companies  map[string]Company
	invoices   map[string][]int64
	industries map[string][]string
}

func newMemoryCompanyRepo() *memoryCompanyRepo {
	return &memoryCompanyRepo{
		companies:  make(map[string]Company),
		invoices:   make(map[string][]int64),
		industries: make(map[string][]string),
	}
}

func (r *memoryCompanyRepo) List(ctx context.Context) ([]Summary, error) {
	out := []Summary{}
	for _, c := range r.companies {
		out = append(out, Summary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (r *memoryCompanyRepo) Get(ctx context.Context, code string) (Company, error) {
	c, ok := r.companies[code]
	if !ok {
		return Company{}, fmt.Errorf("companies: get %q: %w", code, httpx.ErrNotFound)
	}
	return c, nil
}

func (r *memoryCompanyRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	if ids, ok := r.invoices[code]; ok {
		return ids, nil
	}
	return []int64{}, nil
}

func (r *memoryCompanyRepo) IndustryCodes(ctx context.Context, code string) ([]string, error) {
	if codes, ok := r.industries[code]; ok {
		return codes, nil
	}
	return []string{}, nil
}

func (r *memoryCompanyRepo) Create(ctx context.Context, company Company) (Company, error) {
	if _, exists := r.companies[company.Code]; exists {
		return Company{}, fmt.Errorf("companies: create %q: %w", company.Code, httpx.ErrDuplicate)
	}
	r.companies[company.Code] = company
	return company, nil
}

func (r *memoryCompanyRepo) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	c, ok := r.companies[code]
	if !ok {
		return Company{}, fmt.Errorf("companies: update %q: %w", code, httpx.ErrNotFound)
	}
	c.Name = name
	c.Description = description
	r.companies[code] = c
	return c, nil
}

func (r *memoryCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.companies[code]; !ok {
		return fmt.Errorf("companies: delete %q: %w", code, httpx.ErrNotFound)
	}
	delete(r.companies, code)
	return nil
}

func strptr(s string) *string { return &s }

func TestServiceCreateDerivesCode(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	created, err := svc.Create(context.Background(), "", "TestCo", strptr("A test company"))
	require.NoError(t, err)
	require.Equal(t, "testco", created.Code)
	require.Equal(t, "TestCo", created.Name)

	got, err := svc.Get(context.Background(), "testco")
	require.NoError(t, err)
	require.Equal(t, "TestCo", got.Name)
	require.Equal(t, "A test company", *got.Description)
	require.Empty(t, got.Invoices)
	require.Empty(t, got.Industries)
}

func TestServiceCreateKeepsExplicitCode(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	created, err := svc.Create(context.Background(), "ibm", "International Business Machines", nil)
	require.NoError(t, err)
	require.Equal(t, "ibm", created.Code)
}

func TestServiceCreateRejectsUnusableName(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Create(context.Background(), "", "   ", nil)
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Create(context.Background(), "", "!!!", nil)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestServiceCreateConflictOnSlugCollision(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Create(context.Background(), "", "Test Co", nil)
	require.NoError(t, err)

	// "Test-Co" slugifies to the same code as "Test Co".
	_, err = svc.Create(context.Background(), "", "Test-Co", nil)
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestServiceGetNotFound(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceGetIncludesRelations(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.companies["apple"] = Company{Code: "apple", Name: "Apple", Description: strptr("Maker of iPhones")}
	repo.invoices["apple"] = []int64{1, 2}
	repo.industries["apple"] = []string{"tech"}
	svc := NewService(repo)

	detail, err := svc.Get(context.Background(), "apple")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, detail.Invoices)
	require.Equal(t, []string{"tech"}, detail.Industries)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := NewService(newMemoryCompanyRepo())

	_, err := svc.Update(context.Background(), "nonexistent", "NoCo", nil)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestServiceDelete(t *testing.T) {
	repo := newMemoryCompanyRepo()
	repo.companies["apple"] = Company{Code: "apple", Name: "Apple"}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), "apple"))
	require.ErrorIs(t, svc.Delete(context.Background(), "apple"), httpx.ErrNotFound)
}
