package companies

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aldenhart/biztime/internal/platform/db"
	"github.com/aldenhart/biztime/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for companies.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, code string) (Company, error)
	InvoiceIDs(ctx context.Context, code string) ([]int64, error)
	IndustryCodes(ctx context.Context, code string) ([]string, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code, name string, description *string) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []Summary{}
	for rows.Next() {
		var c Summary
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	var c Company
	err := r.pool.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return Company{}, fmt.Errorf("companies: get %q: %w", code, db.Translate(err))
	}
	return c, nil
}

func (r *repository) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repository) IndustryCodes(ctx context.Context, code string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT industry_code FROM companies_industries WHERE comp_code = $1 ORDER BY industry_code`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	var created Company
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)
		 RETURNING code, name, description`,
		company.Code, company.Name, company.Description,
	).Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		return Company{}, fmt.Errorf("companies: create %q: %w", company.Code, db.Translate(err))
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, code, name string, description *string) (Company, error) {
	var updated Company
	err := r.pool.QueryRow(ctx,
		`UPDATE companies SET name = $2, description = $3 WHERE code = $1
		 RETURNING code, name, description`,
		code, name, description,
	).Scan(&updated.Code, &updated.Name, &updated.Description)
	if err != nil {
		return Company{}, fmt.Errorf("companies: update %q: %w", code, db.Translate(err))
	}
	return updated, nil
}

// Delete removes a company. Dependent invoices and industry associations
// cascade at the schema level.
func (r *repository) Delete(ctx context.Context, code string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("companies: delete %q: %w", code, db.Translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("companies: delete %q: %w", code, httpx.ErrNotFound)
	}
	return nil
}
