package industries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aldenhart/biztime/internal/platform/db"
)

// Repository provides PostgreSQL backed persistence for industries and the
// companies_industries join table.
type Repository interface {
	Create(ctx context.Context, industry Industry) (Industry, error)
	ListWithCompanies(ctx context.Context) ([]WithCompanies, error)
	Associate(ctx context.Context, compCode, industryCode string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Create(ctx context.Context, industry Industry) (Industry, error) {
	var created Industry
	err := r.pool.QueryRow(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2) RETURNING code, industry`,
		industry.Code, industry.Industry,
	).Scan(&created.Code, &created.Industry)
	if err != nil {
		return Industry{}, fmt.Errorf("industries: create %q: %w", industry.Code, db.Translate(err))
	}
	return created, nil
}

// ListWithCompanies aggregates company codes per industry with an outer join.
// The FILTER clause keeps industries without associations from aggregating a
// single NULL entry; they report an empty array instead.
func (r *repository) ListWithCompanies(ctx context.Context) ([]WithCompanies, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.code, i.industry,
		       COALESCE(array_agg(ci.comp_code ORDER BY ci.comp_code)
		                FILTER (WHERE ci.comp_code IS NOT NULL), '{}')
		FROM industries AS i
		LEFT JOIN companies_industries AS ci ON i.code = ci.industry_code
		GROUP BY i.code, i.industry
		ORDER BY i.code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	industries := []WithCompanies{}
	for rows.Next() {
		var ind WithCompanies
		if err := rows.Scan(&ind.Code, &ind.Industry, &ind.Companies); err != nil {
			return nil, err
		}
		industries = append(industries, ind)
	}
	return industries, rows.Err()
}

func (r *repository) Associate(ctx context.Context, compCode, industryCode string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO companies_industries (comp_code, industry_code) VALUES ($1, $2)`,
		compCode, industryCode)
	if err != nil {
		return fmt.Errorf("industries: associate %q with %q: %w", compCode, industryCode, db.Translate(err))
	}
	return nil
}
