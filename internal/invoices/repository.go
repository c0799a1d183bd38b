package invoices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aldenhart/biztime/internal/platform/db"
	"github.com/aldenhart/biztime/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for invoices.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Company(ctx context.Context, code string) (*CompanySummary, error)
	Create(ctx context.Context, compCode string, amt float64) (Invoice, error)
	Delete(ctx context.Context, id int64) error
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes the operations of the transactional update path.
type TxRepository interface {
	GetForUpdate(ctx context.Context, id int64) (Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error)
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []Summary{}
	for rows.Next() {
		var inv Summary
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	var inv Invoice
	err := r.pool.QueryRow(ctx,
		`SELECT id, comp_code, amt, paid, add_date, paid_date FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: get %d: %w", id, db.Translate(err))
	}
	return inv, nil
}

// Company looks up the referenced company summary. A missing row yields
// (nil, nil) so the invoice detail can omit the company instead of failing.
func (r *repository) Company(ctx context.Context, code string) (*CompanySummary, error) {
	var c CompanySummary
	err := r.pool.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	var inv Invoice
	err := r.pool.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt) VALUES ($1, $2)
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		compCode, amt,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: create for %q: %w", compCode, db.Translate(err))
	}
	return inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("invoices: delete %d: %w", id, db.Translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoices: delete %d: %w", id, httpx.ErrNotFound)
	}
	return nil
}

// WithTx wraps the callback in a repeatable-read transaction.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepo{tx: tx})
	})
}

type txRepo struct {
	tx pgx.Tx
}

// GetForUpdate reads the invoice under a row lock so concurrent updates
// cannot interleave between the read and the write.
func (r *txRepo) GetForUpdate(ctx context.Context, id int64) (Invoice, error) {
	var inv Invoice
	err := r.tx.QueryRow(ctx,
		`SELECT id, comp_code, amt, paid, add_date, paid_date FROM invoices WHERE id = $1 FOR UPDATE`, id,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: lock %d: %w", id, db.Translate(err))
	}
	return inv, nil
}

func (r *txRepo) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (Invoice, error) {
	var inv Invoice
	err := r.tx.QueryRow(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1
		 RETURNING id, comp_code, amt, paid, add_date, paid_date`,
		id, amt, paid, paidDate,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: update %d: %w", id, db.Translate(err))
	}
	return inv, nil
}
