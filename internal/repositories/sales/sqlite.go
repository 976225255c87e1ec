package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/dbx"
	"github.com/dmitrijs2005/gophpos/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, line *models.SaleLine) (*models.SaleLine, error) {
	query :=
		`INSERT INTO sales (name, price, qty, cashier, sold_at, receipt_no)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		line.Name, line.Price, line.Qty, line.Cashier, FormatTimestamp(line.SoldAt), line.ReceiptNo).Scan(&line.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return line, nil
}

// List returns the whole sales history in insertion order. A row whose
// sold_at cannot be parsed is returned with a zero SoldAt.
func (r *SQLiteRepository) List(ctx context.Context) ([]models.SaleLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, qty, cashier, sold_at, receipt_no FROM sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var out []models.SaleLine
	for rows.Next() {
		var (
			s      models.SaleLine
			soldAt string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Qty, &s.Cashier, &soldAt, &s.ReceiptNo); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		s.SoldAt, _ = ParseTimestamp(soldAt, time.Local)
		out = append(out, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales rows: %w", err)
	}

	return out, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
