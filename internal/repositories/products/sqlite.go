package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/dbx"
	"github.com/dmitrijs2005/gophpos/internal/models"
)

const columns = `id, name, price, stock, image_path`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (name, price, stock, image_path)
		 VALUES (?, ?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Price, p.Stock, p.ImagePath).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, `SELECT `+columns+` FROM products ORDER BY id`)
}

// ListInStock returns products with stock > 0 ordered by name.
func (r *SQLiteRepository) ListInStock(ctx context.Context) ([]models.Product, error) {
	return r.query(ctx, `SELECT `+columns+` FROM products WHERE stock > 0 ORDER BY name, id`)
}

// GetByName returns the oldest product with the given name.
func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	query := `SELECT ` + columns + ` FROM products WHERE name = ? ORDER BY id LIMIT 1`

	p := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.ImagePath)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// UpdateByName overwrites the oldest product named current with p's fields.
// Renaming does not check that the new name is unused.
func (r *SQLiteRepository) UpdateByName(ctx context.Context, current string, p *models.Product) error {
	query :=
		`UPDATE products SET name = ?, price = ?, stock = ?, image_path = ?
		 WHERE id = (SELECT id FROM products WHERE name = ? ORDER BY id LIMIT 1)
		 `

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.ImagePath, current)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

// DeleteByName removes every product with the given name and reports how
// many rows were deleted.
func (r *SQLiteRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE name = ?`, name)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return 0, common.ErrorNotFound
	}
	return n, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// DecrementStock subtracts qty from the product's stock only if enough is
// left. Otherwise nothing changes and common.ErrInsufficientStock is returned.
func (r *SQLiteRepository) DecrementStock(ctx context.Context, id, qty int64) error {
	query :=
		`UPDATE products SET stock = stock - ?
		 WHERE id = ? AND stock >= ?
		 `

	res, err := r.db.ExecContext(ctx, query, qty, id, qty)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrInsufficientStock
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.ImagePath); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return out, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
