package receipts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophpos/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Next(ctx context.Context, day string) (int64, error) {
	query :=
		`INSERT INTO receipt_counters (day, seq) VALUES (?, 1)
		 ON CONFLICT(day) DO UPDATE SET seq = seq + 1
		 RETURNING seq
		 `

	var seq int64
	if err := r.db.QueryRowContext(ctx, query, day).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to bump receipt counter[%s]: %w", day, err)
	}
	return seq, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, day string) (int64, error) {
	var seq int64
	err := r.db.QueryRowContext(ctx, `SELECT seq FROM receipt_counters WHERE day = ?`, day).Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get receipt counter[%s]: %w", day, err)
	}
	return seq, nil
}
