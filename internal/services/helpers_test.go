package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/cryptox"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	cryptox.PasswordCost = bcrypt.MinCost
}

// --- helpers ---

func newTestDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	db, err := repomanager.OpenSQLite(ctx, filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))
	return db, m
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedProduct(t *testing.T, db *sql.DB, m repomanager.RepositoryManager, name string, price, stock int64) *models.Product {
	t.Helper()
	p, err := m.Products(db).Create(context.Background(), &models.Product{Name: name, Price: price, Stock: stock})
	require.NoError(t, err)
	return p
}

func stockOf(t *testing.T, db *sql.DB, m repomanager.RepositoryManager, name string) int64 {
	t.Helper()
	p, err := m.Products(db).GetByName(context.Background(), name)
	require.NoError(t, err)
	return p.Stock
}

func salesCount(t *testing.T, db *sql.DB, m repomanager.RepositoryManager) int64 {
	t.Helper()
	n, err := m.Sales(db).Count(context.Background())
	require.NoError(t, err)
	return n
}

func nopLog() logging.Logger { return logging.Nop() }
