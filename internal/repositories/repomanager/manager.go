package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophpos/internal/dbx"
	"github.com/dmitrijs2005/gophpos/internal/repositories/products"
	"github.com/dmitrijs2005/gophpos/internal/repositories/receipts"
	"github.com/dmitrijs2005/gophpos/internal/repositories/sales"
	"github.com/dmitrijs2005/gophpos/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
	Sales(db dbx.DBTX) sales.Repository
	Receipts(db dbx.DBTX) receipts.Repository
}
