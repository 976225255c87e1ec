// Package sales stores the append-only sales history written by checkout.
package sales

import (
	"context"

	"github.com/dmitrijs2005/gophpos/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, line *models.SaleLine) (*models.SaleLine, error)
	List(ctx context.Context) ([]models.SaleLine, error)
	Count(ctx context.Context) (int64, error)
}
