// Package products stores the catalog and guards stock decrements.
package products

import (
	"context"

	"github.com/dmitrijs2005/gophpos/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListInStock(ctx context.Context) ([]models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	UpdateByName(ctx context.Context, current string, p *models.Product) error
	DeleteByName(ctx context.Context, name string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	DecrementStock(ctx context.Context, id, qty int64) error
}
