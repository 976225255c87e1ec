package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/dbx"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/money"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
)

// ImageImporter stores an uploaded product image and returns its path.
type ImageImporter interface {
	Import(productName string, r io.Reader) (string, error)
}

// ProductInput is the raw form data for adding or editing a product. Price
// may use "." or "," as thousands separators. Image is optional.
type ProductInput struct {
	Name  string
	Price string
	Stock string
	Image io.Reader
}

// validate parses the form into a product without touching ImagePath.
func (in ProductInput) validate() (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Price) == "" || strings.TrimSpace(in.Stock) == "" {
		return nil, ErrEmptyField
	}

	price, err := money.ParsePrice(in.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	stock, err := money.ParseStock(in.Stock)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}

	return &models.Product{Name: name, Price: price, Stock: stock}, nil
}

// CatalogService manages products.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	images      ImageImporter
	log         logging.Logger
}

func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager, images ImageImporter, log logging.Logger) *CatalogService {
	return &CatalogService{db: db, repomanager: m, images: images, log: log}
}

// removeFile is a seam for cleaning up an imported image after a failed write.
var removeFile = os.Remove

func (s *CatalogService) importImage(ctx context.Context, name string, r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	if s.images == nil {
		return "", fmt.Errorf("%w: image import is not configured", common.ErrorValidation)
	}
	path, err := s.images.Import(name, r)
	if err != nil {
		s.log.Warn(ctx, "image import failed", "product", name, "error", err)
		return "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	return path, nil
}

// Add validates in and stores a new product. Nothing is written when
// validation fails.
func (s *CatalogService) Add(ctx context.Context, in ProductInput) (*models.Product, error) {
	p, err := in.validate()
	if err != nil {
		return nil, err
	}

	if p.ImagePath, err = s.importImage(ctx, p.Name, in.Image); err != nil {
		return nil, err
	}
	imagePath := p.ImagePath

	repo := s.repomanager.Products(s.db)
	p, err = repo.Create(ctx, p)
	if err != nil {
		if imagePath != "" {
			_ = removeFile(imagePath)
		}
		s.log.Error(ctx, "create product failed", "product", in.Name, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "product added", "id", p.ID, "product", p.Name, "price", p.Price, "stock", p.Stock)
	return p, nil
}

// Edit replaces the product currently named current. The stored image is
// kept unless in carries a new one. Renaming does not check for collisions.
func (s *CatalogService) Edit(ctx context.Context, current string, in ProductInput) (*models.Product, error) {
	p, err := in.validate()
	if err != nil {
		return nil, err
	}

	newImage, err := s.importImage(ctx, p.Name, in.Image)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Products(tx)

		existing, err := repo.GetByName(ctx, current)
		if err != nil {
			return err
		}

		p.ID = existing.ID
		p.ImagePath = existing.ImagePath
		if newImage != "" {
			p.ImagePath = newImage
		}

		return repo.UpdateByName(ctx, current, p)
	})

	if err != nil {
		if newImage != "" {
			_ = removeFile(newImage)
		}
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, current)
		}
		s.log.Error(ctx, "edit product failed", "product", current, "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "product edited", "id", p.ID, "from", current, "to", p.Name)
	return p, nil
}

// Delete removes every product named name and returns how many were removed.
func (s *CatalogService) Delete(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyField
	}

	n, err := s.repomanager.Products(s.db).DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, fmt.Errorf("%w: %s", ErrProductNotFound, name)
		}
		s.log.Error(ctx, "delete product failed", "product", name, "error", err)
		return 0, common.ErrorInternal
	}

	s.log.Info(ctx, "product deleted", "product", name, "rows", n)
	return n, nil
}

// Reset deletes the whole catalog. Sales history is kept.
func (s *CatalogService) Reset(ctx context.Context) (int64, error) {
	n, err := s.repomanager.Products(s.db).DeleteAll(ctx)
	if err != nil {
		s.log.Error(ctx, "reset products failed", "error", err)
		return 0, common.ErrorInternal
	}

	s.log.Warn(ctx, "product catalog reset", "rows", n)
	return n, nil
}

// List returns every product.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	ps, err := s.repomanager.Products(s.db).List(ctx)
	if err != nil {
		s.log.Error(ctx, "list products failed", "error", err)
		return nil, common.ErrorInternal
	}
	return ps, nil
}

// ListAvailable returns products that can be sold right now.
func (s *CatalogService) ListAvailable(ctx context.Context) ([]models.Product, error) {
	ps, err := s.repomanager.Products(s.db).ListInStock(ctx)
	if err != nil {
		s.log.Error(ctx, "list available products failed", "error", err)
		return nil, common.ErrorInternal
	}
	return ps, nil
}

// Get returns the product named name.
func (s *CatalogService) Get(ctx context.Context, name string) (*models.Product, error) {
	p, err := s.repomanager.Products(s.db).GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, name)
		}
		s.log.Error(ctx, "get product failed", "product", name, "error", err)
		return nil, common.ErrorInternal
	}
	return p, nil
}
