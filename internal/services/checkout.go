package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/common"
	"github.com/dmitrijs2005/gophpos/internal/dbx"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/receipt"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
)

// CheckoutService turns a cart into a receipt.
type CheckoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	now         func() time.Time
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *CheckoutService {
	return &CheckoutService{db: db, repomanager: m, log: log, now: time.Now}
}

// Checkout sells the cart in a single transaction: every line's stock is
// checked and decremented, the day's receipt counter is bumped and one sales
// row per line is written. If any line lacks stock nothing is changed and an
// *InsufficientStockError is returned.
func (s *CheckoutService) Checkout(ctx context.Context, cashier string, cart []models.CartLine) (*models.Receipt, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(cashier) == "" {
		return nil, common.ErrorUnauthorized
	}
	for _, l := range cart {
		if l.Qty <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, l.Name)
		}
	}

	now := s.now()

	r, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.Receipt, error) {
		productsRepo := s.repomanager.Products(tx)

		for _, l := range cart {
			p, err := productsRepo.GetByName(ctx, l.Name)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrProductNotFound, l.Name)
				}
				return nil, err
			}

			if p.Stock < l.Qty {
				return nil, &InsufficientStockError{Product: l.Name, Requested: l.Qty, Available: p.Stock}
			}

			if err := productsRepo.DecrementStock(ctx, p.ID, l.Qty); err != nil {
				if errors.Is(err, common.ErrInsufficientStock) {
					return nil, &InsufficientStockError{Product: l.Name, Requested: l.Qty, Available: p.Stock}
				}
				return nil, err
			}
		}

		seq, err := s.repomanager.Receipts(tx).Next(ctx, receipt.DayKey(now))
		if err != nil {
			return nil, err
		}

		r := &models.Receipt{
			Number:   receipt.Number(now, seq),
			IssuedAt: now,
			Cashier:  cashier,
			Lines:    append([]models.CartLine(nil), cart...),
		}

		salesRepo := s.repomanager.Sales(tx)
		for _, l := range cart {
			_, err := salesRepo.Insert(ctx, &models.SaleLine{
				Name:      l.Name,
				Price:     l.UnitPrice,
				Qty:       l.Qty,
				Cashier:   cashier,
				SoldAt:    now,
				ReceiptNo: r.Number,
			})
			if err != nil {
				return nil, err
			}
			r.Total += l.Total()
		}

		return r, nil
	})

	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			s.log.Warn(ctx, "checkout rejected", "cashier", cashier, "product", stockErr.Product,
				"requested", stockErr.Requested, "available", stockErr.Available)
			return nil, err
		case errors.Is(err, ErrProductNotFound):
			s.log.Warn(ctx, "checkout rejected", "cashier", cashier, "error", err)
			return nil, err
		default:
			s.log.Error(ctx, "checkout failed", "cashier", cashier, "error", err)
			return nil, common.ErrorInternal
		}
	}

	s.log.Info(ctx, "checkout completed", "receipt", r.Number, "cashier", cashier, "lines", len(r.Lines), "total", r.Total)
	return r, nil
}
