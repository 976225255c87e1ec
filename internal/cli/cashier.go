package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophpos/internal/receipt"
	"github.com/dmitrijs2005/gophpos/internal/services"
	"github.com/dmitrijs2005/gophpos/internal/session"
)

// Products opens the cashier menu and lists the products in stock.
func (a *App) Products(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuCashier

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	ps, err := a.catalogService.ListAvailable(opCtx)
	if err != nil {
		return err
	}
	if len(ps) == 0 {
		a.println("No products in stock.")
		return nil
	}
	printProducts(a.out, ps)
	return nil
}

// AddToCart adds a product to the cart. args is "<name...> <qty>"; missing
// parts are prompted for. The cart never holds more of a product than its
// current stock.
func (a *App) AddToCart(ctx context.Context, s *session.Session, args []string) error {
	s.Menu = session.MenuCashier

	var name, qtyText string
	switch {
	case len(args) >= 2:
		name = strings.Join(args[:len(args)-1], " ")
		qtyText = args[len(args)-1]
	case len(args) == 1:
		name = args[0]
	}

	var err error
	if name == "" {
		if name, err = a.ask("Product name"); err != nil {
			return err
		}
	}
	if qtyText == "" {
		if qtyText, err = a.askDefault("Quantity", "1"); err != nil {
			return err
		}
	}

	qty, err := strconv.ParseInt(qtyText, 10, 64)
	if err != nil || qty <= 0 {
		return services.ErrInvalidQuantity
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	p, err := a.catalogService.Get(opCtx, name)
	if err != nil {
		return err
	}

	if want := s.CartQty(p.Name) + qty; want > p.Stock {
		return &services.InsufficientStockError{Product: p.Name, Requested: want, Available: p.Stock}
	}

	if err := s.AddToCart(*p, qty); err != nil {
		return err
	}
	a.printf("Added %d x %s (%s).\n", qty, p.Name, formatMoney(p.Price*qty))
	return nil
}

func (a *App) ShowCart(ctx context.Context, s *session.Session) error {
	if len(s.Cart) == 0 {
		a.println("Cart is empty.")
		return nil
	}
	printCart(a.out, s.Cart, s.CartTotal())
	return nil
}

func (a *App) ClearCart(ctx context.Context, s *session.Session) error {
	s.ClearCart()
	a.println("Cart cleared.")
	return nil
}

// Checkout completes the sale, prints the receipt and exports it. The cart
// is cleared once the sale is committed, even if the export fails.
func (a *App) Checkout(ctx context.Context, s *session.Session) error {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	r, err := a.checkoutService.Checkout(opCtx, s.Username, s.Cart)
	if err != nil {
		return err
	}
	s.ClearCart()

	lines := receipt.Lines(a.config.StoreName, *r)
	a.println(receipt.Text(lines))

	locations, err := a.exporter.Receipt(opCtx, r.Number, lines)
	printLocations(a.out, locations)
	if err != nil {
		a.log.Warn(ctx, "receipt export failed", "receipt", r.Number, "error", err)
		return err
	}
	return nil
}
