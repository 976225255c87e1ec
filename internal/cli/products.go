package cli

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/dmitrijs2005/gophpos/internal/services"
	"github.com/dmitrijs2005/gophpos/internal/session"
)

// openFile is a seam for reading product images from disk.
var openFile = func(name string) (io.ReadCloser, error) { return os.Open(name) }

func (a *App) askImage() (io.ReadCloser, error) {
	path, err := a.ask("Image file, PNG or JPEG (empty to skip)")
	if err != nil || path == "" {
		return nil, err
	}
	return openFile(path)
}

func (a *App) AddProduct(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuAddProduct

	name, err := a.ask("Product name")
	if err != nil {
		return err
	}
	price, err := a.ask("Price (e.g. 5.000)")
	if err != nil {
		return err
	}
	stock, err := a.ask("Stock")
	if err != nil {
		return err
	}

	in := services.ProductInput{Name: name, Price: price, Stock: stock}
	img, err := a.askImage()
	if err != nil {
		return err
	}
	if img != nil {
		defer img.Close()
		in.Image = img
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	p, err := a.catalogService.Add(opCtx, in)
	if err != nil {
		return err
	}
	a.printf("Success! Product %q added with id %d.\n", p.Name, p.ID)
	return nil
}

// EditProduct looks up a product by name and offers its current values as
// defaults.
func (a *App) EditProduct(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuEditProduct

	current, err := a.ask("Product to edit")
	if err != nil {
		return err
	}

	opCtx, cancel := a.opCtx(ctx)
	p, err := a.catalogService.Get(opCtx, current)
	cancel()
	if err != nil {
		return err
	}

	name, err := a.askDefault("Name", p.Name)
	if err != nil {
		return err
	}
	price, err := a.askDefault("Price", formatMoney(p.Price))
	if err != nil {
		return err
	}
	stock, err := a.askDefault("Stock", strconv.FormatInt(p.Stock, 10))
	if err != nil {
		return err
	}

	in := services.ProductInput{Name: name, Price: price, Stock: stock}
	img, err := a.askImage()
	if err != nil {
		return err
	}
	if img != nil {
		defer img.Close()
		in.Image = img
	}

	opCtx, cancel = a.opCtx(ctx)
	defer cancel()

	updated, err := a.catalogService.Edit(opCtx, p.Name, in)
	if err != nil {
		return err
	}
	a.printf("Success! Product %q updated.\n", updated.Name)
	return nil
}

func (a *App) DeleteProduct(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuDeleteProduct

	name, err := a.ask("Product to delete")
	if err != nil {
		return err
	}
	ok, err := a.confirm("Delete " + strconv.Quote(name) + "?")
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	n, err := a.catalogService.Delete(opCtx, name)
	if err != nil {
		return err
	}
	a.printf("Success! Deleted %d product(s).\n", n)
	return nil
}

// ResetProducts deletes the whole catalog after the user types RESET.
func (a *App) ResetProducts(ctx context.Context, s *session.Session) error {
	s.Menu = session.MenuDeleteProduct

	answer, err := a.ask("This deletes ALL products. Type RESET to confirm")
	if err != nil {
		return err
	}
	if answer != "RESET" {
		a.println("Cancelled.")
		return nil
	}

	opCtx, cancel := a.opCtx(ctx)
	defer cancel()

	n, err := a.catalogService.Reset(opCtx)
	if err != nil {
		return err
	}
	a.printf("Success! Deleted %d product(s).\n", n)
	return nil
}
