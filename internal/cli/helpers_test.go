package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/config"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/services"
)

func init() {
	// Test input is piped, so passwords come from the reader.
	isTerminal = func(int) bool { return false }
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

var fixedNow = time.Date(2024, time.March, 7, 14, 30, 0, 0, time.Local)

type fakeAuthService struct {
	regUser    string
	regPass    []byte
	regConfirm []byte
	regErr     error

	loginUser string
	loginPass []byte
	loginErr  error
}

func (f *fakeAuthService) Register(_ context.Context, username string, password, confirm []byte) (*models.User, error) {
	f.regUser = username
	f.regPass = append([]byte(nil), password...)
	f.regConfirm = append([]byte(nil), confirm...)
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{Username: username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, username string, password []byte) (*models.User, error) {
	f.loginUser = username
	f.loginPass = append([]byte(nil), password...)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.User{Username: username}, nil
}

type fakeCatalog struct {
	products map[string]models.Product

	added   []services.ProductInput
	edited  map[string]services.ProductInput
	deleted []string
	resets  int
	err     error
}

func newFakeCatalog(ps ...models.Product) *fakeCatalog {
	f := &fakeCatalog{products: map[string]models.Product{}, edited: map[string]services.ProductInput{}}
	for _, p := range ps {
		f.products[p.Name] = p
	}
	return f
}

func (f *fakeCatalog) Add(_ context.Context, in services.ProductInput) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, in)
	return &models.Product{ID: int64(len(f.added)), Name: in.Name}, nil
}

func (f *fakeCatalog) Edit(_ context.Context, current string, in services.ProductInput) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.edited[current] = in
	return &models.Product{Name: in.Name}, nil
}

func (f *fakeCatalog) Delete(_ context.Context, name string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, name)
	return 1, nil
}

func (f *fakeCatalog) Reset(context.Context) (int64, error) {
	f.resets++
	return int64(len(f.products)), f.err
}

func (f *fakeCatalog) List(context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, f.err
}

func (f *fakeCatalog) ListAvailable(ctx context.Context) ([]models.Product, error) {
	all, err := f.List(ctx)
	var out []models.Product
	for _, p := range all {
		if p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out, err
}

func (f *fakeCatalog) Get(_ context.Context, name string) (*models.Product, error) {
	p, ok := f.products[name]
	if !ok {
		return nil, services.ErrProductNotFound
	}
	return &p, nil
}

type fakeCheckout struct {
	cashier string
	cart    []models.CartLine
	receipt *models.Receipt
	err     error
}

func (f *fakeCheckout) Checkout(_ context.Context, cashier string, cart []models.CartLine) (*models.Receipt, error) {
	f.cashier = cashier
	f.cart = append([]models.CartLine(nil), cart...)
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

type fakeReport struct {
	filter services.Filter
	report *services.Report
	err    error
}

func (f *fakeReport) Sales(_ context.Context, filter services.Filter) (*services.Report, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	rep := *f.report
	rep.Filter = filter
	return &rep, nil
}

type fakeExporter struct {
	receiptNumber string
	receiptLines  []string
	salesSlug     string
	salesRows     []models.SaleLine
	err           error
}

func (f *fakeExporter) Receipt(_ context.Context, number string, lines []string) ([]string, error) {
	f.receiptNumber, f.receiptLines = number, lines
	if f.err != nil {
		return nil, f.err
	}
	return []string{"exports/" + number + ".txt"}, nil
}

func (f *fakeExporter) Sales(_ context.Context, slug string, rows []models.SaleLine) ([]string, error) {
	f.salesSlug, f.salesRows = slug, rows
	if f.err != nil {
		return nil, f.err
	}
	return []string{"exports/sales-" + slug + ".csv"}, nil
}

// newTestApp builds an App over fakes that reads prompts from lines.
func newTestApp(t *testing.T, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		config:          &config.Config{StoreName: "Kasir Hijau", OperationTimeout: time.Second},
		authService:     &fakeAuthService{},
		catalogService:  newFakeCatalog(),
		checkoutService: &fakeCheckout{},
		reportService:   &fakeReport{report: &services.Report{}},
		exporter:        &fakeExporter{},
		log:             logging.Nop(),
		reader:          readerFromLines(lines...),
		out:             out,
		now:             func() time.Time { return fixedNow },
	}, out
}

func bufioFromString(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
