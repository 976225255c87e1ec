package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophpos/internal/config"
	"github.com/dmitrijs2005/gophpos/internal/export"
	"github.com/dmitrijs2005/gophpos/internal/images"
	"github.com/dmitrijs2005/gophpos/internal/logging"
	"github.com/dmitrijs2005/gophpos/internal/models"
	"github.com/dmitrijs2005/gophpos/internal/repositories/repomanager"
	"github.com/dmitrijs2005/gophpos/internal/services"
	"github.com/dmitrijs2005/gophpos/internal/session"
)

type AuthService interface {
	Register(ctx context.Context, username string, password, confirm []byte) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
}

type CatalogService interface {
	Add(ctx context.Context, in services.ProductInput) (*models.Product, error)
	Edit(ctx context.Context, current string, in services.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, name string) (int64, error)
	Reset(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]models.Product, error)
	ListAvailable(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, name string) (*models.Product, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, cashier string, cart []models.CartLine) (*models.Receipt, error)
}

type ReportService interface {
	Sales(ctx context.Context, f services.Filter) (*services.Report, error)
}

type Exporter interface {
	Receipt(ctx context.Context, number string, lines []string) ([]string, error)
	Sales(ctx context.Context, slug string, rows []models.SaleLine) ([]string, error)
}

type App struct {
	config          *config.Config
	authService     AuthService
	catalogService  CatalogService
	checkoutService CheckoutService
	reportService   ReportService
	exporter        Exporter
	log             logging.Logger
	db              *sql.DB
	reader          *bufio.Reader
	out             io.Writer
	now             func() time.Time
}

// NewApp opens and migrates the database, builds the export store (local
// directory, plus S3 when a bucket is configured) and the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {

	db, err := repomanager.OpenSQLite(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	m := repomanager.NewSQLiteRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		log.Error(ctx, "error running migrations", "error", err)
		return nil, err
	}

	store, err := newExportStore(ctx, c)
	if err != nil {
		_ = db.Close()
		log.Error(ctx, "error configuring export store", "error", err)
		return nil, err
	}

	imgs := images.NewStore(c.ImagesDir, images.DefaultWidth)

	return &App{
		config:          c,
		authService:     services.NewAuthService(db, m, log.With("service", "auth")),
		catalogService:  services.NewCatalogService(db, m, imgs, log.With("service", "catalog")),
		checkoutService: services.NewCheckoutService(db, m, log.With("service", "checkout")),
		reportService:   services.NewReportService(db, m, log.With("service", "report")),
		exporter:        export.NewExporter(store),
		log:             log,
		db:              db,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
		now:             time.Now,
	}, nil
}

func newExportStore(ctx context.Context, c *config.Config) (export.Store, error) {
	local := export.NewLocalStore(c.ExportDir)
	if !c.S3Enabled() {
		return local, nil
	}

	remote, err := export.NewS3Store(ctx, export.S3Config{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return export.MultiStore{local, remote}, nil
}

// Run starts the REPL and releases the database when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.Close() }()
	a.Root(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// opCtx bounds a single service call by the configured operation timeout.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.OperationTimeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
