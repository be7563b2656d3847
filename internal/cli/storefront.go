package cli

import (
	"database/sql"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/database"
	"github.com/demoblaze/storefront-e2e/internal/handlers"
	"github.com/demoblaze/storefront-e2e/internal/repository"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/demoblaze/storefront-e2e/web"
	"github.com/sirupsen/logrus"
)

// Storefront is the service graph behind the local demoblaze replica
type Storefront struct {
	Catalog  *services.Catalog
	Accounts services.AccountService
	Carts    services.CartService
	Orders   services.OrderService

	db *sql.DB
}

// NewMemoryStorefront builds a storefront that keeps everything in process memory
func NewMemoryStorefront() *Storefront {
	store := repository.NewMemoryStore()
	return newStorefront(store, store, store, nil)
}

// NewStorefront builds a storefront on the backend selected by cfg. The
// Postgres backend reads its connection settings through getenv and runs
// the schema migrations before returning.
func NewStorefront(cfg config.StoreConfig, getenv func(string) string, logger logrus.FieldLogger) (*Storefront, error) {
	if cfg.Backend != config.StoreBackendPostgres {
		logger.Info("Using in-memory store")
		return NewMemoryStorefront(), nil
	}

	pgConfig, err := config.LoadPostgresConfig(getenv)
	if err != nil {
		return nil, fmt.Errorf("missing required Postgres configuration: %w", err)
	}
	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.WithField("host", pgConfig.Host).Info("Connected to database successfully")

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return newStorefront(
		repository.NewUserRepository(db),
		repository.NewCartRepository(db),
		repository.NewOrderRepository(db),
		db,
	), nil
}

func newStorefront(users services.UserRepository, carts services.CartRepository, orders services.OrderRepository, db *sql.DB) *Storefront {
	catalog := services.DefaultCatalog()
	cartService := services.NewCartService(carts, catalog)
	return &Storefront{
		Catalog:  catalog,
		Accounts: services.NewAccountService(users),
		Carts:    cartService,
		Orders:   services.NewOrderService(orders, cartService),
		db:       db,
	}
}

// Close releases the database connection, if any
func (s *Storefront) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ServerDependencies builds the page and API handlers for this storefront
func (s *Storefront) ServerDependencies(serverConfig config.ServerConfig, logger logrus.FieldLogger) (ServerDependencies, error) {
	deps := ServerDependencies{
		ServerConfig: serverConfig,
		Logger:       logger,
	}

	indexHandler, err := handlers.NewPageHandler(web.FS, "templates/index.html", "STORE", logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create index handler: %w", err)
	}
	deps.IndexHandler = indexHandler

	cartHandler, err := handlers.NewPageHandler(web.FS, "templates/cart.html", "STORE", logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create cart handler: %w", err)
	}
	deps.CartHandler = cartHandler

	productHandler, err := handlers.NewPageHandler(web.FS, "templates/prod.html", "STORE", logger)
	if err != nil {
		return deps, fmt.Errorf("failed to create product handler: %w", err)
	}
	deps.ProductHandler = productHandler.WithCatalog(s.Catalog)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return deps, fmt.Errorf("failed to open static assets: %w", err)
	}
	deps.StaticHandler = http.FileServer(http.FS(static))

	cart := handlers.NewCartHandlers(s.Carts, s.Accounts, logger)
	deps.APIHandlers = map[string]http.Handler{
		"signup":     handlers.NewSignupHandler(s.Accounts, logger),
		"login":      handlers.NewLoginHandler(s.Accounts, logger),
		"check":      handlers.NewCheckHandler(s.Accounts, logger),
		"logout":     handlers.NewLogoutHandler(s.Accounts, logger),
		"entries":    handlers.NewEntriesHandler(s.Catalog, logger),
		"bycat":      handlers.NewByCategoryHandler(s.Catalog, logger),
		"addtocart":  cart.AddToCart(),
		"viewcart":   cart.ViewCart(),
		"deleteitem": cart.DeleteItem(),
		"deletecart": cart.DeleteCart(),
		"placeorder": handlers.NewPlaceOrderHandler(s.Orders, s.Accounts, logger),
		"orders/":    handlers.NewOrderLookupHandler(s.Orders, logger),
	}

	return deps, nil
}
