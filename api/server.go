package api

import (
	"context"
	"net"
	"net/http"

	go_chinook "github.com/PayRam/go-chinook"
	"github.com/PayRam/go-chinook/api/controllers"
	"github.com/PayRam/go-chinook/api/middleware"
	"github.com/PayRam/go-chinook/api/router"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const apiPath = "/api"

// Server exposes the catalog as a JSON REST API.
type Server struct {
	*router.Router
	config *Config
}

func NewServer(catalog *go_chinook.CatalogService, opts ...Option) *Server {
	cfg := NewConfig(opts...)
	logger := cfg.logger.WithField("component", "api")

	rootRouter := router.New()
	rootRouter.HTTPErrorHandler = middleware.ErrorHandler(logger)
	rootRouter.Use(middleware.RequestID())
	rootRouter.Use(middleware.Logger(logger))
	rootRouter.Use(middleware.Recover(logger))
	rootRouter.Use(echomw.CORS())

	if cfg.publicDir != "" {
		rootRouter.Static("/", cfg.publicDir)
	}

	apiGroup := rootRouter.Group(apiPath)
	apiGroup.Register(
		&controllers.ArtistController{Artists: catalog.Artists},
		&controllers.CustomerController{Customers: catalog.Customers},
		&controllers.CatalogController{
			Albums:    catalog.Albums,
			Genres:    catalog.Genres,
			Employees: catalog.Employees,
			Invoices:  catalog.Invoices,
		},
	)

	return &Server{
		Router: rootRouter,
		config: cfg,
	}
}

// Listen opens the configured address. A negative port picks a free one.
func (server *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", server.config.Addr())
	if err != nil {
		return nil, errors.WithStack(err)
	}
	server.Server.Addr = ln.Addr().String()

	server.config.logger.Infof("Chinook server is listening on %s", ln.Addr())
	return ln, nil
}

// Run serves requests on ln until ctx is cancelled, then shuts down gracefully.
func (server *Server) Run(ctx context.Context, ln net.Listener) error {
	logger := server.config.logger

	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down Chinook server...")

		ctx, cancel := context.WithTimeout(context.Background(), server.config.shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	// A failing Serve cancels ctx, which releases the shutdown goroutine.
	errGroup.Go(func() error {
		if err := server.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Errorf("error starting chinook server: %v", err)
		}
		return nil
	})
	defer logger.Info("Chinook server stopped")

	return errGroup.Wait()
}
