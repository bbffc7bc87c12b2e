package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/saga-books/saga/internal"
	"github.com/saga-books/saga/internal/bootstrap"
	"github.com/saga-books/saga/internal/events"
	"github.com/saga-books/saga/internal/handler/api"
	"github.com/saga-books/saga/internal/middleware"
	"github.com/saga-books/saga/internal/routes"
	"github.com/saga-books/saga/internal/service"
	"github.com/saga-books/saga/internal/store"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize the in-memory store
	st := store.New()
	if cfg.SeedSampleData {
		if err := bootstrap.Seed(st); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
		logger.Info().Msg("sample data loaded")
	}

	// Initialize event publisher
	var publisher events.Publisher = events.Noop{}
	if cfg.Nats.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.Nats.URL, cfg.Nats.SubjectPrefix)
		if err != nil {
			return fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		publisher = natsPub
		logger.Info().Str("url", cfg.Nats.URL).Msg("event publisher connected")
	} else {
		logger.Info().Msg("NATS_URL not set, order events disabled")
	}
	defer publisher.Close()

	// Initialize services
	bookService := service.NewBookService(st)
	authorService := service.NewAuthorService(st)
	customerService := service.NewCustomerService(st)
	cartService := service.NewCartService(st)
	orderService := service.NewOrderService(st, publisher, logger)

	// Build route dependencies
	deps := routes.APIDeps{
		Books:     api.NewBookHandler(bookService),
		Authors:   api.NewAuthorHandler(authorService, bookService),
		Customers: api.NewCustomerHandler(customerService),
		Carts:     api.NewCartHandler(cartService),
		Orders:    api.NewOrderHandler(orderService),
	}

	// Create server and register routes
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.NewErrorHandler(logger)

	metrics := middleware.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware)
	e.Use(middleware.RequestLogger(logger))

	// Metrics endpoint (should be protected in production via firewall)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	routes.RegisterAPIRoutes(e, deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info().Str("address", addr).Str("env", cfg.Env).Msg("starting server")

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
