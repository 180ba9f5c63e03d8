package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"

	"github.com/codeop/store/internal"
	"github.com/codeop/store/internal/events"
	"github.com/codeop/store/internal/handler"
	"github.com/codeop/store/internal/mail"
	"github.com/codeop/store/internal/middleware"
	"github.com/codeop/store/internal/paypal"
	"github.com/codeop/store/internal/pending"
	"github.com/codeop/store/internal/repository"
	"github.com/codeop/store/internal/seed"
	"github.com/codeop/store/internal/service"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Seed the catalog and admin account on first boot
	if err := seed.Run(ctx, repo, cfg.Admin, logger); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	// Payment provider client
	gateway, err := paypal.NewClient(paypal.Config{
		BaseURL:  cfg.PayPal.BaseURL,
		ClientID: cfg.PayPal.ClientID,
		Secret:   cfg.PayPal.Secret,
		Timeout:  cfg.PayPal.Timeout,
	})
	if err != nil {
		return fmt.Errorf("paypal client initialization failed: %w", err)
	}

	// Pending payment-context store
	pendingStore := pending.NewMemoryStore(cfg.Pending.TTL)
	defer pendingStore.Stop()

	// Event publisher
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSUrl != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.NATSUrl)
		if err != nil {
			return fmt.Errorf("nats connection failed: %w", err)
		}
		publisher = natsPublisher
		logger.Info("Connected to NATS", "url", cfg.NATSUrl)
	}
	defer publisher.Close()

	// Contact mail sender
	var sender mail.Sender
	if cfg.Email.Host != "" {
		sender = mail.NewSMTPSender(mail.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
			To:       cfg.Email.To,
		})
	}

	// Initialize services
	userService := service.NewUserService(repo, logger)
	productService := service.NewProductService(repo, logger)
	cartService := service.NewCartService(repo, logger)
	orderService := service.NewOrderService(repo, logger)
	paymentService := service.NewPaymentService(repo, logger)
	checkoutService := service.NewCheckoutService(
		gateway, pendingStore, cartService, orderService, paymentService, publisher, logger)
	contactService := service.NewContactService(repo, sender, logger)

	auth := middleware.NewAuth(cfg.JWTSecret, 24*time.Hour)
	metrics := middleware.NewMetrics("store")

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(
		metrics.Middleware(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		auth.Authenticate(),
	)

	h := handler.New(
		userService, productService, cartService, orderService,
		paymentService, checkoutService, contactService, auth, logger)
	h.RegisterRoutes(e, metrics)

	// Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("Starting server", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
