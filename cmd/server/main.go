package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/invoicing/backend/internal/application/billing"
	catalogapp "github.com/invoicing/backend/internal/application/catalog"
	financeapp "github.com/invoicing/backend/internal/application/finance"
	"github.com/invoicing/backend/internal/application/importer"
	inventoryapp "github.com/invoicing/backend/internal/application/inventory"
	partnerapp "github.com/invoicing/backend/internal/application/partner"
	settingsapp "github.com/invoicing/backend/internal/application/settings"
	"github.com/invoicing/backend/internal/infrastructure/config"
	"github.com/invoicing/backend/internal/infrastructure/logger"
	"github.com/invoicing/backend/internal/infrastructure/mailer"
	"github.com/invoicing/backend/internal/infrastructure/persistence"
	"github.com/invoicing/backend/internal/interfaces/http/handler"
	"github.com/invoicing/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting invoicing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	counterRepo := persistence.NewGormDocumentCounterRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	profileRepo := persistence.NewGormBusinessProfileRepository(db.DB)

	// The SMTP mailer doubles as the verifier behind the settings
	// connectivity check.
	smtpMailer := mailer.NewSMTPMailer(log)

	// Initialize application services
	documentService := billingapp.NewDocumentService(
		persistence.NewGormBillingScope(db.DB),
		documentRepo, counterRepo, profileRepo, smtpMailer, log,
	)
	inventoryService := inventoryapp.NewInventoryService(
		persistence.NewGormInventoryScope(db.DB), movementRepo, log,
	)
	productService := catalogapp.NewProductService(productRepo, log)
	clientService := partnerapp.NewClientService(clientRepo, log)
	expenseService := financeapp.NewExpenseService(expenseRepo, log)
	profileService := settingsapp.NewProfileService(profileRepo, smtpMailer, log)
	productImportService := importer.NewProductImportService(productRepo, log)
	clientImportService := importer.NewClientImportService(clientRepo, log)

	// Build the engine with all handlers mounted
	engine := router.New(cfg, log, router.Handlers{
		Health:    handler.NewHealthHandler(db),
		Documents: handler.NewDocumentHandler(documentService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Products:  handler.NewProductHandler(productService, productImportService),
		Clients:   handler.NewClientHandler(clientService, clientImportService),
		Expenses:  handler.NewExpenseHandler(expenseService),
		Business:  handler.NewBusinessHandler(profileService),
		Tax:       handler.NewTaxHandler(),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
