package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/laptechvn/backend/internal/application/catalog"
	identityapp "github.com/laptechvn/backend/internal/application/identity"
	partnerapp "github.com/laptechvn/backend/internal/application/partner"
	reportapp "github.com/laptechvn/backend/internal/application/report"
	salesapp "github.com/laptechvn/backend/internal/application/sales"
	stockapp "github.com/laptechvn/backend/internal/application/stock"
	warrantyapp "github.com/laptechvn/backend/internal/application/warranty"
	"github.com/laptechvn/backend/internal/infrastructure/config"
	"github.com/laptechvn/backend/internal/infrastructure/event"
	"github.com/laptechvn/backend/internal/infrastructure/logger"
	"github.com/laptechvn/backend/internal/infrastructure/persistence"
	"github.com/laptechvn/backend/internal/infrastructure/storage"
	"github.com/laptechvn/backend/internal/interfaces/http/dto"
	"github.com/laptechvn/backend/internal/interfaces/http/handler"
	"github.com/laptechvn/backend/internal/interfaces/http/middleware"
	"github.com/laptechvn/backend/internal/interfaces/http/router"
)

// version is injected at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting laptech backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLogLevel := gormlogger.Silent
	if cfg.App.Env != "production" {
		gormLogLevel = gormlogger.Warn
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, logger.NewGormLogger(log, gormLogLevel))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	serialRepo := persistence.NewGormProductSerialRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	importRepo := persistence.NewGormStockImportRepository(db.DB)
	exportRepo := persistence.NewGormStockExportRepository(db.DB)
	invoiceRepo := persistence.NewGormSaleInvoiceRepository(db.DB)
	ticketRepo := persistence.NewGormTicketRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)
	stockScope := persistence.NewGormStockTransactionScope(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, serialRepo)
	promotionService := catalogapp.NewPromotionService(promotionRepo, productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	employeeService := identityapp.NewEmployeeService(employeeRepo)
	importService := stockapp.NewStockImportService(stockScope, importRepo)
	exportService := stockapp.NewStockExportService(stockScope, exportRepo)
	invoiceService := salesapp.NewSaleInvoiceService(invoiceRepo, customerRepo, productRepo, promotionRepo)
	ticketService := warrantyapp.NewTicketService(ticketRepo, customerRepo, serialRepo)
	reportService := reportapp.NewReportService(reportRepo)

	// Event bus and cross-module handlers. Invoice processing creates the
	// linked stock export; export completion moves the invoice onward.
	eventBus := event.NewInMemoryEventBus(log)

	invoiceProcessingHandler := stockapp.NewInvoiceProcessingHandler(stockScope, log)
	eventBus.Subscribe(invoiceProcessingHandler)

	exportCompletedHandler := salesapp.NewExportCompletedHandler(invoiceRepo, log)
	eventBus.Subscribe(exportCompletedHandler)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	productService.SetEventPublisher(eventBus)
	invoiceService.SetEventPublisher(eventBus)
	exportService.SetEventPublisher(eventBus)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		log.Fatal("Failed to register binding validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Uploaded product images and avatars
	engine.Static("/uploads", cfg.Storage.BasePath)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(
		handler.NewSystemHandler(db, version),
		handler.NewProductHandler(productService, fileStorage),
		handler.NewPromotionHandler(promotionService),
		handler.NewCustomerHandler(customerService),
		handler.NewSupplierHandler(supplierService),
		handler.NewEmployeeHandler(employeeService, fileStorage),
		handler.NewSaleInvoiceHandler(invoiceService),
		handler.NewStockImportHandler(importService),
		handler.NewStockExportHandler(exportService),
		handler.NewWarrantyHandler(ticketService),
		handler.NewReportHandler(reportService),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
