package main

import (
	"context"
	"log"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"acmedash/internal/caching"
	"acmedash/internal/config"
	"acmedash/internal/forms"
	"acmedash/internal/handlers"
	"acmedash/internal/jobs"
	"acmedash/internal/repositories"
	"acmedash/internal/services"
	"acmedash/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	viewCache := caching.NewRedisViewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	storage, err := services.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if err := storage.EnsureBucketExists(context.Background(), "invoices"); err != nil {
		log.Printf("WARNING: could not ensure invoices bucket: %v", err)
	}

	// Repositories
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	userRepo := repositories.NewUserRepo(pool)

	// Services
	invoiceSvc := services.NewInvoiceService(invoiceRepo, viewCache)

	// Handlers
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc, customerRepo, storage)
	customerHandlers := handlers.NewCustomerHandlers(customerRepo)
	authHandlers := handlers.NewAuthHandlers(userRepo, cfg.JWTSecret)
	healthHandlers := handlers.NewHealthHandlers(pool, viewCache)

	// Background view refresher keeps the listing warm between mutations.
	refresher, err := jobs.NewViewRefresher(invoiceSvc, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to create view refresher: %v", err)
	}
	refresher.Start()
	defer refresher.Stop()

	e := echo.New()
	e.Validator = forms.NewValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Login
	e.POST("/auth/login", authHandlers.Login)

	// Dashboard routes (JWT required)
	dashboard := e.Group("/dashboard")
	dashboard.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))

	dashboard.GET("/invoices", invoiceHandlers.ListInvoices)
	dashboard.POST("/invoices", invoiceHandlers.CreateInvoice)
	dashboard.GET("/invoices/:id", invoiceHandlers.GetInvoice)
	dashboard.POST("/invoices/:id", invoiceHandlers.UpdateInvoice)
	dashboard.POST("/invoices/:id/delete", invoiceHandlers.DeleteInvoice)
	dashboard.GET("/invoices/:id/pdf", invoiceHandlers.ExportInvoicePDF)
	dashboard.GET("/customers", customerHandlers.ListCustomers)

	log.Printf("acmedash v%s starting on port %s", version, cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
