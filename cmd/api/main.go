package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "recon-gateway/docs"
	"recon-gateway/internal/config"
	"recon-gateway/internal/handler"
	"recon-gateway/internal/middleware"
	"recon-gateway/internal/service"
	"recon-gateway/internal/upstream"
	"recon-gateway/pkg/logger"
	prommetrics "recon-gateway/pkg/metrics/prometheus"
)

// @title Bank Reconciliation Gateway API
// @version 1.0
// @description Gateway for the bank-statement reconciliation workflow: preview, import, auto-match and entry triage against the accounting backend

// @contact.name API Support
// @contact.email support@recon-gateway.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.App.LogLevel)
	logger.GetLogger().Info("Starting Bank Reconciliation Gateway")

	// Accounting backend client
	backend := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	logger.GetLogger().WithField("base_url", cfg.Upstream.BaseURL).Info("Accounting backend configured")

	// Initialize services
	reconService := service.NewReconciliationService(backend, cfg.App.PreviewSampleRows)
	accountService := service.NewAccountService(backend)

	// Initialize handlers
	reconHandler := handler.NewReconciliationHandler(reconService)
	accountHandler := handler.NewAccountHandler(accountService)

	// Metrics
	collector := prommetrics.NewCollector(cfg.App.MetricsNamespace)

	// Setup router
	router := setupRouter(reconHandler, accountHandler, collector)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.GetLogger().WithField("address", addr).Info("Server starting")

	if err := router.Run(addr); err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to start server")
	}
}

func setupRouter(reconHandler *handler.ReconciliationHandler, accountHandler *handler.AccountHandler, collector *prommetrics.Collector) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	companies := v1.Group("/companies/:company_id")
	{
		companies.GET("/bank-accounts", accountHandler.ListBankAccounts)
		companies.GET("/accounts", accountHandler.ListAccounts)

		bankAccount := companies.Group("/bank-accounts/:bank_account_id")
		{
			bankAccount.POST("/statement-preview", reconHandler.PreviewStatement)
			bankAccount.POST("/import-statement", reconHandler.ImportStatement)
			bankAccount.POST("/auto-match-statement", reconHandler.AutoMatch)
			bankAccount.GET("/statement-entries", reconHandler.ListEntries)
			bankAccount.GET("/reconciliation-summary", reconHandler.Summary)

			entries := bankAccount.Group("/statement-entries")
			{
				entries.POST("/bulk-create-transactions", reconHandler.BulkCategorize)
				entries.POST("/:entry_id/create-transaction", reconHandler.Categorize)
				entries.POST("/:entry_id/mark-as-charges", reconHandler.MarkAsCharges)
				entries.POST("/:entry_id/unmatch", reconHandler.Unmatch)
			}
		}
	}

	return router
}
