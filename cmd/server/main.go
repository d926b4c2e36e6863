package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/appraise/internal/config"
	"github.com/stwalsh4118/appraise/internal/database"
	"github.com/stwalsh4118/appraise/internal/handlers"
	"github.com/stwalsh4118/appraise/internal/logger"
	"github.com/stwalsh4118/appraise/internal/middleware"
	"github.com/stwalsh4118/appraise/internal/ratebook"
	"github.com/stwalsh4118/appraise/internal/repository"
	"github.com/stwalsh4118/appraise/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Appraise API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	appraisalRepo := repository.NewAppraisalRepository(db)
	valuationService := services.NewValuationService(cfg.Engine, log)
	appraisalService := services.NewAppraisalService(appraisalRepo, valuationService, log)

	// Initialize handlers
	valuationHandler := handlers.NewValuationHandler(valuationService, ratebook.NewStaticSource())
	appraisalHandler := handlers.NewAppraisalHandler(appraisalService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		inv := v1.Group("/inventory")
		{
			inv.POST("/normalize", valuationHandler.Normalize)
			inv.POST("/validate", valuationHandler.Validate)
			inv.POST("/rollups", valuationHandler.Rollups)
		}

		valuation := v1.Group("/valuation")
		{
			valuation.POST("/cost-approach", valuationHandler.CostApproach)
			valuation.POST("/land", valuationHandler.Land)
			valuation.POST("/conclusion", valuationHandler.Conclusion)
			valuation.POST("/scenario", valuationHandler.Scenario)
		}

		rates := v1.Group("/rates")
		{
			rates.GET("/base-cost", valuationHandler.BaseCost)
			rates.GET("/multipliers", valuationHandler.LocationMultipliers)
			rates.GET("/site-cost", valuationHandler.SiteCost)
			rates.GET("/depreciation-table", valuationHandler.DepreciationTable)
		}

		suggestions := v1.Group("/suggestions")
		{
			suggestions.GET("/physical-depreciation", valuationHandler.SuggestDepreciation)
			suggestions.POST("/effective-age", valuationHandler.SuggestEffectiveAge)
		}

		appraisals := v1.Group("/appraisals")
		{
			appraisals.POST("", appraisalHandler.Create)
			appraisals.GET("", appraisalHandler.List)
			appraisals.GET("/:id", appraisalHandler.Get)
			appraisals.PUT("/:id", appraisalHandler.Update)
			appraisals.DELETE("/:id", appraisalHandler.Delete)
			appraisals.POST("/:id/scenarios/:scenarioId/compute", appraisalHandler.ComputeScenario)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
