package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"core/internal/config"
	"core/internal/handler"
	"core/internal/repository"
	"core/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("hotel discovery service starting",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Pick the hotel source: PostgreSQL when configured, the built-in
	// fixture otherwise.
	var source service.HotelSource
	var writer service.HotelWriter
	if cfg.UsePostgres() {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer repo.Close()
		source = repo
		writer = repo
		logger.Info("using PostgreSQL hotel source")
	} else {
		source = repository.NewFixtureSource()
		logger.Info("using built-in fixture hotel source")
	}

	// Initialize services
	catalog := service.NewCatalog(source, logger)
	stateStore := service.NewSearchStateStore()
	filterEngine := service.NewFilterEngine()
	formatter := service.NewResponseFormatter(cfg.Search.TopMatches)
	chatService := service.NewChatService(catalog, service.NewIntentParser(), filterEngine, formatter, stateStore, logger)
	searchService := service.NewSearchService(catalog, filterEngine, stateStore, writer, logger)

	// First collection load is asynchronous and best-effort: queries that
	// arrive before it completes get a "still loading" reply.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = catalog.Load(ctx)
	}()

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	hotelsHandler := handler.NewHotelsHandler(searchService, cfg.Search.DefaultSort)
	bookingHandler := handler.NewBookingHandler(searchService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "hotel-discovery",
			"version": Version,
			"catalog": string(catalog.Status()),
			"hotels":  catalog.Size(),
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Chat assistant
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.POST("/chat/stream", chatHandler.ChatStream)

		// Hotel listing
		apiV1.GET("/hotels", hotelsHandler.List)
		apiV1.GET("/hotels/:id", hotelsHandler.Get)
		apiV1.POST("/hotels", hotelsHandler.Create)
		apiV1.GET("/amenities", hotelsHandler.Amenities)

		// Shared search state
		apiV1.GET("/search-state", hotelsHandler.GetSearchState)
		apiV1.PUT("/search-state", hotelsHandler.UpdateSearchState)
		apiV1.POST("/search-state/reset", hotelsHandler.ResetSearchState)

		// Booking confirmation
		apiV1.POST("/bookings", bookingHandler.Confirm)

		// Catalog refresh
		apiV1.POST("/catalog/refresh", func(c *gin.Context) {
			if err := catalog.Load(c.Request.Context()); err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Refresh failed: " + err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok", "hotels": catalog.Size()})
		})
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, logger)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// buildLogger constructs the zap logger from the logging config section
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
