package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rodgersmanaseh/cedy1/internal/config"
	"github.com/rodgersmanaseh/cedy1/internal/handler"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
	"github.com/rodgersmanaseh/cedy1/internal/metrics"
	"github.com/rodgersmanaseh/cedy1/internal/middleware"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/service"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Initialize repositories
	articleRepo := repository.NewMemoryArticleRepository()
	userRepo := repository.NewMemoryUserRepository()
	commentRepo := repository.NewMemoryCommentRepository()
	newsletterRepo := repository.NewMemoryNewsletterRepository()

	// Start store metrics collector
	stores := map[string]metrics.StoreCounter{
		"articles":    articleRepo,
		"users":       userRepo,
		"comments":    commentRepo,
		"subscribers": newsletterRepo,
	}
	storeStatsCollector := metrics.NewStoreStatsCollector(stores)
	storeStatsCollector.Start(15 * time.Second)
	defer storeStatsCollector.Stop()

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v)
	authService := service.NewAuthService(userRepo, v, cfg.JWTSecret, cfg.TokenTTL)
	commentService := service.NewCommentService(commentRepo, articleRepo, v)
	newsletterService := service.NewNewsletterService(newsletterRepo, v)

	// Seed the in-memory store
	seeder := service.NewSeeder(articleService, authService)
	if err := seeder.SeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("Failed to seed admin user",
			slog.String("error", err.Error()))
	}
	if cfg.SeedSampleData {
		if err := seeder.SeedArticles(context.Background()); err != nil {
			logger.Fatal("Failed to seed sample articles",
				slog.String("error", err.Error()))
		}
	}

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	authHandler := handler.NewAuthHandler(authService)
	commentHandler := handler.NewCommentHandler(commentService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	healthHandler := handler.NewHealthHandler(stores)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public API routes
	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/featured", articleHandler.Featured)
			articles.GET("/search", articleHandler.Search)
			articles.GET("/:slug", articleHandler.Read)
			articles.GET("/:slug/comments", commentHandler.ListForArticle)
			articles.POST("/:slug/comments", commentHandler.Create)
		}

		api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.POST("/auth/login", authHandler.Login)

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(authService))
		{
			admin.GET("/articles", articleHandler.AdminList)
			admin.POST("/articles", articleHandler.Create)
			admin.GET("/articles/:id", articleHandler.AdminGet)
			admin.PUT("/articles/:id", articleHandler.Update)
			admin.DELETE("/articles/:id", articleHandler.Delete)
			admin.GET("/newsletter/subscribers", newsletterHandler.Subscribers)
			admin.POST("/comments/:id/approve", commentHandler.Approve)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
