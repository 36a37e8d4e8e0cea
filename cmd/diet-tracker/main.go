package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/diet-tracker/internal/api"
	"github.com/aaravmahajanofficial/diet-tracker/internal/api/handlers"
	"github.com/aaravmahajanofficial/diet-tracker/internal/api/middleware"
	"github.com/aaravmahajanofficial/diet-tracker/internal/cache"
	"github.com/aaravmahajanofficial/diet-tracker/internal/config"
	"github.com/aaravmahajanofficial/diet-tracker/internal/health"
	repository "github.com/aaravmahajanofficial/diet-tracker/internal/repositories"
	service "github.com/aaravmahajanofficial/diet-tracker/internal/services"
	"github.com/aaravmahajanofficial/diet-tracker/internal/storage"
	"github.com/aaravmahajanofficial/diet-tracker/internal/telemetry"
	"github.com/aaravmahajanofficial/diet-tracker/pkg/facebook"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup, applies migrations
	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Image uploads are optional
	imageStore, err := storage.NewS3Storage(ctx, &cfg.Storage)
	if errors.Is(err, storage.ErrNotConfigured) {
		slog.Warn("⚠️ Object storage not configured, image uploads disabled")
	} else if err != nil {
		slog.Error("❌ Error setting up object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	facebookClient := facebook.NewClient(cfg.Facebook.GraphURL, cfg.Facebook.Timeout)

	authService := service.NewAuthService(repos.Users, rateLimiter, facebookClient, redisCache, &cfg.Security)
	userService := service.NewUserService(repos.Users, redisCache)
	productService := service.NewProductService(repos.Products, redisCache)
	mealService := service.NewMealService(repos.Meals, repos.Products, redisCache)
	cartService := service.NewCartService(repos.Carts, repos.Meals, repos.Products)
	imageService := service.NewImageService(imageStore)

	router := api.NewRouter(&api.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		User:    handlers.NewUserHandler(userService),
		Product: handlers.NewProductHandler(productService),
		Meal:    handlers.NewMealHandler(mealService),
		Cart:    handlers.NewCartHandler(cartService),
		Image:   handlers.NewImageHandler(imageService),
		Health:  healthHandler.Handler(),
	}, middleware.NewAuthMiddleware(jwtKey))

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.ComponentVersion))

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
