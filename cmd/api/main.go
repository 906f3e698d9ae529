package main

import (
	"context"
	"log"

	"chirostore/internal/core/cache"
	"chirostore/internal/core/config"
	"chirostore/internal/core/logger"
	"chirostore/internal/core/server"
	catalogadapter "chirostore/internal/features/catalog/adapters"
	cataloghandler "chirostore/internal/features/catalog/handler"
	catalogports "chirostore/internal/features/catalog/ports"
	catalogservice "chirostore/internal/features/catalog/service"
	healthhandler "chirostore/internal/features/health/handler"
	orderadapter "chirostore/internal/features/orders/adapters"
	orderhandler "chirostore/internal/features/orders/handler"
	orderservice "chirostore/internal/features/orders/service"
	"chirostore/internal/ui"
	"chirostore/pkg/virtusim"

	"go.uber.org/zap"
)

// @title ChiroStore API
// @version 1.0
// @description Storefront API for reselling VirtuSIM virtual phone numbers.
// @contact.name API Support
// @contact.email support@chirostore.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("store_api", cfg.Store.BaseURL),
	)

	// Initialize the store API client and probe the upstream. A failed probe
	// is logged but not fatal: the storefront can still render and errors
	// surface per-request.
	client := virtusim.New(cfg.Store.BaseURL, cfg.Store.Timeout())
	if health, err := client.Health(context.Background()); err != nil {
		l.Warn("Store API health check failed", zap.Error(err))
	} else {
		l.Info("Store API connection verified",
			zap.String("status", health.Status),
			zap.Bool("api_key_configured", health.APIKeyConfigured),
		)
	}

	// Initialize the catalog provider, with an optional Redis cache in front.
	var catalogProvider catalogports.ServiceProvider = catalogadapter.NewVirtuSimAdapter(client)
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL)
		if err != nil {
			l.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()

		if err := redisCache.Ping(context.Background()); err != nil {
			l.Fatal("Redis ping failed", zap.Error(err))
		}
		l.Info("Catalog cache enabled", zap.Duration("ttl", cfg.Cache.CatalogTTL()))

		catalogProvider = catalogadapter.NewCachedProvider(catalogProvider, redisCache, cfg.Cache.CatalogTTL())
	}

	// Initialize Services & Handlers
	catalogSvc := catalogservice.NewCatalogService(catalogProvider)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	orderProvider := orderadapter.NewVirtuSimAdapter(client)
	orderSvc := orderservice.NewOrderService(orderProvider)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	healthHdl := healthhandler.NewHealthHandler(client)

	// Initialize the server-rendered storefront.
	shell := ui.NewShell(catalogSvc, orderSvc, cfg.UI.OrderConfirmDelay())
	uiHdl := ui.NewHandler(shell)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/services", catalogHdl.ListServices)
	srv.App.Get("/pricing/:originalPrice", catalogHdl.PricingPreview)
	srv.App.Post("/order", orderHdl.CreateOrder)
	srv.App.Get("/active-orders", orderHdl.ActiveOrders)
	srv.App.Get("/status/:orderId", orderHdl.OrderStatus)
	srv.App.Put("/status", orderHdl.UpdateStatus)
	srv.App.Get("/health", healthHdl.Health)
	uiHdl.Register(srv.App)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
