// Package routes wires repositories, services and handlers into the HTTP API.
package routes

import (
	"context"

	"storeadmin/internal/config"
	"storeadmin/internal/handlers"
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"
	"storeadmin/internal/services/analytics"
	"storeadmin/internal/services/export"
	"storeadmin/internal/services/notification"
	"storeadmin/internal/services/order"
	"storeadmin/internal/services/stats"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps are the long-lived clients the API is built on.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Cache    *cache.CacheService
	Notifier *notification.Service
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Deps) {
	cfg := deps.Config
	loc := cfg.Location()

	// Repositories
	orderRepo := repositories.NewOrderRepository(deps.DB)
	catalogRepo := repositories.NewCatalogRepository(deps.DB)
	userRepo := repositories.NewUserRepository(deps.DB)
	analyticsRepo := repositories.NewAnalyticsRepository(deps.DB)

	// Services
	statsService := stats.NewService(orderRepo, catalogRepo, userRepo, loc)
	analyticsService := analytics.NewService(analyticsRepo, deps.Cache, cfg.CacheTTL, loc)
	orderService := order.NewService(orderRepo, deps.Cache, deps.Notifier, cfg.OrdersCacheTTL)

	// Handlers
	statsHandler := handlers.NewStatsHandler(statsService, cfg.RequestTimeout)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, export.NewExcelExporter(), cfg.RequestTimeout)
	orderHandler := handlers.NewOrderHandler(orderService)
	notificationHandler := handlers.NewNotificationHandler(deps.Notifier)
	cacheHandler := handlers.NewCacheHandler(deps.Cache)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := deps.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": deps.Cache.HealthCheck,
	})

	app.Get("/health", healthHandler.HealthCheck)

	admin := app.Group("/api/admin")
	admin.Get("/stats", statsHandler.GetStats)
	admin.Get("/cache-stats", cacheHandler.CacheStats)
	admin.Get("/notifications", notificationHandler.ListNotifications)

	orders := admin.Group("/orders")
	orders.Get("/", orderHandler.ListOrders)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Patch("/:id/status", orderHandler.UpdateOrderStatus)

	reports := admin.Group("/analytics")
	reports.Get("/sales", analyticsHandler.GetSales)
	reports.Get("/sales/export", analyticsHandler.ExportSales)
	reports.Get("/top-products", analyticsHandler.GetTopProducts)
	reports.Get("/categories", analyticsHandler.GetCategories)
	reports.Get("/conversion", analyticsHandler.GetConversion)
	reports.Get("/activity", analyticsHandler.GetActivity)
}
