// Package main is the entry point of the store admin API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storeadmin/internal/config"
	"storeadmin/internal/jobs"
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"
	"storeadmin/internal/routes"
	"storeadmin/internal/services/notification"
	"storeadmin/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.IsProduction())

	// Initialize databases (PostgreSQL + Redis)
	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("[startup] database unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("[startup] redis unavailable")
	}

	cacheService := cache.NewCacheService(redisClient, cfg.CacheTTL)
	notifier := notification.NewService(redisClient, cfg.NotificationCap)

	// Cached query results may predate the last deploy's schema.
	if err := cacheService.FlushQueries(context.Background()); err != nil {
		log.Warn().Err(err).Msg("[startup] failed to flush query cache")
	}

	scheduler := jobs.NewScheduler()
	if err := scheduler.Add("pool-monitor", cfg.MonitorSchedule, jobs.PoolMonitor(db, cacheService)); err != nil {
		log.Warn().Err(err).Msg("[startup] pool monitor not scheduled")
	}
	scheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      "storeadmin",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,HEAD,PATCH",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/api/admin/analytics/sales/export", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Deps{
		Config:   cfg,
		DB:       db,
		Cache:    cacheService,
		Notifier: notifier,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("[server] listen failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("[server] started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[server] shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("[server] shutdown failed")
	}
	scheduler.Stop(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("[server] failed to close database connection")
		}
	}
	if err := cacheService.Close(); err != nil {
		log.Error().Err(err).Msg("[server] failed to close redis connection")
	}
}
