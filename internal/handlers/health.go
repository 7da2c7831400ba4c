package handlers

import (
	"context"
	"time"

	"storeadmin/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Check
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "ok"
	services := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			status = "degraded"
			services[name] = err.Error()
			continue
		}
		services[name] = "connected"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"services": services,
	})
}

// CacheInspector exposes the query cache counters and the Redis pool.
type CacheInspector interface {
	Stats() *cache.Stats
	PoolStats() *redis.PoolStats
}

type CacheHandler struct {
	inspector CacheInspector
}

func NewCacheHandler(inspector CacheInspector) *CacheHandler {
	return &CacheHandler{inspector: inspector}
}

func (h *CacheHandler) CacheStats(c *fiber.Ctx) error {
	poolStats := h.inspector.PoolStats()

	return c.JSON(fiber.Map{
		"cache_stats": h.inspector.Stats().Snapshot(),
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
