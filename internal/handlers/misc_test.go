package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	feed := new(MockFeed)
	feed.On("Recent", mock.Anything, 20).Return([]models.Notification{{Title: "Order updated"}}, nil)

	app := fiber.New()
	app.Get("/api/admin/notifications", NewNotificationHandler(feed).ListNotifications)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(decode(t, resp.Body).Data), "Order updated")
	feed.AssertExpectations(t)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Check
		wantStatus int
	}{
		{
			name: "all connected",
			checks: map[string]Check{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return nil },
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "redis down",
			checks: map[string]Check{
				"database": func(context.Context) error { return nil },
				"redis":    func(context.Context) error { return errors.New("dial tcp: connection refused") },
			},
			wantStatus: fiber.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checks).HealthCheck)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

type stubInspector struct {
	stats *cache.Stats
}

func (s stubInspector) Stats() *cache.Stats          { return s.stats }
func (s stubInspector) PoolStats() *redis.PoolStats { return &redis.PoolStats{Hits: 3} }

func TestCacheHandler_CacheStats(t *testing.T) {
	stats := cache.NewStats()
	stats.Hit("query:orders:limit=10")
	stats.Miss("query:orders:limit=20")

	app := fiber.New()
	app.Get("/api/admin/cache-stats", NewCacheHandler(stubInspector{stats: stats}).CacheStats)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/cache-stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		CacheStats map[string]cache.OpStats `json:"cache_stats"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.CacheStats["orders"].Hits)
	assert.Equal(t, int64(1), body.CacheStats["total"].Misses)
}
