package handlers

import (
	"context"
	"errors"
	"time"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/services/stats"
	"storeadmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	statsService stats.Service
	timeout      time.Duration
}

func NewStatsHandler(statsService stats.Service, timeout time.Duration) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		timeout:      timeout,
	}
}

// GetStats returns the dashboard overview. Partial results are still a 200;
// the body says which metrics are missing.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	summary, err := h.statsService.Summary(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatsUnavailable) {
			return response.WithStatus(c, fiber.StatusServiceUnavailable, "Statistics are unavailable", summary)
		}
		return response.FromError(c, err)
	}

	if summary.Partial {
		return response.Success(c, "Dashboard statistics partially retrieved", summary)
	}
	return response.Success(c, "Dashboard statistics retrieved successfully", summary)
}

// withTimeout derives the request context, bounded by d when d is positive.
func withTimeout(c *fiber.Ctx, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), d)
}
