package handlers

import (
	"context"

	"storeadmin/internal/models"
	"storeadmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationFeed reads the operator notification history.
type NotificationFeed interface {
	Recent(ctx context.Context, limit int) ([]models.Notification, error)
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	items, err := h.feed.Recent(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Notifications retrieved successfully", items)
}
