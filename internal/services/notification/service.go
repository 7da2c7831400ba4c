// Package notification delivers operator-facing messages about admin actions.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storeadmin/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	Channel    = "admin:notifications"
	HistoryKey = "admin:notifications:history"
)

// Notifier is what the mutating services use. Delivery is fire-and-forget: a failed
// publish is logged and never reported to the caller.
type Notifier interface {
	Success(ctx context.Context, title, message, resource string)
	Failure(ctx context.Context, title, message, resource string)
}

// Service publishes notifications on a Redis channel and keeps the latest ones in a
// capped list for the dashboard to poll.
type Service struct {
	client  *redis.Client
	history int64
	now     func() time.Time
}

func NewService(client *redis.Client, history int) *Service {
	if history <= 0 {
		history = 100
	}
	return &Service{
		client:  client,
		history: int64(history),
		now:     time.Now,
	}
}

func (s *Service) Success(ctx context.Context, title, message, resource string) {
	s.send(ctx, models.NotificationSuccess, title, message, resource)
}

func (s *Service) Failure(ctx context.Context, title, message, resource string) {
	s.send(ctx, models.NotificationError, title, message, resource)
}

func (s *Service) send(ctx context.Context, level models.NotificationLevel, title, message, resource string) {
	n := models.Notification{
		ID:        uuid.New(),
		Level:     level,
		Title:     title,
		Message:   message,
		Resource:  resource,
		CreatedAt: s.now().UTC(),
	}

	event := log.Info()
	if level == models.NotificationError {
		event = log.Warn()
	}
	event.Str("level", string(level)).Str("resource", resource).Str("message", message).Msg("[notify] " + title)

	if err := s.publish(context.WithoutCancel(ctx), n); err != nil {
		log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("[notify] delivery failed")
	}
}

func (s *Service) publish(ctx context.Context, n models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Publish(ctx, Channel, data)
	pipe.LPush(ctx, HistoryKey, data)
	pipe.LTrim(ctx, HistoryKey, 0, s.history-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns up to limit notifications, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	if limit <= 0 || int64(limit) > s.history {
		limit = int(s.history)
	}
	raw, err := s.client.LRange(ctx, HistoryKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}

	out := make([]models.Notification, 0, len(raw))
	for _, item := range raw {
		var n models.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			log.Warn().Err(err).Msg("[notify] skipping malformed history entry")
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
