// Package order lists orders and applies status changes.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"
	"storeadmin/internal/services/notification"
	keys "storeadmin/internal/utils/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Page is one page of an order listing.
type Page struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
}

type Service interface {
	List(ctx context.Context, filter models.OrderFilter) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error)
}

type service struct {
	repo     repositories.OrderRepository
	cache    cache.Store
	notifier notification.Notifier
	ttl      time.Duration
}

func NewService(repo repositories.OrderRepository, store cache.Store, notifier notification.Notifier, ttl time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    store,
		notifier: notifier,
		ttl:      ttl,
	}
}

func (s *service) List(ctx context.Context, filter models.OrderFilter) (*Page, error) {
	key := keys.NewKey(keys.QueryOpOrders,
		"status", filter.Status,
		"limit", filter.Limit,
		"offset", filter.Offset,
	)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) (*Page, error) {
		orders, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		if orders == nil {
			orders = []models.Order{}
		}
		return &Page{Orders: orders, Total: total}, nil
	})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	key := keys.NewKey(keys.QueryOpOrder, "id", id)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) (*models.Order, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// UpdateStatus writes the new status of one order. The value is only trimmed; the
// store's constraint decides whether it is acceptable. On success the cached order
// reads are dropped and a success notification goes out; on failure the operator
// is told why and the cache is left alone.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	resource := "order:" + id.String()

	if status == "" {
		s.notifier.Failure(ctx, "Order update failed", apperrors.ErrEmptyStatus.Error(), resource)
		return nil, apperrors.ErrEmptyStatus
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Str("order_id", id.String()).Str("status", status).Msg("[admin.orders] status update failed")
		s.notifier.Failure(ctx, "Order update failed", err.Error(), resource)
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, keys.QueryOpOrders, keys.QueryOpOrder); err != nil {
		// The write already happened; stale reads expire with the TTL.
		log.Warn().Err(err).Str("order_id", id.String()).Msg("[admin.orders] cache invalidation failed")
	}

	log.Info().Str("order_id", id.String()).Str("status", order.Status).Msg("[admin.orders] status updated")
	s.notifier.Success(ctx, "Order updated", fmt.Sprintf("Order status changed to %s", order.Status), resource)
	return order, nil
}
