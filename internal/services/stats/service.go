// Package stats computes the dashboard overview.
package stats

import (
	"context"
	"time"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DailyWindow is how far back the daily sales series reaches.
const DailyWindow = 7 * 24 * time.Hour

// DateLabelLayout formats a daily sales bucket.
const DateLabelLayout = "Jan 2"

type Service interface {
	// Summary runs every sub-query and reports each one as a metric. It fails with
	// ErrStatsUnavailable only when none of them could be computed; the partial
	// summary is returned alongside that error.
	Summary(ctx context.Context) (*models.StatsSummary, error)
}

type service struct {
	orders  repositories.OrderRepository
	catalog repositories.CatalogRepository
	users   repositories.UserRepository
	loc     *time.Location
	now     func() time.Time
}

func NewService(
	orders repositories.OrderRepository,
	catalog repositories.CatalogRepository,
	users repositories.UserRepository,
	loc *time.Location,
) Service {
	return newService(orders, catalog, users, loc, time.Now)
}

func newService(
	orders repositories.OrderRepository,
	catalog repositories.CatalogRepository,
	users repositories.UserRepository,
	loc *time.Location,
	now func() time.Time,
) *service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		orders:  orders,
		catalog: catalog,
		users:   users,
		loc:     loc,
		now:     now,
	}
}

func (s *service) Summary(ctx context.Context) (*models.StatsSummary, error) {
	now := s.now()
	since := now.Add(-DailyWindow)

	summary := &models.StatsSummary{GeneratedAt: now}

	// Sub-query errors land in their metric, so the group itself never fails
	// and one slow or broken query does not cancel the rest.
	var g errgroup.Group
	g.Go(collect(ctx, "total_orders", &summary.TotalOrders, s.orders.Count))
	g.Go(collect(ctx, "total_users", &summary.TotalUsers, s.users.Count))
	g.Go(collect(ctx, "total_products", &summary.TotalProducts, s.catalog.CountProducts))
	g.Go(collect(ctx, "featured_products", &summary.FeaturedProducts, s.catalog.CountFeaturedProducts))
	g.Go(collect(ctx, "new_products", &summary.NewProducts, s.catalog.CountNewProducts))
	g.Go(collect(ctx, "low_stock_variants", &summary.LowStockVariants, func(ctx context.Context) (int64, error) {
		return s.catalog.CountLowStockVariants(ctx, models.LowStockThreshold)
	}))
	g.Go(collect(ctx, "total_revenue", &summary.TotalRevenue, func(ctx context.Context) (decimal.Decimal, error) {
		return s.orders.SumTotalByStatus(ctx, models.OrderStatusDelivered)
	}))
	g.Go(collect(ctx, "daily_sales", &summary.DailySales, func(ctx context.Context) ([]models.DailySales, error) {
		points, err := s.orders.ListPointsBetween(ctx, since, now)
		if err != nil {
			return nil, err
		}
		return BucketDailySales(points, s.loc), nil
	}))
	_ = g.Wait()

	available, total := summary.Availability()
	summary.Partial = available < total
	if available == 0 {
		log.Error().Msg("[admin.stats] every sub-query failed")
		return summary, apperrors.ErrStatsUnavailable
	}
	if summary.Partial {
		log.Warn().Int("available", available).Int("total", total).Msg("[admin.stats] partial summary")
	}
	return summary, nil
}

// collect runs one sub-query and records its outcome in slot.
func collect[T any](ctx context.Context, name string, slot *models.Metric[T], query func(context.Context) (T, error)) func() error {
	return func() error {
		v, err := query(ctx)
		if err != nil {
			log.Error().Err(err).Str("metric", name).Msg("[admin.stats] sub-query failed")
			*slot = models.Unavailable[T](err)
			return nil
		}
		*slot = models.Computed(v)
		return nil
	}
}

// BucketDailySales sums order totals per calendar day in loc. Points are expected
// oldest first; each label appears once, in the order it is first seen.
func BucketDailySales(points []models.OrderPoint, loc *time.Location) []models.DailySales {
	if loc == nil {
		loc = time.UTC
	}
	buckets := make([]models.DailySales, 0, 8)
	index := make(map[string]int, 8)
	for _, p := range points {
		label := p.CreatedAt.In(loc).Format(DateLabelLayout)
		if i, ok := index[label]; ok {
			buckets[i].Total = buckets[i].Total.Add(p.Total)
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, models.DailySales{Date: label, Total: p.Total})
	}
	return buckets
}
