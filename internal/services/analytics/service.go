// Package analytics wraps the aggregate procedures behind the query cache.
package analytics

import (
	"context"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/repositories/cache"
	keys "storeadmin/internal/utils/cache"
)

type Service interface {
	SalesByPeriod(ctx context.Context, period Period) ([]models.SalesPoint, error)
	TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error)
	SalesByCategory(ctx context.Context, period Period) ([]models.CategorySales, error)
	ConversionMetrics(ctx context.Context, period Period) (*models.ConversionMetrics, error)
	RecentActivity(ctx context.Context, limit int) ([]models.Activity, error)
}

type service struct {
	repo  repositories.AnalyticsRepository
	cache cache.Store
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
}

func NewService(repo repositories.AnalyticsRepository, store cache.Store, ttl time.Duration, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:  repo,
		cache: store,
		ttl:   ttl,
		loc:   loc,
		now:   time.Now,
	}
}

// startDate is computed per call in the dashboard time zone.
func (s *service) startDate(p Period) string {
	return p.StartDate(s.now().In(s.loc))
}

func (s *service) SalesByPeriod(ctx context.Context, period Period) ([]models.SalesPoint, error) {
	start := s.startDate(period)
	key := keys.NewKey(keys.QueryOpSalesByPeriod, "period", period, "start", start)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]models.SalesPoint, error) {
		return s.repo.SalesByPeriod(ctx, string(period), start)
	})
}

func (s *service) TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	limit = ClampLimit(limit, DefaultTopProductsLimit)
	key := keys.NewKey(keys.QueryOpTopProducts, "limit", limit)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]models.TopProduct, error) {
		return s.repo.TopSellingProducts(ctx, limit)
	})
}

func (s *service) SalesByCategory(ctx context.Context, period Period) ([]models.CategorySales, error) {
	start := s.startDate(period)
	key := keys.NewKey(keys.QueryOpSalesByCategory, "start", start)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]models.CategorySales, error) {
		return s.repo.SalesByCategory(ctx, start)
	})
}

func (s *service) ConversionMetrics(ctx context.Context, period Period) (*models.ConversionMetrics, error) {
	start := s.startDate(period)
	key := keys.NewKey(keys.QueryOpConversionMetrics, "start", start)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) (*models.ConversionMetrics, error) {
		return s.repo.ConversionMetrics(ctx, start)
	})
}

func (s *service) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	limit = ClampLimit(limit, DefaultActivityLimit)
	key := keys.NewKey(keys.QueryOpRecentActivity, "limit", limit)
	return cache.Fetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]models.Activity, error) {
		return s.repo.RecentActivity(ctx, limit)
	})
}
