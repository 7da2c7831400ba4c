package repositories

import (
	"context"
	"fmt"

	"storeadmin/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository calls the aggregate procedures installed by the migrations.
// Dates are passed as YYYY-MM-DD strings.
type AnalyticsRepository interface {
	SalesByPeriod(ctx context.Context, period, startDate string) ([]models.SalesPoint, error)
	TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error)
	SalesByCategory(ctx context.Context, startDate string) ([]models.CategorySales, error)
	ConversionMetrics(ctx context.Context, startDate string) (*models.ConversionMetrics, error)
	RecentActivity(ctx context.Context, limit int) ([]models.Activity, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SalesByPeriod(ctx context.Context, period, startDate string) ([]models.SalesPoint, error) {
	var rows []models.SalesPoint
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_sales_by_period(?, ?::date)", period, startDate).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get_sales_by_period: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	var rows []models.TopProduct
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_top_selling_products(?)", limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get_top_selling_products: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) SalesByCategory(ctx context.Context, startDate string) ([]models.CategorySales, error) {
	var rows []models.CategorySales
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_sales_by_category(?::date)", startDate).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get_sales_by_category: %w", err)
	}
	return rows, nil
}

func (r *analyticsRepository) ConversionMetrics(ctx context.Context, startDate string) (*models.ConversionMetrics, error) {
	var m models.ConversionMetrics
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_conversion_metrics(?::date)", startDate).
		Scan(&m).Error
	if err != nil {
		return nil, fmt.Errorf("get_conversion_metrics: %w", err)
	}
	return &m, nil
}

func (r *analyticsRepository) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	var rows []models.Activity
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM get_recent_activity(?)", limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get_recent_activity: %w", err)
	}
	return rows, nil
}
