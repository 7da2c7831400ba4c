// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var (
	_ repositories.OrderRepository     = (*OrderRepository)(nil)
	_ repositories.CatalogRepository   = (*CatalogRepository)(nil)
	_ repositories.UserRepository      = (*UserRepository)(nil)
	_ repositories.AnalyticsRepository = (*AnalyticsRepository)(nil)
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) SumTotalByStatus(ctx context.Context, status string) (decimal.Decimal, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *OrderRepository) ListPointsBetween(ctx context.Context, from, to time.Time) ([]models.OrderPoint, error) {
	args := m.Called(ctx, from, to)
	points, _ := args.Get(0).([]models.OrderPoint)
	return points, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) CountFeaturedProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) CountNewProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CatalogRepository) CountLowStockVariants(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) SalesByPeriod(ctx context.Context, period, startDate string) ([]models.SalesPoint, error) {
	args := m.Called(ctx, period, startDate)
	rows, _ := args.Get(0).([]models.SalesPoint)
	return rows, args.Error(1)
}

func (m *AnalyticsRepository) TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.TopProduct)
	return rows, args.Error(1)
}

func (m *AnalyticsRepository) SalesByCategory(ctx context.Context, startDate string) ([]models.CategorySales, error) {
	args := m.Called(ctx, startDate)
	rows, _ := args.Get(0).([]models.CategorySales)
	return rows, args.Error(1)
}

func (m *AnalyticsRepository) ConversionMetrics(ctx context.Context, startDate string) (*models.ConversionMetrics, error) {
	args := m.Called(ctx, startDate)
	metrics, _ := args.Get(0).(*models.ConversionMetrics)
	return metrics, args.Error(1)
}

func (m *AnalyticsRepository) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.Activity)
	return rows, args.Error(1)
}
