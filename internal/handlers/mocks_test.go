package handlers

import (
	"context"

	"storeadmin/internal/models"
	"storeadmin/internal/services/analytics"
	"storeadmin/internal/services/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(ctx context.Context) (*models.StatsSummary, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(*models.StatsSummary)
	return summary, args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) SalesByPeriod(ctx context.Context, period analytics.Period) ([]models.SalesPoint, error) {
	args := m.Called(ctx, period)
	rows, _ := args.Get(0).([]models.SalesPoint)
	return rows, args.Error(1)
}

func (m *MockAnalyticsService) TopSellingProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.TopProduct)
	return rows, args.Error(1)
}

func (m *MockAnalyticsService) SalesByCategory(ctx context.Context, period analytics.Period) ([]models.CategorySales, error) {
	args := m.Called(ctx, period)
	rows, _ := args.Get(0).([]models.CategorySales)
	return rows, args.Error(1)
}

func (m *MockAnalyticsService) ConversionMetrics(ctx context.Context, period analytics.Period) (*models.ConversionMetrics, error) {
	args := m.Called(ctx, period)
	metrics, _ := args.Get(0).(*models.ConversionMetrics)
	return metrics, args.Error(1)
}

func (m *MockAnalyticsService) RecentActivity(ctx context.Context, limit int) ([]models.Activity, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]models.Activity)
	return rows, args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, filter models.OrderFilter) (*order.Page, error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(*order.Page)
	return page, args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	args := m.Called(ctx, id, status)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]models.Notification)
	return items, args.Error(1)
}
