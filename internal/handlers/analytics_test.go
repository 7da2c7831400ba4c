package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"storeadmin/internal/models"
	"storeadmin/internal/services/analytics"
	"storeadmin/internal/services/export"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func analyticsApp(svc *MockAnalyticsService) *fiber.App {
	h := NewAnalyticsHandler(svc, export.NewExcelExporter(), time.Second)
	app := fiber.New()
	g := app.Group("/api/admin/analytics")
	g.Get("/sales", h.GetSales)
	g.Get("/sales/export", h.ExportSales)
	g.Get("/top-products", h.GetTopProducts)
	g.Get("/categories", h.GetCategories)
	g.Get("/conversion", h.GetConversion)
	g.Get("/activity", h.GetActivity)
	return app
}

func TestAnalyticsHandler_Routes(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		setupMock  func(*MockAnalyticsService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sales for a month",
			url:  "/api/admin/analytics/sales?period=month",
			setupMock: func(m *MockAnalyticsService) {
				m.On("SalesByPeriod", mock.Anything, analytics.PeriodMonth).Return([]models.SalesPoint{}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "unknown period",
			url:        "/api/admin/analytics/categories?period=decade",
			setupMock:  func(m *MockAnalyticsService) {},
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_PERIOD",
		},
		{
			name: "top products passes the raw limit",
			url:  "/api/admin/analytics/top-products?limit=3",
			setupMock: func(m *MockAnalyticsService) {
				m.On("TopSellingProducts", mock.Anything, 3).Return([]models.TopProduct{}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "activity without limit",
			url:  "/api/admin/analytics/activity",
			setupMock: func(m *MockAnalyticsService) {
				m.On("RecentActivity", mock.Anything, 0).Return([]models.Activity{}, nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name: "store failure is a 500",
			url:  "/api/admin/analytics/conversion?period=week",
			setupMock: func(m *MockAnalyticsService) {
				m.On("ConversionMetrics", mock.Anything, analytics.PeriodWeek).Return(nil, errors.New("connection refused"))
			},
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAnalyticsService)
			tt.setupMock(svc)

			resp, err := analyticsApp(svc).Test(httptest.NewRequest("GET", tt.url, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, resp.Body).Code)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAnalyticsHandler_ExportSales(t *testing.T) {
	svc := new(MockAnalyticsService)
	svc.On("SalesByPeriod", mock.Anything, analytics.PeriodWeek).Return([]models.SalesPoint{
		{PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TotalSales: decimal.NewFromInt(50), OrderCount: 2},
	}, nil)

	resp, err := analyticsApp(svc).Test(httptest.NewRequest("GET", "/api/admin/analytics/sales/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.ContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "sales-week-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(export.SalesSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v)
}
