package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_SalesByPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM get_sales_by_period\(\$1, \$2::date\)`).
		WithArgs("week", "2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"period_start", "total_sales", "order_count"}).
			AddRow(start, "150.50", 3))

	rows, err := NewAnalyticsRepository(db).SalesByPeriod(context.Background(), "week", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, start, rows[0].PeriodStart)
	assert.Equal(t, "150.5", rows[0].TotalSales.String())
	assert.Equal(t, int64(3), rows[0].OrderCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_TopSellingProducts(t *testing.T) {
	db, mock := newMockDB(t)
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM get_top_selling_products\(\$1\)`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "total_quantity", "total_revenue"}).
			AddRow(productID.String(), "Linen Shirt", 9, "405.00"))

	rows, err := NewAnalyticsRepository(db).TopSellingProducts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, productID, rows[0].ProductID)
	assert.Equal(t, "Linen Shirt", rows[0].ProductName)
}

func TestAnalyticsRepository_ConversionMetrics(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM get_conversion_metrics\(\$1::date\)`).
		WithArgs("2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{
			"total_users", "purchasing_users", "conversion_rate", "average_order_value", "repeat_customer_rate",
		}).AddRow(40, 10, "25.00", "61.20", "30.00"))

	m, err := NewAnalyticsRepository(db).ConversionMetrics(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(40), m.TotalUsers)
	assert.Equal(t, int64(10), m.PurchasingUsers)
	assert.Equal(t, "25", m.ConversionRate.String())
}

func TestAnalyticsRepository_PropagatesErrors(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("function get_recent_activity(integer) does not exist")

	mock.ExpectQuery(`SELECT \* FROM get_recent_activity`).WillReturnError(boom)

	rows, err := NewAnalyticsRepository(db).RecentActivity(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, rows)
}
