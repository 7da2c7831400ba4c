package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SalesPoint is one row of get_sales_by_period.
type SalesPoint struct {
	PeriodStart time.Time       `json:"period_start"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	OrderCount  int64           `json:"order_count"`
}

// TopProduct is one row of get_top_selling_products.
type TopProduct struct {
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// CategorySales is one row of get_sales_by_category.
type CategorySales struct {
	Category   string          `json:"category"`
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

// ConversionMetrics is the single object returned by get_conversion_metrics.
type ConversionMetrics struct {
	TotalUsers         int64           `json:"total_users"`
	PurchasingUsers    int64           `json:"purchasing_users"`
	ConversionRate     decimal.Decimal `json:"conversion_rate"`
	AverageOrderValue  decimal.Decimal `json:"average_order_value"`
	RepeatCustomerRate decimal.Decimal `json:"repeat_customer_rate"`
}

// Activity is one row of get_recent_activity.
type Activity struct {
	ActivityType string              `json:"activity_type"`
	Description  string              `json:"description"`
	Amount       decimal.NullDecimal `json:"amount"`
	ReferenceID  *uuid.UUID          `json:"reference_id,omitempty"`
	Metadata     datatypes.JSON      `json:"metadata,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
}
