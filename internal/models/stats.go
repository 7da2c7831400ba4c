package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metric is a single computed statistic. Available is false when the query behind it
// failed; Value then holds the zero value and Error the reason.
type Metric[T any] struct {
	Value     T      `json:"value"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// Computed wraps a successfully computed value.
func Computed[T any](v T) Metric[T] {
	return Metric[T]{Value: v, Available: true}
}

// Unavailable records a failed computation.
func Unavailable[T any](err error) Metric[T] {
	m := Metric[T]{}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

// DailySales is one chart bucket: a formatted calendar date and the summed order totals.
type DailySales struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// OrderPoint is the slice of an order the daily sales series needs.
type OrderPoint struct {
	Total     decimal.Decimal
	CreatedAt time.Time
}

// StatsSummary is the dashboard overview.
type StatsSummary struct {
	TotalOrders      Metric[int64]           `json:"total_orders"`
	TotalUsers       Metric[int64]           `json:"total_users"`
	TotalProducts    Metric[int64]           `json:"total_products"`
	FeaturedProducts Metric[int64]           `json:"featured_products"`
	NewProducts      Metric[int64]           `json:"new_products"`
	LowStockVariants Metric[int64]           `json:"low_stock_variants"`
	TotalRevenue     Metric[decimal.Decimal] `json:"total_revenue"`
	DailySales       Metric[[]DailySales]    `json:"daily_sales"`

	Partial     bool      `json:"partial"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Availability reports how many metrics were computed out of the total.
func (s *StatsSummary) Availability() (available, total int) {
	flags := []bool{
		s.TotalOrders.Available,
		s.TotalUsers.Available,
		s.TotalProducts.Available,
		s.FeaturedProducts.Available,
		s.NewProducts.Available,
		s.LowStockVariants.Available,
		s.TotalRevenue.Available,
		s.DailySales.Available,
	}
	for _, ok := range flags {
		if ok {
			available++
		}
	}
	return available, len(flags)
}
