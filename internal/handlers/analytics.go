package handlers

import (
	"bytes"
	"fmt"
	"time"

	"storeadmin/internal/services/analytics"
	"storeadmin/internal/services/export"
	"storeadmin/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type AnalyticsHandler struct {
	analyticsService analytics.Service
	exporter         *export.ExcelExporter
	timeout          time.Duration
}

func NewAnalyticsHandler(analyticsService analytics.Service, exporter *export.ExcelExporter, timeout time.Duration) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		exporter:         exporter,
		timeout:          timeout,
	}
}

func (h *AnalyticsHandler) GetSales(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return response.FromError(c, err)
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	points, err := h.analyticsService.SalesByPeriod(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("[admin.analytics-sales] query failed")
		return response.FromError(c, err)
	}
	return response.Success(c, "Sales retrieved successfully", points)
}

func (h *AnalyticsHandler) GetTopProducts(c *fiber.Ctx) error {
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	products, err := h.analyticsService.TopSellingProducts(ctx, c.QueryInt("limit"))
	if err != nil {
		log.Error().Err(err).Msg("[admin.analytics-top-products] query failed")
		return response.FromError(c, err)
	}
	return response.Success(c, "Top products retrieved successfully", products)
}

func (h *AnalyticsHandler) GetCategories(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return response.FromError(c, err)
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	rows, err := h.analyticsService.SalesByCategory(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("[admin.analytics-categories] query failed")
		return response.FromError(c, err)
	}
	return response.Success(c, "Category sales retrieved successfully", rows)
}

func (h *AnalyticsHandler) GetConversion(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return response.FromError(c, err)
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	metrics, err := h.analyticsService.ConversionMetrics(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("[admin.analytics-conversion] query failed")
		return response.FromError(c, err)
	}
	return response.Success(c, "Conversion metrics retrieved successfully", metrics)
}

func (h *AnalyticsHandler) GetActivity(c *fiber.Ctx) error {
	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	activity, err := h.analyticsService.RecentActivity(ctx, c.QueryInt("limit"))
	if err != nil {
		log.Error().Err(err).Msg("[admin.analytics-activity] query failed")
		return response.FromError(c, err)
	}
	return response.Success(c, "Recent activity retrieved successfully", activity)
}

// ExportSales streams the sales series of a period as an XLSX download.
func (h *AnalyticsHandler) ExportSales(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("period"))
	if err != nil {
		return response.FromError(c, err)
	}

	ctx, cancel := withTimeout(c, h.timeout)
	defer cancel()

	points, err := h.analyticsService.SalesByPeriod(ctx, period)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("[admin.analytics-export] query failed")
		return response.FromError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteSales(&buf, fmt.Sprintf("Sales (%s)", period), points); err != nil {
		log.Error().Err(err).Msg("[admin.analytics-export] workbook failed")
		return response.ServerError(c, "Failed to build export")
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Attachment(fmt.Sprintf("sales-%s-%s%s", period, time.Now().Format("20060102"), export.FileExtension))
	return c.Send(buf.Bytes())
}
