package handlers

import (
	"strings"

	apperrors "storeadmin/internal/errors"
	"storeadmin/internal/models"
	"storeadmin/internal/services/order"
	"storeadmin/internal/utils/pagination"
	"storeadmin/internal/utils/response"
	"storeadmin/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	filter := models.OrderFilter{
		Status: strings.ToLower(strings.TrimSpace(c.Query("status"))),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	// Filtering by an unknown status would only ever return an empty page.
	v := validation.New()
	v.OneOf("status", filter.Status, models.OrderStatuses...)
	if !v.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Invalid query parameters: " + v.Error(),
			"fields": v.Errors,
		})
	}

	page, err := h.orderService.List(c.UserContext(), filter)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = page.Total
	return c.JSON(pagination.Response(p, page.Orders))
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.FromError(c, apperrors.ErrInvalidID)
	}

	o, err := h.orderService.Get(c.UserContext(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order retrieved successfully", o)
}

func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.FromError(c, apperrors.ErrInvalidID)
	}

	var req models.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	o, err := h.orderService.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order status updated successfully", o)
}
