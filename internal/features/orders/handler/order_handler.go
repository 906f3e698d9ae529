package handler

import (
	"errors"
	"net/http"

	"chirostore/internal/core/logger"
	"chirostore/internal/features/orders/domain"
	"chirostore/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	// Service is the service identifier to order.
	Service string `json:"service"`
	// Operator is the requested mobile operator.
	Operator string `json:"operator"`
}

// SetStatusRequest represents the request body for updating an order status.
type SetStatusRequest struct {
	// OrderID is the canonical order identifier.
	OrderID string `json:"order_id"`
	// Status is the requested status code (1=Ready, 2=Cancel, 3=Resend, 4=Complete).
	Status int `json:"status"`
}

// rayID extracts the request identifier set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// CreateOrder handles the request to place an order.
// @Summary Place an order
// @Description Orders a virtual number for a service/operator pair.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body CreateOrderRequest true "Order details"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /order [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	operator, ok := domain.ParseOperator(req.Operator)
	if !ok && req.Operator != "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Operator must be one of: telkomsel, indosat, axis, any",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.CreateOrder(c.Context(), req.Service, operator)
	if err != nil {
		if errors.Is(err, service.ErrEmptyService) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Service is required",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to create order",
			zap.String("service", req.Service),
			zap.String("operator", string(operator)),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ActiveOrders handles the request to list in-flight orders.
// @Summary List active orders
// @Description Fetches all orders that are still in flight.
// @Tags orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 502 {object} ErrorResponse
// @Router /active-orders [get]
func (h *OrderHandler) ActiveOrders(c *fiber.Ctx) error {
	orders, err := h.service.ActiveOrders(c.Context())
	if err != nil {
		logger.Get().Error("Failed to fetch active orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// OrderStatus handles the request to fetch a single order.
// @Summary Get order status
// @Description Fetches the current state of a single order.
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /status/{orderId} [get]
func (h *OrderHandler) OrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")

	order, err := h.service.OrderStatus(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyOrderID) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Order ID is required",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to fetch order status",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// UpdateStatus handles the request to change an order's status.
// @Summary Update order status
// @Description Requests a status change for an order.
// @Tags orders
// @Accept json
// @Produce json
// @Param status body SetStatusRequest true "Status change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	err := h.service.UpdateStatus(c.Context(), req.OrderID, domain.Status(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrEmptyOrderID) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Order ID is required",
				RayID:   rayID(c),
			})
		}
		if errors.Is(err, service.ErrInvalidStatus) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Status must be 1 (Ready), 2 (Cancel), 3 (Resend) or 4 (Complete)",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to update order status",
			zap.String("order_id", req.OrderID),
			zap.Int("status", req.Status),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Order status updated",
	})
}
