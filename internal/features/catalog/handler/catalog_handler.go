package handler

import (
	"errors"
	"net/http"
	"strconv"

	"chirostore/internal/core/logger"
	"chirostore/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// rayID extracts the request identifier set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ListServices handles the request to retrieve the purchasable service catalog.
// @Summary List purchasable services
// @Description Fetch the catalog of virtual-number services with their pricing breakdowns.
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Service
// @Failure 502 {object} ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.service.ListServices(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list services",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(services)
}

// PricingPreview handles the request to compute a markup breakdown.
// @Summary Preview pricing for a wholesale price
// @Description Computes selling price and profit for a given original price.
// @Tags catalog
// @Produce json
// @Param originalPrice path int true "Original wholesale price"
// @Success 200 {object} domain.Pricing
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /pricing/{originalPrice} [get]
func (h *CatalogHandler) PricingPreview(c *fiber.Ctx) error {
	originalPrice, err := strconv.ParseInt(c.Params("originalPrice"), 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Original price must be an integer",
			RayID:   rayID(c),
		})
	}

	pricing, err := h.service.PricingPreview(c.Context(), originalPrice)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPrice) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Original price must be positive",
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to compute pricing preview",
			zap.Int64("original_price", originalPrice),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(pricing)
}
