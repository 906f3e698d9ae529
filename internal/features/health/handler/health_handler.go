package handler

import (
	"context"
	"net/http"

	"chirostore/internal/core/logger"
	"chirostore/pkg/virtusim"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker reports the upstream store API health.
type HealthChecker interface {
	Health(ctx context.Context) (virtusim.HealthCheck, error)
}

// HealthHandler handles the storefront health endpoint, which proxies the
// upstream store health report.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles the health check request.
// @Summary Health check
// @Description Reports the upstream store API health.
// @Tags health
// @Produce json
// @Success 200 {object} virtusim.HealthCheck
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	health, err := h.checker.Health(c.Context())
	if err != nil {
		logger.Get().Warn("Upstream health check failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(health)
}
