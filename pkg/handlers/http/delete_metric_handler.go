package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/moderation"
)

type deleteMetricHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewDeleteMetricHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &deleteMetricHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *deleteMetricHandler) Handle(c *fiber.Ctx) error {
	name := c.Params("metric_name")
	if !h.registry.RemoveMetric(name) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "metric not found"})
	}

	h.logger.WithField("metric", name).Info("metric removed")
	return c.SendStatus(fiber.StatusNoContent)
}
