package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/moderation"
)

type listMetricsHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewListMetricsHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &listMetricsHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *listMetricsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"metrics": h.registry.Metrics()})
}
