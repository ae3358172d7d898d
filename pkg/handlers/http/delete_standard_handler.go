package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/moderation"
)

type deleteStandardHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewDeleteStandardHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &deleteStandardHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *deleteStandardHandler) Handle(c *fiber.Ctx) error {
	name := c.Params("standard_name")
	if !h.registry.RemoveStandard(name) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "standard not found"})
	}

	h.logger.WithField("standard", name).Info("standard removed")
	return c.SendStatus(fiber.StatusNoContent)
}
