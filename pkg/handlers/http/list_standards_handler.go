package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/moderation"
)

type listStandardsHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewListStandardsHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &listStandardsHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *listStandardsHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"standards": h.registry.Standards()})
}
