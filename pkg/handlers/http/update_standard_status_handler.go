package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/handlers/http/request"
	"github.com/guardpost/guardpost/pkg/moderation"
)

type updateStandardStatusHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewUpdateStandardStatusHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &updateStandardStatusHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *updateStandardStatusHandler) Handle(c *fiber.Ctx) error {
	var req request.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind standard status request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	// Params strings alias fiber's reusable request buffer; copy before the
	// registry retains the name as a map key.
	name := utils.CopyString(c.Params("standard_name"))
	var ok bool
	if req.Enabled {
		ok = h.registry.EnableStandard(name)
	} else {
		ok = h.registry.DisableStandard(name)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "standard not found"})
	}

	h.logger.WithFields(logrus.Fields{"standard": name, "enabled": req.Enabled}).Info("standard status updated")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": name, "enabled": req.Enabled})
}
