package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/handlers/http/request"
	"github.com/guardpost/guardpost/pkg/moderation"
)

type updateMetricStatusHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewUpdateMetricStatusHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &updateMetricStatusHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *updateMetricStatusHandler) Handle(c *fiber.Ctx) error {
	var req request.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind metric status request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	// Params strings alias fiber's reusable request buffer; copy before the
	// registry retains the name as a map key.
	name := utils.CopyString(c.Params("metric_name"))
	var ok bool
	if req.Enabled {
		ok = h.registry.EnableMetric(name)
	} else {
		ok = h.registry.DisableMetric(name)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "metric not found"})
	}

	h.logger.WithFields(logrus.Fields{"metric": name, "enabled": req.Enabled}).Info("metric status updated")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": name, "enabled": req.Enabled})
}
