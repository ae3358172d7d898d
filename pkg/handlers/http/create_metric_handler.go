package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/handlers/http/request"
	"github.com/guardpost/guardpost/pkg/moderation"
)

type createMetricHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewCreateMetricHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &createMetricHandler{
		logger:   logger,
		registry: registry,
	}
}

// Handle registers a metric. The pattern is compiled here so a broken regex
// is rejected with a 400 instead of silently never firing.
func (h *createMetricHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateMetricRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind create metric request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	severity, err := domain.ParseSeverity(req.Severity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	metric, err := domain.NewMetric(req.Name, req.Description, req.CheckPattern, severity, req.Threshold)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Enabled != nil {
		metric.Enabled = *req.Enabled
	}

	if err := h.registry.AddMetric(metric); err != nil {
		h.logger.WithError(err).Error("failed to add metric")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(metric)
}
