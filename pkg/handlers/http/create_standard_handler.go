package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/handlers/http/request"
	"github.com/guardpost/guardpost/pkg/moderation"
)

type createStandardHandler struct {
	logger   *logrus.Logger
	registry *moderation.Registry
}

func NewCreateStandardHandler(logger *logrus.Logger, registry *moderation.Registry) Handler {
	return &createStandardHandler{
		logger:   logger,
		registry: registry,
	}
}

func (h *createStandardHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateStandardRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind create standard request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	standard, err := domain.NewStandard(req.Name, req.Description, req.Metrics, req.Weight, req.SeverityThreshold)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Enabled != nil {
		standard.Enabled = *req.Enabled
	}

	if err := h.registry.AddStandard(standard); err != nil {
		h.logger.WithError(err).Error("failed to add standard")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(standard)
}
