package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/app/moderate"
	"github.com/guardpost/guardpost/pkg/handlers/http/request"
	"github.com/guardpost/guardpost/pkg/types"
)

type moderateBatchHandler struct {
	logger    *logrus.Logger
	moderator moderate.CommentModerator
}

func NewModerateBatchHandler(logger *logrus.Logger, moderator moderate.CommentModerator) Handler {
	return &moderateBatchHandler{
		logger:    logger,
		moderator: moderator,
	}
}

func (h *moderateBatchHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind batch moderation request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if len(req.Comments) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "comments are required"})
	}

	comments := make([]*types.Comment, len(req.Comments))
	for i := range req.Comments {
		comments[i] = &req.Comments[i]
	}

	results := h.moderator.ModerateBatch(comments)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
