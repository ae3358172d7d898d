package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/app/moderate"
	"github.com/guardpost/guardpost/pkg/handlers/http/request"
)

type moderateCommentHandler struct {
	logger    *logrus.Logger
	moderator moderate.CommentModerator
}

func NewModerateCommentHandler(logger *logrus.Logger, moderator moderate.CommentModerator) Handler {
	return &moderateCommentHandler{
		logger:    logger,
		moderator: moderator,
	}
}

// Handle scores one comment and returns the verdict. The engine never fails
// for well-formed input, so the only error path is a bad payload.
func (h *moderateCommentHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind moderation request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if req.Comment.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "comment text is required"})
	}

	result := h.moderator.Moderate(&req.Comment)
	return c.Status(fiber.StatusOK).JSON(result)
}
