package http

import (
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(c *fiber.Ctx) error
}

// HandlerTransport bundles the admin API handlers for route registration.
type HandlerTransport struct {
	ModerateCommentHandler      Handler
	ModerateBatchHandler        Handler
	ListStandardsHandler        Handler
	CreateStandardHandler       Handler
	DeleteStandardHandler       Handler
	UpdateStandardStatusHandler Handler
	ListMetricsHandler          Handler
	CreateMetricHandler         Handler
	DeleteMetricHandler         Handler
	UpdateMetricStatusHandler   Handler
}
