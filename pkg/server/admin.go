package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/config"
	handlers "github.com/guardpost/guardpost/pkg/handlers/http"
)

type (
	AdminServerDI struct {
		HandlerTransport handlers.HandlerTransport
		Config           *config.Config
		Logger           *logrus.Logger
	}
	AdminServer struct {
		*BaseServer
		handlerTransport handlers.HandlerTransport
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer:       NewBaseServer(di.Config, di.Logger),
		handlerTransport: di.HandlerTransport,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting admin server")
	return s.Router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	v1 := s.Router.Group("/api/v1")
	{
		moderation := v1.Group("/moderation")
		{
			moderation.Post("", s.handlerTransport.ModerateCommentHandler.Handle)
			moderation.Post("/batch", s.handlerTransport.ModerateBatchHandler.Handle)
		}

		standards := v1.Group("/standards")
		{
			standards.Get("", s.handlerTransport.ListStandardsHandler.Handle)
			standards.Post("", s.handlerTransport.CreateStandardHandler.Handle)
			standards.Delete("/:standard_name", s.handlerTransport.DeleteStandardHandler.Handle)
			standards.Put("/:standard_name/status", s.handlerTransport.UpdateStandardStatusHandler.Handle)
		}

		metrics := v1.Group("/metrics")
		{
			metrics.Get("", s.handlerTransport.ListMetricsHandler.Handle)
			metrics.Post("", s.handlerTransport.CreateMetricHandler.Handle)
			metrics.Delete("/:metric_name", s.handlerTransport.DeleteMetricHandler.Handle)
			metrics.Put("/:metric_name/status", s.handlerTransport.UpdateMetricStatusHandler.Handle)
		}
	}
}

func (s *AdminServer) Shutdown() error {
	return s.Router.Shutdown()
}
