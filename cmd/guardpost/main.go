package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/guardpost/guardpost/pkg/app/moderate"
	"github.com/guardpost/guardpost/pkg/config"
	handlers "github.com/guardpost/guardpost/pkg/handlers/http"
	"github.com/guardpost/guardpost/pkg/infra/logger"
	"github.com/guardpost/guardpost/pkg/infra/prometheus"
	"github.com/guardpost/guardpost/pkg/moderation"
	"github.com/guardpost/guardpost/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logg := logger.NewLogger()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		logg.WithError(err).Warn("could not load config file, using defaults")
	}
	cfg := config.GetConfig()

	prometheus.Initialize()

	engine := buildEngine(cfg, configPath, logg)
	moderator := moderate.NewCommentModerator(engine, logg)

	transport := handlers.HandlerTransport{
		ModerateCommentHandler:      handlers.NewModerateCommentHandler(logg, moderator),
		ModerateBatchHandler:        handlers.NewModerateBatchHandler(logg, moderator),
		ListStandardsHandler:        handlers.NewListStandardsHandler(logg, engine.Registry()),
		CreateStandardHandler:       handlers.NewCreateStandardHandler(logg, engine.Registry()),
		DeleteStandardHandler:       handlers.NewDeleteStandardHandler(logg, engine.Registry()),
		UpdateStandardStatusHandler: handlers.NewUpdateStandardStatusHandler(logg, engine.Registry()),
		ListMetricsHandler:          handlers.NewListMetricsHandler(logg, engine.Registry()),
		CreateMetricHandler:         handlers.NewCreateMetricHandler(logg, engine.Registry()),
		DeleteMetricHandler:         handlers.NewDeleteMetricHandler(logg, engine.Registry()),
		UpdateMetricStatusHandler:   handlers.NewUpdateMetricStatusHandler(logg, engine.Registry()),
	}

	adminServer := server.NewAdminServer(server.AdminServerDI{
		HandlerTransport: transport,
		Config:           cfg,
		Logger:           logg,
	})

	go func() {
		if err := adminServer.Run(); err != nil {
			logg.WithError(err).Fatal("admin server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down")
	if err := adminServer.Shutdown(); err != nil {
		logg.WithError(err).Error("failed to shut down admin server")
	}
}

// buildEngine loads the standards catalog when one is configured and falls
// back to the built-in defaults otherwise.
func buildEngine(cfg *config.Config, configPath string, logg *logrus.Logger) *moderation.StandardsEngine {
	opts := []moderation.Option{
		moderation.WithThreshold(cfg.Engine.Threshold),
		moderation.WithAutoModerate(cfg.Engine.AutoModerate),
		moderation.WithBatchWorkers(cfg.Engine.BatchWorkers),
	}

	catalog, err := config.LoadCatalog(configPath)
	if err != nil || catalog.Empty() {
		if err != nil {
			logg.WithError(err).Info("no standards catalog, using built-in defaults")
		}
		return moderation.NewDefaultEngine(logg, opts...)
	}

	registry, err := catalog.BuildRegistry()
	if err != nil {
		logg.WithError(err).Fatal("invalid standards catalog")
	}

	logg.WithFields(logrus.Fields{
		"standards": len(catalog.Standards),
		"metrics":   len(catalog.Metrics),
	}).Info("loaded standards catalog")

	return moderation.NewStandardsEngine(registry, logg, opts...)
}
