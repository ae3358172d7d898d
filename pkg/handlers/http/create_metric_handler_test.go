package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/moderation"
)

func newMetricTestApp(t *testing.T) (*fiber.App, *moderation.Registry) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	registry := moderation.NewRegistry()

	app := fiber.New()
	app.Get("/metrics", NewListMetricsHandler(logger, registry).Handle)
	app.Post("/metrics", NewCreateMetricHandler(logger, registry).Handle)
	app.Delete("/metrics/:metric_name", NewDeleteMetricHandler(logger, registry).Handle)
	app.Put("/metrics/:metric_name/status", NewUpdateMetricStatusHandler(logger, registry).Handle)
	return app, registry
}

func TestCreateMetricHandler(t *testing.T) {
	app, registry := newMetricTestApp(t)

	status, body := postJSON(t, app, "/metrics", `{
		"name": "caps_abuse",
		"description": "Detect shouting",
		"check_pattern": "[A-Z]{5,}",
		"severity": "low",
		"threshold": 0.6
	}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var metric domain.Metric
	require.NoError(t, json.Unmarshal(body, &metric))
	assert.Equal(t, "caps_abuse", metric.Name)
	assert.Equal(t, domain.SeverityLow, metric.Severity)
	assert.True(t, metric.Enabled)

	stored, ok := registry.GetMetric("caps_abuse")
	require.True(t, ok)
	assert.NotNil(t, stored.Pattern())
}

func TestCreateMetricHandlerRejectsInvalid(t *testing.T) {
	app, _ := newMetricTestApp(t)

	status, body := postJSON(t, app, "/metrics", `{
		"name": "bad",
		"description": "broken regex",
		"check_pattern": "(unclosed",
		"severity": "low",
		"threshold": 0.5
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "invalid pattern")

	status, body = postJSON(t, app, "/metrics", `{
		"name": "bad",
		"description": "bad severity",
		"check_pattern": ".+",
		"severity": "extreme",
		"threshold": 0.5
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "severity")
}

func TestListMetricsHandlerSorted(t *testing.T) {
	app, registry := newMetricTestApp(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		metric, err := domain.NewMetric(name, name, ".+", domain.SeverityLow, 0.5)
		require.NoError(t, err)
		require.NoError(t, registry.AddMetric(metric))
	}

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Metrics []domain.Metric `json:"metrics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Metrics, 3)
	assert.Equal(t, "alpha", payload.Metrics[0].Name)
	assert.Equal(t, "mid", payload.Metrics[1].Name)
	assert.Equal(t, "zeta", payload.Metrics[2].Name)
}

func TestDeleteMetricHandler(t *testing.T) {
	app, registry := newMetricTestApp(t)

	metric, err := domain.NewMetric("doomed", "to be removed", ".+", domain.SeverityLow, 0.5)
	require.NoError(t, err)
	require.NoError(t, registry.AddMetric(metric))

	req := httptest.NewRequest("DELETE", "/metrics/doomed", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	_, ok := registry.GetMetric("doomed")
	assert.False(t, ok)

	req = httptest.NewRequest("DELETE", "/metrics/doomed", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateMetricStatusHandler(t *testing.T) {
	app, registry := newMetricTestApp(t)

	metric, err := domain.NewMetric("toggled", "status target", ".+", domain.SeverityLow, 0.5)
	require.NoError(t, err)
	require.NoError(t, registry.AddMetric(metric))

	status, _ := putJSON(t, app, "/metrics/toggled/status", `{"enabled": false}`)
	assert.Equal(t, fiber.StatusOK, status)

	stored, ok := registry.GetMetric("toggled")
	require.True(t, ok)
	assert.False(t, stored.Enabled)

	status, body := putJSON(t, app, "/metrics/missing/status", `{"enabled": true}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(body), "metric not found")
}
