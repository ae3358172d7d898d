package moderation

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
)

func testMetric(t *testing.T, name, pattern string, severity domain.Severity, threshold float64) domain.Metric {
	t.Helper()
	metric, err := domain.NewMetric(name, name+" metric", pattern, severity, threshold)
	require.NoError(t, err)
	return metric
}

func testStandard(t *testing.T, name string, metrics []string, weight float64) domain.Standard {
	t.Helper()
	standard, err := domain.NewStandard(name, name+" standard", metrics, weight, 0.7)
	require.NoError(t, err)
	return standard
}

func TestRegistryStandardCRUD(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.AddStandard(testStandard(t, "spam", []string{"links"}, 1.2)))

	standard, ok := registry.GetStandard("spam")
	require.True(t, ok)
	assert.True(t, standard.Enabled)

	assert.True(t, registry.DisableStandard("spam"))
	standard, _ = registry.GetStandard("spam")
	assert.False(t, standard.Enabled)

	assert.True(t, registry.EnableStandard("spam"))
	standard, _ = registry.GetStandard("spam")
	assert.True(t, standard.Enabled)

	assert.True(t, registry.RemoveStandard("spam"))
	_, ok = registry.GetStandard("spam")
	assert.False(t, ok)
}

func TestRegistryMissingNames(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.RemoveStandard("nonexistent"))
	assert.False(t, registry.EnableStandard("nonexistent"))
	assert.False(t, registry.DisableStandard("nonexistent"))
	assert.False(t, registry.RemoveMetric("nonexistent"))
	assert.False(t, registry.EnableMetric("nonexistent"))
	assert.False(t, registry.DisableMetric("nonexistent"))
}

func TestRegistryRejectsInvalidDefinitions(t *testing.T) {
	registry := NewRegistry()

	err := registry.AddStandard(domain.Standard{Name: "bad", Metrics: []string{"m"}, Weight: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidWeight)

	err = registry.AddMetric(domain.Metric{Name: "bad", CheckPattern: `.+`, Severity: domain.SeverityLow, Threshold: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	err = registry.AddMetric(domain.Metric{Name: "bad", CheckPattern: `(unclosed`, Severity: domain.SeverityLow, Threshold: 0.5})
	assert.Error(t, err)
	assert.True(t, domain.IsInvalidPatternError(err))
}

func TestRegistryAddMetricCompilesPattern(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.AddMetric(domain.Metric{
		Name:         "links",
		CheckPattern: `https?://\S+`,
		Severity:     domain.SeverityMedium,
		Threshold:    0.8,
		Enabled:      true,
	}))

	metric, ok := registry.GetMetric("links")
	require.True(t, ok)
	require.NotNil(t, metric.Pattern())
	assert.True(t, metric.Pattern().MatchString("see HTTPS://example.com"))
}

func TestRegistrySnapshotsAreSorted(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.AddStandard(testStandard(t, "zeta", []string{"m"}, 1)))
	require.NoError(t, registry.AddStandard(testStandard(t, "alpha", []string{"m"}, 1)))
	require.NoError(t, registry.AddStandard(testStandard(t, "mid", []string{"m"}, 1)))

	standards := registry.Standards()
	require.Len(t, standards, 3)
	assert.Equal(t, "alpha", standards[0].Name)
	assert.Equal(t, "mid", standards[1].Name)
	assert.Equal(t, "zeta", standards[2].Name)
}

func TestDefaultRegistryCatalog(t *testing.T) {
	registry := NewDefaultRegistry()

	standards := registry.Standards()
	assert.Len(t, standards, 5)
	names := make([]string, 0, len(standards))
	for _, standard := range standards {
		names = append(names, standard.Name)
	}
	assert.Equal(t, []string{"engagement", "policy", "quality", "safety", "spam"}, names)

	assert.Len(t, registry.Metrics(), 20)

	profanity, ok := registry.GetMetric("profanity")
	require.True(t, ok)
	assert.Equal(t, domain.SeverityMedium, profanity.Severity)
	assert.NotNil(t, profanity.Pattern())

	// The repetition metric has no RE2 pattern; detection runs through the
	// built-in evaluator.
	repetition, ok := registry.GetMetric("repetition")
	require.True(t, ok)
	assert.Nil(t, repetition.Pattern())
}

func TestNewDefaultEngineWiresRepetitionEvaluator(t *testing.T) {
	engine := NewDefaultEngine(logrus.New())

	passed, score, reasoning := engine.Evaluator().Validate(commentWithText("spam spam spam spam"), "repetition")
	assert.False(t, passed)
	assert.Equal(t, 1.0, score)
	assert.Contains(t, reasoning, "Repeated")
}
