package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetric(t *testing.T) {
	metric, err := NewMetric("profanity", "Detect profanity", `\b(?:damn|crap)\b`, SeverityMedium, 0.7)
	require.NoError(t, err)

	assert.Equal(t, "profanity", metric.Name)
	assert.True(t, metric.Enabled)
	require.NotNil(t, metric.Pattern())
	assert.True(t, metric.Pattern().MatchString("well DAMN"))
	assert.False(t, metric.Pattern().MatchString("clean text"))
}

func TestNewMetricValidation(t *testing.T) {
	_, err := NewMetric("", "d", `.+`, SeverityLow, 0.5)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewMetric("m", "d", `.+`, SeverityLow, 1.5)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = NewMetric("m", "d", `.+`, Severity(9), 0.5)
	assert.ErrorIs(t, err, ErrInvalidSeverity)

	_, err = NewMetric("m", "d", `(unclosed`, SeverityLow, 0.5)
	assert.Error(t, err)
	assert.True(t, IsInvalidPatternError(err))
}

func TestNewStandardValidation(t *testing.T) {
	standard, err := NewStandard("safety", "keep users safe", []string{"profanity"}, 1.5, 0.6)
	require.NoError(t, err)
	assert.True(t, standard.Enabled)
	assert.Equal(t, 1.5, standard.Weight)

	_, err = NewStandard("safety", "d", []string{"profanity"}, 0, 0.6)
	assert.ErrorIs(t, err, ErrInvalidWeight)

	_, err = NewStandard("safety", "d", nil, 1.0, 0.6)
	assert.ErrorIs(t, err, ErrNoMetrics)

	_, err = NewStandard("", "d", []string{"profanity"}, 1.0, 0.6)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestModerationResultDerivedProperties(t *testing.T) {
	clean := ModerationResult{Action: ActionApprove}
	assert.False(t, clean.HasViolations())
	assert.False(t, clean.IsSevere())

	flagged := ModerationResult{
		Action: ActionFlag,
		Violations: []Violation{
			{Standard: "quality", Severity: SeverityLow},
			{Standard: "spam", Severity: SeverityMedium},
		},
	}
	assert.True(t, flagged.HasViolations())
	assert.False(t, flagged.IsSevere())

	severe := ModerationResult{
		Action: ActionRemove,
		Violations: []Violation{
			{Standard: "safety", Severity: SeverityCritical},
		},
	}
	assert.True(t, severe.HasViolations())
	assert.True(t, severe.IsSevere())
}
