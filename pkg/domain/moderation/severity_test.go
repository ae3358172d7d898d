package moderation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, SeverityLow < SeverityMedium)
	assert.True(t, SeverityMedium < SeverityHigh)
	assert.True(t, SeverityHigh < SeverityCritical)
}

func TestParseSeverity(t *testing.T) {
	severity, err := ParseSeverity("critical")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, severity)

	_, err = ParseSeverity("catastrophic")
	assert.Error(t, err)
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(SeverityHigh)
	require.NoError(t, err)
	assert.Equal(t, `"high"`, string(data))

	var severity Severity
	require.NoError(t, json.Unmarshal([]byte(`"medium"`), &severity))
	assert.Equal(t, SeverityMedium, severity)
}

func TestSeverityMarshalInvalid(t *testing.T) {
	_, err := Severity(42).MarshalText()
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	action, err := ParseAction("remove")
	require.NoError(t, err)
	assert.Equal(t, ActionRemove, action)

	_, err = ParseAction("obliterate")
	assert.Error(t, err)
}
