package moderation

import (
	"regexp"
)

// Metric is a single pattern-based textual signal. A comment "passes" a metric
// when its measured badness score stays below Threshold, so a lower score is
// better while Severity ranks how bad a failure is. That inversion is
// deliberate and load-bearing for action selection.
type Metric struct {
	Name         string   `json:"name" mapstructure:"name"`
	Description  string   `json:"description" mapstructure:"description"`
	CheckPattern string   `json:"check_pattern" mapstructure:"check_pattern"`
	Severity     Severity `json:"severity" mapstructure:"severity"`
	Threshold    float64  `json:"threshold" mapstructure:"threshold"`
	Enabled      bool     `json:"enabled" mapstructure:"enabled"`

	pattern *regexp.Regexp
}

// NewMetric builds a metric and compiles its pattern once, so broken
// configuration fails at registration instead of silently never firing at
// evaluation time.
func NewMetric(name, description, checkPattern string, severity Severity, threshold float64) (Metric, error) {
	if name == "" {
		return Metric{}, ErrEmptyName
	}
	if threshold < 0 || threshold > 1 {
		return Metric{}, ErrInvalidThreshold
	}
	if !severity.Valid() {
		return Metric{}, ErrInvalidSeverity
	}

	pattern, err := regexp.Compile("(?i)" + checkPattern)
	if err != nil {
		return Metric{}, NewInvalidPatternError(name, checkPattern, err)
	}

	return Metric{
		Name:         name,
		Description:  description,
		CheckPattern: checkPattern,
		Severity:     severity,
		Threshold:    threshold,
		Enabled:      true,
		pattern:      pattern,
	}, nil
}

// Pattern returns the compiled case-insensitive pattern, or nil when the
// metric was never compiled (e.g. built from a struct literal).
func (m Metric) Pattern() *regexp.Regexp {
	return m.pattern
}

func (m Metric) WithEnabled(enabled bool) Metric {
	m.Enabled = enabled
	return m
}
