package moderation

// Standard is a named, weighted bundle of metrics representing one moderation
// policy dimension. Metrics are referenced by name, not owned, so several
// standards can share the same metric.
type Standard struct {
	Name              string   `json:"name" mapstructure:"name"`
	Description       string   `json:"description" mapstructure:"description"`
	Metrics           []string `json:"metrics" mapstructure:"metrics"`
	Weight            float64  `json:"weight" mapstructure:"weight"`
	SeverityThreshold float64  `json:"severity_threshold" mapstructure:"severity_threshold"`
	Enabled           bool     `json:"enabled" mapstructure:"enabled"`
}

func NewStandard(name, description string, metrics []string, weight, severityThreshold float64) (Standard, error) {
	if name == "" {
		return Standard{}, ErrEmptyName
	}
	if weight <= 0 {
		return Standard{}, ErrInvalidWeight
	}
	if len(metrics) == 0 {
		return Standard{}, ErrNoMetrics
	}

	return Standard{
		Name:              name,
		Description:       description,
		Metrics:           append([]string(nil), metrics...),
		Weight:            weight,
		SeverityThreshold: severityThreshold,
		Enabled:           true,
	}, nil
}

func (s Standard) WithEnabled(enabled bool) Standard {
	s.Enabled = enabled
	return s
}
