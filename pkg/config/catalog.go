package config

import (
	"fmt"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/moderation"
)

// CatalogConfig is the optional standards.yaml catalog that replaces the
// built-in standards and metrics.
type CatalogConfig struct {
	Standards []StandardDefinition `mapstructure:"standards"`
	Metrics   []MetricDefinition   `mapstructure:"metrics"`
}

type StandardDefinition struct {
	Name              string   `mapstructure:"name"`
	Description       string   `mapstructure:"description"`
	Metrics           []string `mapstructure:"metrics"`
	Weight            float64  `mapstructure:"weight"`
	SeverityThreshold float64  `mapstructure:"severity_threshold"`
	Enabled           *bool    `mapstructure:"enabled"`
}

type MetricDefinition struct {
	Name         string  `mapstructure:"name"`
	Description  string  `mapstructure:"description"`
	CheckPattern string  `mapstructure:"check_pattern"`
	Severity     string  `mapstructure:"severity"`
	Threshold    float64 `mapstructure:"threshold"`
	Enabled      *bool   `mapstructure:"enabled"`
}

func (c CatalogConfig) Empty() bool {
	return len(c.Standards) == 0 && len(c.Metrics) == 0
}

// LoadCatalog reads standards.yaml from the config path. A missing catalog is
// not an error; callers fall back to the built-in defaults.
func LoadCatalog(configPath string) (CatalogConfig, error) {
	var catalog CatalogConfig
	if err := loadConfigFile(configPath, "standards", &catalog); err != nil {
		return CatalogConfig{}, err
	}
	return catalog, nil
}

// BuildRegistry turns a catalog into a populated registry, rejecting invalid
// definitions (bad pattern, threshold, weight or severity) up front.
func (c CatalogConfig) BuildRegistry() (*moderation.Registry, error) {
	registry := moderation.NewRegistry()

	for _, def := range c.Metrics {
		severity, err := domain.ParseSeverity(def.Severity)
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", def.Name, err)
		}

		metric, err := domain.NewMetric(def.Name, def.Description, def.CheckPattern, severity, def.Threshold)
		if err != nil {
			return nil, fmt.Errorf("metric %q: %w", def.Name, err)
		}
		if def.Enabled != nil {
			metric.Enabled = *def.Enabled
		}

		if err := registry.AddMetric(metric); err != nil {
			return nil, err
		}
	}

	for _, def := range c.Standards {
		standard, err := domain.NewStandard(def.Name, def.Description, def.Metrics, def.Weight, def.SeverityThreshold)
		if err != nil {
			return nil, fmt.Errorf("standard %q: %w", def.Name, err)
		}
		if def.Enabled != nil {
			standard.Enabled = *def.Enabled
		}

		if err := registry.AddStandard(standard); err != nil {
			return nil, err
		}
	}

	return registry, nil
}
