package request

import (
	"github.com/guardpost/guardpost/pkg/types"
)

type ModerateCommentRequest struct {
	Comment types.Comment `json:"comment"`
}

type ModerateBatchRequest struct {
	Comments []types.Comment `json:"comments"`
}

type CreateStandardRequest struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Metrics           []string `json:"metrics"`
	Weight            float64  `json:"weight"`
	SeverityThreshold float64  `json:"severity_threshold"`
	Enabled           *bool    `json:"enabled"`
}

type CreateMetricRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CheckPattern string  `json:"check_pattern"`
	Severity     string  `json:"severity"`
	Threshold    float64 `json:"threshold"`
	Enabled      *bool   `json:"enabled"`
}

type UpdateStatusRequest struct {
	Enabled bool `json:"enabled"`
}
