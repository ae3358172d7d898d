package moderation

import (
	"time"

	"github.com/google/uuid"

	"github.com/guardpost/guardpost/pkg/types"
)

// Violation records that a standard's metrics crossed their thresholds for one
// comment. Confidence carries the highest configured threshold among the
// violated metrics, not the measured badness score; this mirrors the reference
// behavior and means a metric that barely crosses its threshold scores the
// same as one matching every word.
type Violation struct {
	Standard        string   `json:"standard"`
	Description     string   `json:"description"`
	Severity        Severity `json:"severity"`
	Confidence      float64  `json:"confidence"`
	ViolatedMetrics []string `json:"violated_metrics"`
	Reasoning       string   `json:"reasoning"`
	Position        *int     `json:"position,omitempty"`
}

// ModerationResult is the verdict for a single comment. It lives only as long
// as the caller keeps it; nothing is persisted.
type ModerationResult struct {
	ID         uuid.UUID      `json:"id"`
	Comment    *types.Comment `json:"comment"`
	Action     Action         `json:"action"`
	Violations []Violation    `json:"violations"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Reasoning  string         `json:"reasoning"`
	Timestamp  time.Time      `json:"timestamp"`
}

func (r ModerationResult) HasViolations() bool {
	return len(r.Violations) > 0
}

// IsSevere reports whether any violation reached high or critical severity.
func (r ModerationResult) IsSevere() bool {
	for _, v := range r.Violations {
		if v.Severity >= SeverityHigh {
			return true
		}
	}
	return false
}
