package moderation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/types"
)

const (
	defaultThreshold    = 0.7
	defaultBatchWorkers = 1
)

// StandardsEngine evaluates comments against every enabled standard and turns
// the violations into a scored, explainable verdict. Moderate keeps no memory
// of past comments; given the same registries and text it produces the same
// verdict every time.
type StandardsEngine struct {
	logger    *logrus.Logger
	registry  *Registry
	evaluator *MetricEvaluator

	threshold    float64
	autoModerate bool
	batchWorkers int
}

type Option func(*StandardsEngine)

// WithThreshold sets the global violation threshold used for the auto-hide
// decision.
func WithThreshold(threshold float64) Option {
	return func(e *StandardsEngine) { e.threshold = threshold }
}

// WithAutoModerate allows the engine to recommend HIDE when the aggregate
// score crosses the threshold, instead of always falling back to FLAG.
func WithAutoModerate(enabled bool) Option {
	return func(e *StandardsEngine) { e.autoModerate = enabled }
}

// WithBatchWorkers bounds the number of goroutines ModerateBatch may use.
// Values below 2 keep batches strictly sequential.
func WithBatchWorkers(workers int) Option {
	return func(e *StandardsEngine) { e.batchWorkers = workers }
}

func NewStandardsEngine(registry *Registry, logger *logrus.Logger, opts ...Option) *StandardsEngine {
	engine := &StandardsEngine{
		logger:       logger,
		registry:     registry,
		evaluator:    NewMetricEvaluator(registry, logger),
		threshold:    defaultThreshold,
		autoModerate: false,
		batchWorkers: defaultBatchWorkers,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

func (e *StandardsEngine) Registry() *Registry {
	return e.registry
}

func (e *StandardsEngine) Evaluator() *MetricEvaluator {
	return e.evaluator
}

func (e *StandardsEngine) Threshold() float64 {
	return e.threshold
}

// Moderate scores a single comment against all enabled standards. It is a
// total function: evaluator failures degrade to "no violation" and never
// surface as errors.
func (e *StandardsEngine) Moderate(comment *types.Comment) domain.ModerationResult {
	violations := make([]domain.Violation, 0)
	totalScore := 0.0
	totalWeight := 0.0

	for _, standard := range e.registry.Standards() {
		if !standard.Enabled {
			continue
		}

		standardViolations := e.checkStandard(comment, standard)
		violations = append(violations, standardViolations...)

		if len(standardViolations) > 0 {
			totalScore += maxConfidence(standardViolations) * standard.Weight
		}
		totalWeight += standard.Weight
	}

	finalScore := 0.0
	if totalWeight > 0 {
		finalScore = totalScore / totalWeight
	}

	return domain.ModerationResult{
		ID:         uuid.New(),
		Comment:    comment,
		Action:     e.determineAction(finalScore, violations),
		Violations: violations,
		Score:      finalScore,
		Confidence: calculateConfidence(violations),
		Reasoning:  e.buildReasoning(violations, finalScore),
		Timestamp:  time.Now().UTC(),
	}
}

// ModerateBatch moderates comments independently, preserving input order.
// With more than one worker configured the batch runs on a bounded pool; the
// items share no state, so this is a pure optimization.
func (e *StandardsEngine) ModerateBatch(comments []*types.Comment) []domain.ModerationResult {
	results := make([]domain.ModerationResult, len(comments))

	if e.batchWorkers <= 1 {
		for i, comment := range comments {
			results[i] = e.Moderate(comment)
		}
		return results
	}

	var group errgroup.Group
	group.SetLimit(e.batchWorkers)
	for i, comment := range comments {
		i, comment := i, comment
		group.Go(func() error {
			results[i] = e.Moderate(comment)
			return nil
		})
	}
	_ = group.Wait()
	return results
}

// checkStandard evaluates every enabled metric a standard references and
// collapses the failures into at most one violation. Metrics that are missing
// or disabled are silently skipped; that is configuration, not an error.
func (e *StandardsEngine) checkStandard(comment *types.Comment, standard domain.Standard) []domain.Violation {
	violatedMetrics := make([]string, 0)
	confidence := 0.0

	for _, metricName := range standard.Metrics {
		metric, ok := e.registry.GetMetric(metricName)
		if !ok || !metric.Enabled {
			continue
		}

		passed, _, _ := e.evaluator.Validate(comment, metricName)
		if passed {
			continue
		}

		violatedMetrics = append(violatedMetrics, metricName)
		// Confidence proxies how seriously the worst violated rule is
		// configured, not how strongly it actually matched.
		if metric.Threshold > confidence {
			confidence = metric.Threshold
		}
	}

	if len(violatedMetrics) == 0 {
		return nil
	}

	return []domain.Violation{{
		Standard:        standard.Name,
		Description:     standard.Description,
		Severity:        severityForConfidence(confidence),
		Confidence:      confidence,
		ViolatedMetrics: violatedMetrics,
		Reasoning: fmt.Sprintf(
			"Comment violates %s standard based on metrics: %s",
			standard.Name, strings.Join(violatedMetrics, ", "),
		),
	}}
}

func severityForConfidence(confidence float64) domain.Severity {
	switch {
	case confidence >= 0.9:
		return domain.SeverityCritical
	case confidence >= 0.7:
		return domain.SeverityHigh
	case confidence >= 0.5:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// determineAction picks the enforcement outcome; the first matching rule wins.
func (e *StandardsEngine) determineAction(score float64, violations []domain.Violation) domain.Action {
	if len(violations) == 0 {
		return domain.ActionApprove
	}

	for _, violation := range violations {
		if violation.Severity == domain.SeverityCritical {
			return domain.ActionRemove
		}
	}

	for _, violation := range violations {
		if violation.Severity == domain.SeverityHigh {
			return domain.ActionRemove
		}
	}

	if score >= e.threshold && e.autoModerate {
		return domain.ActionHide
	}

	return domain.ActionFlag
}

// calculateConfidence blends the worst violation with how many distinct
// standards fired. A clean comment is fully confident.
func calculateConfidence(violations []domain.Violation) float64 {
	if len(violations) == 0 {
		return 1.0
	}

	countFactor := float64(len(violations)) / 5.0
	if countFactor > 1.0 {
		countFactor = 1.0
	}

	return (maxConfidence(violations) + countFactor) / 2.0
}

func maxConfidence(violations []domain.Violation) float64 {
	max := 0.0
	for _, violation := range violations {
		if violation.Confidence > max {
			max = violation.Confidence
		}
	}
	return max
}

// buildReasoning renders the human-readable report. It is a pure function of
// the violations and score so repeated calls stay reproducible.
func (e *StandardsEngine) buildReasoning(violations []domain.Violation, score float64) string {
	if len(violations) == 0 {
		return "Comment passes all standards. No violations detected."
	}

	lines := make([]string, 0, len(violations)+2)
	lines = append(lines, fmt.Sprintf("Found %d violation(s):", len(violations)))
	for _, violation := range violations {
		lines = append(lines, fmt.Sprintf("  - %s: %s", violation.Standard, violation.Reasoning))
	}
	lines = append(lines, fmt.Sprintf("Overall score: %.2f (threshold: %.2f)", score, e.threshold))

	return strings.Join(lines, "\n")
}
