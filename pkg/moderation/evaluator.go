package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/types"
)

const (
	maxReasoningMatches = 3
	maxMatchExcerpt     = 20
)

// EvaluatorFunc measures how strongly one metric fires for a comment. It
// returns a badness score in [0, 1] and human-readable reasoning; the caller
// derives pass/fail as score < metric threshold.
type EvaluatorFunc func(comment *types.Comment, metric domain.Metric) (float64, string)

// Evaluation is the outcome of checking one metric against one comment.
type Evaluation struct {
	Passed    bool
	Score     float64
	Reasoning string
}

// MetricEvaluator checks comments against metrics. Custom evaluators
// registered by metric name fully replace the default pattern matcher for
// that metric; this is the engine's only extension point.
//
// Evaluation is fail-open: a broken pattern or a panicking custom evaluator
// degrades to "metric never fires" with diagnostic reasoning instead of
// aborting moderation. This keeps a bad rule from taking the whole pipeline
// down, at the cost of silently masking broken configuration.
type MetricEvaluator struct {
	logger   *logrus.Logger
	registry *Registry

	mu     sync.RWMutex
	custom map[string]EvaluatorFunc
}

func NewMetricEvaluator(registry *Registry, logger *logrus.Logger) *MetricEvaluator {
	return &MetricEvaluator{
		logger:   logger,
		registry: registry,
		custom:   make(map[string]EvaluatorFunc),
	}
}

// RegisterEvaluator installs a custom evaluator for a metric name, replacing
// the default pattern-matching strategy for that metric.
func (e *MetricEvaluator) RegisterEvaluator(metricName string, fn EvaluatorFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.custom[metricName] = fn
}

func (e *MetricEvaluator) RemoveEvaluator(metricName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.custom[metricName]; !ok {
		return false
	}
	delete(e.custom, metricName)
	return true
}

// Validate checks a comment against a named metric. An unknown metric is not
// an error: it passes with score 0 and a diagnostic message.
func (e *MetricEvaluator) Validate(comment *types.Comment, metricName string) (bool, float64, string) {
	metric, ok := e.registry.GetMetric(metricName)
	if !ok {
		return true, 0.0, fmt.Sprintf("Metric '%s' not found", metricName)
	}

	score, reasoning := e.evaluate(comment, metric)
	return score < metric.Threshold, score, reasoning
}

// ValidateAll checks a comment against several metrics at once.
func (e *MetricEvaluator) ValidateAll(comment *types.Comment, metricNames []string) map[string]Evaluation {
	results := make(map[string]Evaluation, len(metricNames))
	for _, name := range metricNames {
		passed, score, reasoning := e.Validate(comment, name)
		results[name] = Evaluation{Passed: passed, Score: score, Reasoning: reasoning}
	}
	return results
}

func (e *MetricEvaluator) evaluate(comment *types.Comment, metric domain.Metric) (score float64, reasoning string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithFields(logrus.Fields{
				"metric": metric.Name,
				"panic":  r,
			}).Warn("metric evaluator panicked, treating as no violation")
			score = 0.0
			reasoning = fmt.Sprintf("no violation, evaluator error: %v", r)
		}
	}()

	e.mu.RLock()
	custom, ok := e.custom[metric.Name]
	e.mu.RUnlock()
	if ok {
		return custom(comment, metric)
	}

	return e.evaluatePattern(comment, metric)
}

func (e *MetricEvaluator) evaluatePattern(comment *types.Comment, metric domain.Metric) (float64, string) {
	pattern := metric.Pattern()
	if pattern == nil {
		compiled, err := regexp.Compile("(?i)" + metric.CheckPattern)
		if err != nil {
			e.logger.WithError(err).WithField("metric", metric.Name).
				Warn("metric pattern failed to compile, treating as no violation")
			return 0.0, fmt.Sprintf("no violation, evaluator error: %v", err)
		}
		pattern = compiled
	}

	matches := pattern.FindAllString(comment.Text, -1)
	if len(matches) == 0 {
		return 0.0, fmt.Sprintf("No violations found for '%s'", metric.Name)
	}

	wordCount := len(strings.Fields(comment.Text))
	if wordCount < 1 {
		wordCount = 1
	}
	score := float64(len(matches)) / float64(wordCount)
	if score > 1.0 {
		score = 1.0
	}

	return score, matchReasoning(matches, metric, score)
}

func matchReasoning(matches []string, metric domain.Metric, score float64) string {
	shown := matches
	if len(shown) > maxReasoningMatches {
		shown = shown[:maxReasoningMatches]
	}

	excerpts := make([]string, 0, len(shown))
	for _, match := range shown {
		if len(match) > maxMatchExcerpt {
			match = match[:maxMatchExcerpt]
		}
		excerpts = append(excerpts, match)
	}

	matchText := strings.Join(excerpts, ", ")
	if len(matches) > maxReasoningMatches {
		matchText += fmt.Sprintf(" and %d more", len(matches)-maxReasoningMatches)
	}

	return fmt.Sprintf(
		"Found %d violation(s) for '%s': %s. Score: %.2f (threshold: %.2f)",
		len(matches), metric.Name, matchText, score, metric.Threshold,
	)
}
