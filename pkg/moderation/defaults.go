package moderation

import (
	"fmt"

	"github.com/sirupsen/logrus"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/types"
)

// Built-in baseline catalog: five standards covering safety, quality, spam,
// policy and engagement, plus the metrics they reference. Callers may use it
// as-is, extend it, or replace it entirely.

func mustMetric(name, description, pattern string, severity domain.Severity, threshold float64) domain.Metric {
	metric, err := domain.NewMetric(name, description, pattern, severity, threshold)
	if err != nil {
		panic(fmt.Sprintf("built-in metric %q: %v", name, err))
	}
	return metric
}

func mustStandard(name, description string, metrics []string, weight, severityThreshold float64) domain.Standard {
	standard, err := domain.NewStandard(name, description, metrics, weight, severityThreshold)
	if err != nil {
		panic(fmt.Sprintf("built-in standard %q: %v", name, err))
	}
	return standard
}

func DefaultStandards() []domain.Standard {
	return []domain.Standard{
		mustStandard("safety", "Protect users from harmful, dangerous, or illegal content",
			[]string{"profanity", "threats", "self_harm", "illegal_content"}, 1.5, 0.6),
		mustStandard("quality", "Maintain high-quality, constructive discussion",
			[]string{"length", "substance", "relevance", "coherence"}, 1.0, 0.7),
		mustStandard("spam", "Prevent spam and promotional content",
			[]string{"repetition", "links", "keywords", "patterns"}, 1.2, 0.6),
		mustStandard("policy", "Enforce platform-specific policies",
			[]string{"harassment", "hate_speech", "misinformation", "violence"}, 1.5, 0.5),
		mustStandard("engagement", "Encourage meaningful engagement",
			[]string{"tone", "constructiveness", "civility", "helpfulness"}, 0.8, 0.7),
	}
}

func DefaultMetrics() []domain.Metric {
	return []domain.Metric{
		mustMetric("profanity", "Detect profane language",
			`\b(?:shit|fuck|damn|ass|bitch|crap|bastard|idiot|stupid)\b`, domain.SeverityMedium, 0.7),
		mustMetric("threats", "Detect threatening language",
			`(?:kill|destroy|hurt|harm|attack|assault|murder|rape)`, domain.SeverityCritical, 0.5),
		mustMetric("self_harm", "Detect self-harm language",
			`(?:suicide|kill myself|end it|hurt myself)`, domain.SeverityCritical, 0.5),
		mustMetric("illegal_content", "Detect illegal content references",
			`(?:drugs|weapons|piracy|illegal|black market)`, domain.SeverityHigh, 0.7),
		mustMetric("length", "Check if comment is too short",
			`^.+$`, domain.SeverityLow, 0.6),
		mustMetric("substance", "Check if comment has meaningful content",
			`(?:agree|disagree|good|bad|nice|cool|awesome|great)`, domain.SeverityLow, 0.8),
		mustMetric("relevance", "Check comment relevance to post",
			`.+`, domain.SeverityMedium, 0.7),
		mustMetric("coherence", "Check if comment is coherent",
			`.+`, domain.SeverityMedium, 0.7),
		mustMetric("links", "Detect promotional links",
			`https?://\S+`, domain.SeverityMedium, 0.8),
		mustMetric("keywords", "Detect spam keywords",
			`(?:subscribe|follow|like|check this|visit my)`, domain.SeverityMedium, 0.7),
		mustMetric("patterns", "Detect spam patterns",
			`(?:\d{3,}|\$[0-9,]+|free.*money)`, domain.SeverityMedium, 0.7),
		// Density scoring rarely exceeds 0.5 on short direct insults
		// ("you are stupid" scores 0.33), so harassment fires below the
		// other policy metrics.
		mustMetric("harassment", "Detect harassment",
			`(?:stupid|idiot|loser|pathetic|shut up|you're awful)`, domain.SeverityHigh, 0.4),
		mustMetric("hate_speech", "Detect hate speech",
			`(?:hate|discriminate|racist|sexist|homophobic)`, domain.SeverityCritical, 0.5),
		mustMetric("misinformation", "Detect potential misinformation",
			`(?:fake news|conspiracy|false|not true)`, domain.SeverityHigh, 0.7),
		mustMetric("violence", "Detect violent language",
			`(?:beat|punch|kick|hit|violent|bloody|kill)`, domain.SeverityHigh, 0.6),
		mustMetric("tone", "Assess comment tone",
			`.+`, domain.SeverityLow, 0.7),
		mustMetric("constructiveness", "Check if comment is constructive",
			`(?:improve|suggest|recommend|maybe|could|should)`, domain.SeverityLow, 0.7),
		mustMetric("civility", "Check comment civility",
			`.+`, domain.SeverityMedium, 0.7),
		mustMetric("helpfulness", "Check if comment is helpful",
			`(?:help|useful|thanks|thank|appreciate)`, domain.SeverityLow, 0.7),
	}
}

// repetitionMetric cannot be expressed as an RE2 pattern (no backreferences),
// so it ships without a compiled pattern and relies on the built-in evaluator
// registered by NewDefaultEngine.
func repetitionMetric() domain.Metric {
	return domain.Metric{
		Name:         "repetition",
		Description:  "Detect repetitive content",
		CheckPattern: `(.)\1{3,}`,
		Severity:     domain.SeverityMedium,
		Threshold:    0.7,
		Enabled:      true,
	}
}

// RepetitionEvaluator is the built-in replacement strategy for the repetition
// metric.
func RepetitionEvaluator(comment *types.Comment, metric domain.Metric) (float64, string) {
	if DetectRepetition(comment.Text, 3) {
		return 1.0, fmt.Sprintf("Repeated characters or words detected for '%s'", metric.Name)
	}
	return 0.0, fmt.Sprintf("No violations found for '%s'", metric.Name)
}

// CapsAbuseEvaluator builds an evaluator that fires when the share of
// upper-case letters reaches ratio. Not part of the default catalog; register
// it against a metric of your own, e.g.
// engine.Evaluator().RegisterEvaluator("caps_abuse", CapsAbuseEvaluator(0.7)).
func CapsAbuseEvaluator(ratio float64) EvaluatorFunc {
	return func(comment *types.Comment, metric domain.Metric) (float64, string) {
		if DetectCapsAbuse(comment.Text, ratio) {
			return 1.0, fmt.Sprintf("Excessive capitalization detected for '%s'", metric.Name)
		}
		return 0.0, fmt.Sprintf("No violations found for '%s'", metric.Name)
	}
}

// NewDefaultRegistry builds a registry seeded with the built-in catalog.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, metric := range DefaultMetrics() {
		if err := registry.AddMetric(metric); err != nil {
			panic(fmt.Sprintf("built-in metric %q: %v", metric.Name, err))
		}
	}
	registry.putMetric(repetitionMetric())
	for _, standard := range DefaultStandards() {
		if err := registry.AddStandard(standard); err != nil {
			panic(fmt.Sprintf("built-in standard %q: %v", standard.Name, err))
		}
	}
	return registry
}

// NewDefaultEngine builds an engine over the built-in catalog with the
// built-in evaluators wired.
func NewDefaultEngine(logger *logrus.Logger, opts ...Option) *StandardsEngine {
	engine := NewStandardsEngine(NewDefaultRegistry(), logger, opts...)
	engine.Evaluator().RegisterEvaluator("repetition", RepetitionEvaluator)
	return engine
}
