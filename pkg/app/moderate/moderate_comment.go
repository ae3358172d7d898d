package moderate

import (
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
	"github.com/guardpost/guardpost/pkg/infra/prometheus"
	"github.com/guardpost/guardpost/pkg/moderation"
	"github.com/guardpost/guardpost/pkg/types"
)

// CommentModerator is the use-case surface the transport layer talks to. It
// wraps the engine with logging and instrumentation; the engine itself stays
// a pure function.
type CommentModerator interface {
	Moderate(comment *types.Comment) domain.ModerationResult
	ModerateBatch(comments []*types.Comment) []domain.ModerationResult
}

type commentModerator struct {
	engine *moderation.StandardsEngine
	logger *logrus.Logger
}

func NewCommentModerator(engine *moderation.StandardsEngine, logger *logrus.Logger) CommentModerator {
	return &commentModerator{
		engine: engine,
		logger: logger,
	}
}

func (m *commentModerator) Moderate(comment *types.Comment) domain.ModerationResult {
	start := time.Now()
	result := m.engine.Moderate(comment)
	m.observe(comment, result, time.Since(start))
	return result
}

func (m *commentModerator) ModerateBatch(comments []*types.Comment) []domain.ModerationResult {
	start := time.Now()
	results := m.engine.ModerateBatch(comments)
	elapsed := time.Since(start)

	for i, result := range results {
		m.observe(comments[i], result, elapsed/time.Duration(max(len(comments), 1)))
	}
	return results
}

func (m *commentModerator) observe(comment *types.Comment, result domain.ModerationResult, elapsed time.Duration) {
	ms := float64(elapsed.Microseconds()) / 1000.0
	prometheus.ModerationLatency.WithLabelValues(comment.Platform).Observe(ms)
	prometheus.CommentsModerated.WithLabelValues(comment.Platform, string(result.Action)).Inc()
	for _, violation := range result.Violations {
		prometheus.ViolationsDetected.WithLabelValues(violation.Standard, violation.Severity.String()).Inc()
	}

	entry := m.logger.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"platform":   comment.Platform,
		"action":     result.Action,
		"score":      result.Score,
		"violations": len(result.Violations),
	})
	if result.HasViolations() {
		entry.Info("comment moderated with violations")
	} else {
		entry.Debug("comment moderated clean")
	}
}
