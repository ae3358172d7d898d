package moderation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")
	ErrInvalidWeight    = errors.New("weight must be greater than 0")
	ErrInvalidSeverity  = errors.New("invalid severity level")
	ErrNoMetrics        = errors.New("standard must reference at least one metric")
)

type invalidPatternError struct {
	Metric  string
	Pattern string
	Err     error
}

func (e *invalidPatternError) Error() string {
	return fmt.Sprintf("metric %q has invalid pattern %q: %v", e.Metric, e.Pattern, e.Err)
}

func (e *invalidPatternError) Unwrap() error {
	return e.Err
}

func NewInvalidPatternError(metric, pattern string, err error) error {
	return &invalidPatternError{Metric: metric, Pattern: pattern, Err: err}
}

func IsInvalidPatternError(err error) bool {
	if err == nil {
		return false
	}
	var patternErr *invalidPatternError
	return errors.As(err, &patternErr)
}
