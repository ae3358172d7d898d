package moderation

import (
	"sort"
	"sync"

	domain "github.com/guardpost/guardpost/pkg/domain/moderation"
)

// Registry owns the in-memory catalogs of standards and metrics. The engine
// only reads; admin surfaces mutate concurrently, so access is guarded by a
// read-write lock.
type Registry struct {
	mu        sync.RWMutex
	standards map[string]domain.Standard
	metrics   map[string]domain.Metric
}

func NewRegistry() *Registry {
	return &Registry{
		standards: make(map[string]domain.Standard),
		metrics:   make(map[string]domain.Metric),
	}
}

// AddStandard registers a standard, rejecting invalid definitions at write
// time rather than discovering them during moderation.
func (r *Registry) AddStandard(standard domain.Standard) error {
	validated, err := domain.NewStandard(
		standard.Name,
		standard.Description,
		standard.Metrics,
		standard.Weight,
		standard.SeverityThreshold,
	)
	if err != nil {
		return err
	}
	validated.Enabled = standard.Enabled

	r.mu.Lock()
	defer r.mu.Unlock()
	r.standards[validated.Name] = validated
	return nil
}

func (r *Registry) RemoveStandard(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.standards[name]; !ok {
		return false
	}
	delete(r.standards, name)
	return true
}

func (r *Registry) EnableStandard(name string) bool {
	return r.setStandardEnabled(name, true)
}

func (r *Registry) DisableStandard(name string) bool {
	return r.setStandardEnabled(name, false)
}

func (r *Registry) setStandardEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	standard, ok := r.standards[name]
	if !ok {
		return false
	}
	r.standards[name] = standard.WithEnabled(enabled)
	return true
}

func (r *Registry) GetStandard(name string) (domain.Standard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	standard, ok := r.standards[name]
	return standard, ok
}

// Standards returns a name-sorted snapshot. Sorted order keeps moderation
// output deterministic across calls; Go map iteration is randomized.
func (r *Registry) Standards() []domain.Standard {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Standard, 0, len(r.standards))
	for _, standard := range r.standards {
		out = append(out, standard)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddMetric registers a metric, compiling its pattern so a broken regex fails
// here instead of silently never firing during evaluation.
func (r *Registry) AddMetric(metric domain.Metric) error {
	validated, err := domain.NewMetric(
		metric.Name,
		metric.Description,
		metric.CheckPattern,
		metric.Severity,
		metric.Threshold,
	)
	if err != nil {
		return err
	}
	validated.Enabled = metric.Enabled

	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[validated.Name] = validated
	return nil
}

func (r *Registry) RemoveMetric(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.metrics[name]; !ok {
		return false
	}
	delete(r.metrics, name)
	return true
}

func (r *Registry) EnableMetric(name string) bool {
	return r.setMetricEnabled(name, true)
}

func (r *Registry) DisableMetric(name string) bool {
	return r.setMetricEnabled(name, false)
}

func (r *Registry) setMetricEnabled(name string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	metric, ok := r.metrics[name]
	if !ok {
		return false
	}
	r.metrics[name] = metric.WithEnabled(enabled)
	return true
}

func (r *Registry) GetMetric(name string) (domain.Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	metric, ok := r.metrics[name]
	return metric, ok
}

func (r *Registry) Metrics() []domain.Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Metric, 0, len(r.metrics))
	for _, metric := range r.metrics {
		out = append(out, metric)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// putMetric inserts without pattern compilation. Reserved for built-in
// catalog entries whose detection is handled by a registered evaluator
// instead of the default pattern matcher.
func (r *Registry) putMetric(metric domain.Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}
