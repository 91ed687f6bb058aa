package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// FulfillmentMetrics records per-step outcomes of the post-payment pipeline.
type FulfillmentMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	fallback prometheus.Counter
}

// NewFulfillmentMetrics registers the fulfillment metrics on the provided registerer.
func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	if reg == nil {
		return &FulfillmentMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fulfillment_step_duration_seconds",
		Help:    "Duration of fulfillment pipeline steps in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"step"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_step_success",
		Help: "Successful fulfillment step executions.",
	}, []string{"step"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_step_failure",
		Help: "Failed fulfillment step executions.",
	}, []string{"step"})
	fallback := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_content_fallback_total",
		Help: "Reports delivered with static fallback content.",
	})
	reg.MustRegister(duration, success, failure, fallback)
	return &FulfillmentMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		fallback: fallback,
	}
}

// ObserveDuration records the duration for the named step.
func (f *FulfillmentMetrics) ObserveDuration(step string, duration time.Duration) {
	if f == nil || f.duration == nil {
		return
	}
	f.duration.WithLabelValues(normalizeLabel(step)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named step.
func (f *FulfillmentMetrics) IncSuccess(step string) {
	if f == nil || f.success == nil {
		return
	}
	f.success.WithLabelValues(normalizeLabel(step)).Inc()
}

// IncFailure increments the failure counter for the named step.
func (f *FulfillmentMetrics) IncFailure(step string) {
	if f == nil || f.failure == nil {
		return
	}
	f.failure.WithLabelValues(normalizeLabel(step)).Inc()
}

// IncFallback counts a report delivered from static fallback content.
func (f *FulfillmentMetrics) IncFallback() {
	if f == nil || f.fallback == nil {
		return
	}
	f.fallback.Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
