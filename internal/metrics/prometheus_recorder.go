package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	inspectionDuration prom.Histogram
	inspectionOutcome  *prom.CounterVec
	targetCount        prom.Gauge
	watchTriggers      *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.inspectionDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "targetcheck",
			Name:      "inspection_duration_seconds",
			Help:      "Duration of individual inspection passes",
			Buckets:   prom.DefBuckets,
		})
		pr.inspectionOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "targetcheck",
			Name:      "inspection_outcomes_total",
			Help:      "Inspection outcomes by result category",
		}, []string{"outcome"})
		pr.targetCount = prom.NewGauge(prom.GaugeOpts{
			Namespace: "targetcheck",
			Name:      "targets",
			Help:      "Number of targets parsed by the most recent inspection",
		})
		pr.watchTriggers = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "targetcheck",
			Name:      "watch_triggers_total",
			Help:      "Watch-mode passes by trigger source",
		}, []string{"trigger"})
		reg.MustRegister(pr.inspectionDuration, pr.inspectionOutcome, pr.targetCount, pr.watchTriggers)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveInspectionDuration(d time.Duration) {
	if p == nil || p.inspectionDuration == nil {
		return
	}
	p.inspectionDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncInspectionOutcome(outcome OutcomeLabel) {
	if p == nil || p.inspectionOutcome == nil {
		return
	}
	p.inspectionOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetTargetCount(n int) {
	if p == nil || p.targetCount == nil {
		return
	}
	p.targetCount.Set(float64(n))
}

func (p *PrometheusRecorder) IncWatchTrigger(trigger TriggerLabel) {
	if p == nil || p.watchTriggers == nil {
		return
	}
	p.watchTriggers.WithLabelValues(string(trigger)).Inc()
}
