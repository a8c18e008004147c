package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var triggerBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

// Collector records deployment queue activity
type Collector struct {
	created         *prometheus.CounterVec
	resolved        *prometheus.CounterVec
	triggers        *prometheus.CounterVec
	triggerDuration prometheus.Histogram
	advanced        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargodeploy",
			Name:      "deployments_created_total",
			Help:      "Deployments created, by initial status",
		}, []string{"status"}),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargodeploy",
			Name:      "deployments_resolved_total",
			Help:      "Deployments that reached a terminal status",
		}, []string{"status"}),
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargodeploy",
			Name:      "build_trigger_total",
			Help:      "Job submissions to the build service, by outcome",
		}, []string{"outcome"}),
		triggerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cargodeploy",
			Name:      "build_trigger_duration_seconds",
			Help:      "Latency of job submissions to the build service",
			Buckets:   triggerBuckets,
		}),
		advanced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cargodeploy",
			Name:      "queue_advanced_total",
			Help:      "Queue advance attempts, by outcome",
		}, []string{"outcome"}),
	}

	if reg == nil {
		return c
	}
	c.created = register(reg, c.created)
	c.resolved = register(reg, c.resolved)
	c.triggers = register(reg, c.triggers)
	c.triggerDuration = register(reg, c.triggerDuration)
	c.advanced = register(reg, c.advanced)
	return c
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T) T {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return collector
}

// DeploymentCreated counts a new deployment by the status it was admitted with
func (c *Collector) DeploymentCreated(status string) {
	if c == nil {
		return
	}
	c.created.WithLabelValues(status).Inc()
}

// DeploymentResolved counts a deployment reaching a terminal status
func (c *Collector) DeploymentResolved(status string) {
	if c == nil {
		return
	}
	c.resolved.WithLabelValues(status).Inc()
}

// TriggerObserved records one job submission
func (c *Collector) TriggerObserved(outcome string, took time.Duration) {
	if c == nil {
		return
	}
	c.triggers.WithLabelValues(outcome).Inc()
	c.triggerDuration.Observe(took.Seconds())
}

// QueueAdvanced records the outcome of promoting a queued deployment
func (c *Collector) QueueAdvanced(outcome string) {
	if c == nil {
		return
	}
	c.advanced.WithLabelValues(outcome).Inc()
}
