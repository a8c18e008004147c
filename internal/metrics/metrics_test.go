package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.DeploymentCreated("IN_PROGRESS")
	c.DeploymentCreated("PENDING")
	c.DeploymentCreated("PENDING")
	c.DeploymentResolved("SUCCESS")
	c.TriggerObserved("accepted", 120*time.Millisecond)
	c.QueueAdvanced("empty")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.created.WithLabelValues("PENDING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.created.WithLabelValues("IN_PROGRESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resolved.WithLabelValues("SUCCESS")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.triggers.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.advanced.WithLabelValues("empty")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.triggerDuration))
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.DeploymentResolved("FAILED")
	assert.Equal(t, 1.0, testutil.ToFloat64(second.resolved.WithLabelValues("FAILED")))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.DeploymentCreated("PENDING")
		c.TriggerObserved("rejected", time.Second)
	})
}
