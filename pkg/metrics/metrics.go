package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry creates a registry with all simulation metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSimulationMetrics()
	return r
}

// RecordRebuild records a simulation rebuild and the resulting snapshot shape.
func (r *Registry) RecordRebuild(reason string, nodes, edges, dropped int) {
	if r == nil {
		return
	}
	r.RebuildsTotal.WithLabelValues(reason).Inc()
	r.LayoutNodes.Set(float64(nodes))
	r.LayoutEdges.Set(float64(edges))
	if dropped > 0 {
		r.DroppedEdgesTotal.Add(float64(dropped))
	}
}

// RecordTick records one solver step.
func (r *Registry) RecordTick() {
	if r == nil {
		return
	}
	r.TicksTotal.Inc()
}

// RecordConvergence records a generation reaching its stable layout.
func (r *Registry) RecordConvergence(steps int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.ConvergenceSteps.Observe(float64(steps))
	r.ConvergenceSeconds.Observe(elapsed.Seconds())
}
