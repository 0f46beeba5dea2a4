package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the simulation engine. A nil *Registry is
// valid and records nothing, so library code never has to guard.
type Registry struct {
	// Simulation lifecycle
	RebuildsTotal      *prometheus.CounterVec // by reason: build / inject / withdraw
	TicksTotal         prometheus.Counter
	ConvergenceSteps   prometheus.Histogram
	ConvergenceSeconds prometheus.Histogram

	// Current snapshot shape
	LayoutNodes       prometheus.Gauge
	LayoutEdges       prometheus.Gauge
	DroppedEdgesTotal prometheus.Counter

	registry *prometheus.Registry
}

// Gatherer exposes the underlying prometheus registry for scraping/tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
