package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.RebuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsim_rebuilds_total",
			Help: "Total number of simulation rebuilds",
		},
		[]string{"reason"},
	)

	r.TicksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "crewsim_ticks_total",
			Help: "Total number of solver steps executed",
		},
	)

	r.ConvergenceSteps = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crewsim_convergence_steps",
			Help:    "Ticks needed for a generation to converge",
			Buckets: []float64{50, 100, 200, 300, 400, 600, 1000},
		},
	)

	r.ConvergenceSeconds = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crewsim_convergence_seconds",
			Help:    "Wall-clock time from build to convergence in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	r.LayoutNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "crewsim_layout_nodes",
			Help: "Nodes in the live simulation snapshot",
		},
	)

	r.LayoutEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "crewsim_layout_edges",
			Help: "Edges in the live simulation snapshot",
		},
	)

	r.DroppedEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "crewsim_dropped_edges_total",
			Help: "Edges discarded during normalization for dangling endpoints",
		},
	)
}
