package simulation

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dd0wney/crewsim/pkg/graph"
	"github.com/dd0wney/crewsim/pkg/layout"
	"github.com/dd0wney/crewsim/pkg/logging"
	"github.com/dd0wney/crewsim/pkg/metrics"
)

// Handle is one live simulation generation: a graph snapshot plus the solver
// and convergence monitor that own it. A handle is created by the Engine and
// is superseded, never reused, when the committed crew changes or a candidate
// is injected or withdrawn.
//
// Handles are frame-driven and single-threaded: the external render loop
// calls TickOnce once per animation frame, and each call advances exactly one
// discrete step regardless of frame cadence. Callers serialize; the handle
// adds no locking.
type Handle struct {
	id      uuid.UUID
	graph   *graph.Graph
	solver  *layout.Solver
	monitor *layout.Monitor
	steps   int
	created time.Time
	stopped bool

	log     logging.Logger
	metrics *metrics.Registry
}

func newHandle(g *graph.Graph, cfg layout.ForceConfig, log logging.Logger, reg *metrics.Registry) *Handle {
	h := &Handle{
		id:      uuid.New(),
		graph:   g,
		solver:  layout.NewSolver(g, cfg),
		created: time.Now(),
		log:     log,
		metrics: reg,
	}
	h.monitor = layout.NewMonitor(h.converged)
	return h
}

func (h *Handle) converged() {
	elapsed := time.Since(h.created)
	h.metrics.RecordConvergence(h.steps, elapsed)
	h.log.Info("layout converged",
		logging.Generation(h.id),
		logging.Steps(h.steps),
		logging.Duration("elapsed", elapsed),
	)
}

// ID returns the generation identifier, used to correlate log lines and
// metrics across rebuilds.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Graph returns the snapshot this generation lays out. Callers must treat it
// as read-only.
func (h *Handle) Graph() *graph.Graph {
	return h.graph
}

// TickOnce advances the simulation by one discrete step. No-op once the
// handle is stopped or converged, so a render loop can keep calling it
// unconditionally.
func (h *Handle) TickOnce() {
	if h.stopped {
		return
	}
	if !h.solver.Converged() {
		h.solver.Step()
		h.steps++
		h.metrics.RecordTick()
	}
	h.monitor.Observe(h.solver)
}

// Positions returns a fresh copy of every node's current position, keyed by
// node ID. The copy never aliases solver state, so the renderer may hold it
// across frames.
func (h *Handle) Positions() map[uint64]r3.Vec {
	out := make(map[uint64]r3.Vec, len(h.graph.Nodes))
	for _, n := range h.graph.Nodes {
		out[n.ID] = n.Pos
	}
	return out
}

// Alpha returns the solver's current temperature.
func (h *Handle) Alpha() float64 {
	return h.solver.Alpha()
}

// Phase returns the generation's lifecycle phase.
func (h *Handle) Phase() layout.Phase {
	return h.monitor.Phase()
}

// Converged reports whether the layout has stabilized. A zero-node snapshot
// is converged from construction.
func (h *Handle) Converged() bool {
	return h.solver.Converged()
}

// Steps returns how many ticks this generation has run.
func (h *Handle) Steps() int {
	return h.steps
}

// Stop halts integration and detaches the convergence callback. Idempotent;
// a stopped handle never mutates its snapshot again, which is what lets the
// engine discard it while a successor generation is live.
func (h *Handle) Stop() {
	if h.stopped {
		return
	}
	h.stopped = true
	h.monitor.Stop()
	h.solver.Stop()
}
