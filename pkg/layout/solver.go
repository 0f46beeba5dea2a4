package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/dd0wney/crewsim/pkg/graph"
)

// distanceEpsilon floors squared distances so coincident nodes cannot
// produce unbounded repulsion.
const distanceEpsilon = 1e-6

// spring is one edge resolved to node indices plus its target rest length.
type spring struct {
	a, b   int
	target float64
}

// Solver runs the force simulation for exactly one graph snapshot. All three
// axes are computed symmetrically in a single pass: per tick, every node
// accumulates pairwise repulsion, per-edge spring correction toward the
// score-derived target distance, and a soft centering pull, all scaled by the
// decaying alpha; velocities are then damped and integrated (explicit Euler),
// and a minimum-separation pass resolves residual overlap.
//
// A Solver advances only through Step, one discrete step per call, and never
// on its own; it is not safe for concurrent use.
type Solver struct {
	cfg     ForceConfig
	nodes   []*graph.Node
	vel     []r3.Vec
	springs []spring
	alpha   float64
	stopped bool
}

// NewSolver builds a solver over the snapshot's nodes and edges. The solver
// mutates node positions in place; the snapshot must not be shared with
// another live solver. A zero-node snapshot yields a solver that is already
// converged.
func NewSolver(g *graph.Graph, cfg ForceConfig) *Solver {
	s := &Solver{
		cfg:   cfg,
		nodes: g.Nodes,
		vel:   make([]r3.Vec, len(g.Nodes)),
		alpha: cfg.AlphaInit,
	}

	index := make(map[uint64]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}

	s.springs = make([]spring, 0, len(g.Edges))
	for _, e := range g.Edges {
		a, okA := index[e.From]
		b, okB := index[e.To]
		if !okA || !okB || a == b {
			continue
		}
		s.springs = append(s.springs, spring{a: a, b: b, target: cfg.DistanceForScore(e.Score)})
	}

	if len(s.nodes) == 0 {
		s.alpha = 0
	}
	return s
}

// Alpha returns the current simulation temperature.
func (s *Solver) Alpha() float64 {
	return s.alpha
}

// Converged reports whether alpha has decayed below the stop threshold.
func (s *Solver) Converged() bool {
	return s.alpha < s.cfg.AlphaMin
}

// Stop halts integration permanently. Idempotent; a stopped solver treats
// Step as a no-op.
func (s *Solver) Stop() {
	s.stopped = true
}

// Stopped reports whether Stop has been called.
func (s *Solver) Stopped() bool {
	return s.stopped
}

// Step advances the simulation by one discrete step. Calls on a stopped or
// converged solver do nothing, so an external frame loop may keep ticking
// without guarding.
func (s *Solver) Step() {
	if s.stopped || s.Converged() {
		return
	}

	s.applyCharge()
	s.applySprings()
	s.applyCentering()
	s.integrate()
	s.resolveCollisions()

	s.alpha *= 1 - s.cfg.AlphaDecay
}

// applyCharge adds inverse-square pairwise repulsion, equal and opposite on
// each pair.
func (s *Solver) applyCharge() {
	k := s.cfg.ChargeStrength * s.alpha
	for i := range s.nodes {
		for j := i + 1; j < len(s.nodes); j++ {
			d := r3.Sub(s.nodes[j].Pos, s.nodes[i].Pos)
			d2 := math.Max(r3.Norm2(d), distanceEpsilon)
			push := r3.Scale(k/d2, d)
			s.vel[j] = r3.Add(s.vel[j], push)
			s.vel[i] = r3.Sub(s.vel[i], push)
		}
	}
}

// applySprings pulls each edge's endpoints toward the score-derived target
// length, using the full 3D separation and splitting the correction evenly.
func (s *Solver) applySprings() {
	k := s.cfg.LinkStrength * s.alpha
	for _, sp := range s.springs {
		d := r3.Sub(s.nodes[sp.b].Pos, s.nodes[sp.a].Pos)
		dist := math.Max(r3.Norm(d), math.Sqrt(distanceEpsilon))
		// positive when stretched past target, negative when compressed
		correction := k * (dist - sp.target) / dist
		pull := r3.Scale(correction*0.5, d)
		s.vel[sp.a] = r3.Add(s.vel[sp.a], pull)
		s.vel[sp.b] = r3.Sub(s.vel[sp.b], pull)
	}
}

// applyCentering softly pulls every node toward the origin so the layout
// neither drifts off nor flies apart.
func (s *Solver) applyCentering() {
	k := s.cfg.CenteringStrength * s.alpha
	for i, n := range s.nodes {
		s.vel[i] = r3.Sub(s.vel[i], r3.Scale(k, n.Pos))
	}
}

// integrate damps velocities and advances positions by one Euler step.
func (s *Solver) integrate() {
	for i, n := range s.nodes {
		s.vel[i] = r3.Scale(s.cfg.VelocityDecay, s.vel[i])
		n.Pos = r3.Add(n.Pos, s.vel[i])
	}
}

// resolveCollisions displaces overlapping pairs directly in position space
// until they sit at least two collide radii apart.
func (s *Solver) resolveCollisions() {
	minSep := 2 * s.cfg.CollideRadius
	if minSep <= 0 {
		return
	}
	for i := range s.nodes {
		for j := i + 1; j < len(s.nodes); j++ {
			d := r3.Sub(s.nodes[j].Pos, s.nodes[i].Pos)
			dist := r3.Norm(d)
			if dist >= minSep {
				continue
			}
			if dist < math.Sqrt(distanceEpsilon) {
				// coincident nodes: separate along a fixed axis
				d = r3.Vec{X: 1}
				dist = 1
			}
			shift := r3.Scale((minSep-dist)/dist*0.5, d)
			s.nodes[j].Pos = r3.Add(s.nodes[j].Pos, shift)
			s.nodes[i].Pos = r3.Sub(s.nodes[i].Pos, shift)
		}
	}
}
