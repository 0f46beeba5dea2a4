package graph

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// NeutralScore is the placeholder compatibility used for fallback candidate
// edges when no precomputed scores are supplied. Midpoint of the 0-100 scale:
// "unknown compatibility" is treated as neither attraction nor repulsion.
const NeutralScore = 50.0

// Attributes carries the per-member assessment data attached to a node.
type Attributes struct {
	// PerformanceScore is the member's aggregate assessment result (0-100)
	PerformanceScore float64
	// Completeness is the fraction of assessments the member has finished (0-1)
	Completeness float64
}

// Node is one crew member in a layout snapshot.
type Node struct {
	ID        uint64
	Label     string
	Attrs     Attributes
	Candidate bool // true for a transient what-if hire, never persisted

	// Pos is the node's position in layout space. Assigned fresh at
	// normalization time; mutated only by the solver that owns the snapshot.
	Pos r3.Vec
}

// Edge is a pairwise compatibility relation between two nodes.
type Edge struct {
	From      uint64
	To        uint64
	Score     float64 // compatibility, clamped to [0,100]
	RiskFlags []string
	Candidate bool
}

// Graph is one immutable-topology snapshot of the crew. Each snapshot owns
// its node and edge slices outright; a rebuild produces a wholly new Graph
// rather than mutating a previous one, so no solver generation ever shares
// mutable state with another.
type Graph struct {
	Nodes       []*Node
	Edges       []*Edge
	GlobalScore float64
}

// NodeCount returns the number of nodes in the snapshot.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of edges in the snapshot.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// HasCandidate reports whether the snapshot contains a what-if candidate.
func (g *Graph) HasCandidate() bool {
	for _, n := range g.Nodes {
		if n.Candidate {
			return true
		}
	}
	return false
}

// Committed is the persisted crew graph as delivered by the upstream
// service layer: raw records plus the externally computed aggregate team-fit
// score. The engine consumes it read-only.
type Committed struct {
	Nodes       []Node
	Edges       []Edge
	GlobalScore float64
}

// ClampScore forces a compatibility score into the valid [0,100] range.
// Out-of-range input is recovered, never rejected.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
