package graph

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Normalizer builds layout-ready graph snapshots from raw node/edge records.
// Edges referencing unknown node IDs are dropped silently: upstream data may
// mention members not yet part of the current snapshot (late joins, recent
// departures), and a partial layout is always preferable to a failed one.
type Normalizer struct {
	rng *rand.Rand
	// spread is the half-extent of the cube initial positions are drawn from
	spread float64
}

// NewNormalizer creates a Normalizer drawing initial positions from a cube of
// half-extent spread. A nil rng falls back to an unseeded source; tests pass
// a seeded one for reproducible layouts.
func NewNormalizer(rng *rand.Rand, spread float64) *Normalizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if spread <= 0 {
		spread = 100
	}
	return &Normalizer{rng: rng, spread: spread}
}

// Build constructs a snapshot from committed nodes and edges only.
func (nz *Normalizer) Build(nodes []Node, edges []Edge) *Graph {
	return nz.build(nodes, edges, nil, nil)
}

// BuildWithCandidate constructs a snapshot augmented with one transient
// candidate node. If candEdges is empty, a fallback edge from the candidate
// to every committed node is synthesized at NeutralScore, so an unscored
// candidate still participates in the layout instead of drifting free.
func (nz *Normalizer) BuildWithCandidate(nodes []Node, edges []Edge, cand Node, candEdges []Edge) *Graph {
	return nz.build(nodes, edges, &cand, candEdges)
}

func (nz *Normalizer) build(nodes []Node, edges []Edge, cand *Node, candEdges []Edge) *Graph {
	g := &Graph{
		Nodes: make([]*Node, 0, len(nodes)+1),
		Edges: make([]*Edge, 0, len(edges)+len(candEdges)),
	}

	byID := make(map[uint64]*Node, len(nodes)+1)
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			// IDs are unique within one snapshot; keep the first occurrence
			continue
		}
		node := n
		node.Candidate = false
		node.Pos = nz.randomPos()
		g.Nodes = append(g.Nodes, &node)
		byID[node.ID] = &node
	}

	committed := len(g.Nodes)

	if cand != nil {
		if _, dup := byID[cand.ID]; dup {
			// a candidate cannot shadow a committed member
			cand = nil
		} else {
			node := *cand
			node.Candidate = true
			node.Pos = nz.randomPos()
			g.Nodes = append(g.Nodes, &node)
			byID[node.ID] = &node
		}
	}

	for _, e := range edges {
		edge := e
		edge.Candidate = false
		nz.appendEdge(g, byID, &edge)
	}

	switch {
	case cand == nil:
		// no candidate, nothing to synthesize
	case len(candEdges) > 0:
		// precomputed scores from the simulation service, used verbatim
		for _, e := range candEdges {
			edge := e
			edge.Candidate = true
			nz.appendEdge(g, byID, &edge)
		}
	default:
		// No scores supplied: link the candidate to every committed node at
		// the neutral placeholder so the layout still has something to pull on.
		for _, n := range g.Nodes[:committed] {
			g.Edges = append(g.Edges, &Edge{
				From:      cand.ID,
				To:        n.ID,
				Score:     NeutralScore,
				Candidate: true,
			})
		}
	}

	return g
}

// appendEdge resolves both endpoints and appends the edge, clamping its
// score. Returns false when an endpoint is missing and the edge was dropped.
func (nz *Normalizer) appendEdge(g *Graph, byID map[uint64]*Node, e *Edge) bool {
	if _, ok := byID[e.From]; !ok {
		return false
	}
	if _, ok := byID[e.To]; !ok {
		return false
	}
	e.Score = ClampScore(e.Score)
	g.Edges = append(g.Edges, e)
	return true
}

func (nz *Normalizer) randomPos() r3.Vec {
	return r3.Vec{
		X: (nz.rng.Float64()*2 - 1) * nz.spread,
		Y: (nz.rng.Float64()*2 - 1) * nz.spread,
		Z: (nz.rng.Float64()*2 - 1) * nz.spread,
	}
}
