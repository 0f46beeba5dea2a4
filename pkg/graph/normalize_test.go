package graph

import (
	"math"
	"math/rand"
	"testing"
)

func testNormalizer() *Normalizer {
	return NewNormalizer(rand.New(rand.NewSource(42)), 100)
}

func crew() ([]Node, []Edge) {
	nodes := []Node{
		{ID: 1, Label: "Alice"},
		{ID: 2, Label: "Bob"},
		{ID: 3, Label: "Charlie"},
	}
	edges := []Edge{
		{From: 1, To: 2, Score: 80},
		{From: 2, To: 3, Score: 40},
	}
	return nodes, edges
}

func TestBuildKeepsAllNodesAndEdges(t *testing.T) {
	nodes, edges := crew()
	g := testNormalizer().Build(nodes, edges)

	if g.NodeCount() != 3 {
		t.Errorf("Expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.EdgeCount())
	}
	if g.HasCandidate() {
		t.Error("Committed-only build must not contain a candidate")
	}
}

func TestBuildDropsDanglingEdges(t *testing.T) {
	nodes, edges := crew()
	edges = append(edges,
		Edge{From: 1, To: 99, Score: 50},  // unknown target
		Edge{From: 99, To: 2, Score: 50},  // unknown source
		Edge{From: 98, To: 99, Score: 50}, // both unknown
	)

	g := testNormalizer().Build(nodes, edges)

	if g.EdgeCount() != 2 {
		t.Fatalf("Expected dangling edges to be dropped, got %d edges", g.EdgeCount())
	}
	for _, e := range g.Edges {
		if e.From == 99 || e.To == 99 || e.From == 98 {
			t.Errorf("Dangling edge %d-%d survived normalization", e.From, e.To)
		}
	}
}

func TestBuildClampsScores(t *testing.T) {
	nodes := []Node{{ID: 1}, {ID: 2}, {ID: 3}}
	edges := []Edge{
		{From: 1, To: 2, Score: 150},
		{From: 2, To: 3, Score: -20},
	}

	g := testNormalizer().Build(nodes, edges)

	for _, e := range g.Edges {
		if e.Score < 0 || e.Score > 100 {
			t.Errorf("Edge %d-%d score %f outside [0,100]", e.From, e.To, e.Score)
		}
	}
}

func TestBuildAssignsFreshPositionsInsideCube(t *testing.T) {
	nodes, edges := crew()
	nz := NewNormalizer(rand.New(rand.NewSource(7)), 50)

	g := nz.Build(nodes, edges)
	for _, n := range g.Nodes {
		if math.Abs(n.Pos.X) > 50 || math.Abs(n.Pos.Y) > 50 || math.Abs(n.Pos.Z) > 50 {
			t.Errorf("Node %d initial position %+v outside cube", n.ID, n.Pos)
		}
	}

	// A rebuild re-rolls every position; survivors do not keep their layout
	g2 := nz.Build(nodes, edges)
	same := 0
	for i := range g.Nodes {
		if g.Nodes[i].Pos == g2.Nodes[i].Pos {
			same++
		}
	}
	if same == len(g.Nodes) {
		t.Error("Rebuild reused previous positions")
	}
}

func TestBuildDuplicateIDsKeepFirst(t *testing.T) {
	nodes := []Node{
		{ID: 1, Label: "first"},
		{ID: 1, Label: "second"},
		{ID: 2},
	}

	g := testNormalizer().Build(nodes, nil)

	if g.NodeCount() != 2 {
		t.Fatalf("Expected duplicate ID to be dropped, got %d nodes", g.NodeCount())
	}
	if g.Nodes[0].Label != "first" {
		t.Errorf("Expected first occurrence to win, got %q", g.Nodes[0].Label)
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	g := testNormalizer().Build(nil, nil)
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("Expected empty snapshot, got %d nodes %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestCandidateFallbackEdges(t *testing.T) {
	nodes, edges := crew()
	g := testNormalizer().BuildWithCandidate(nodes, edges, Node{ID: 99, Label: "Dana"}, nil)

	if g.NodeCount() != 4 {
		t.Fatalf("Expected 4 nodes with candidate, got %d", g.NodeCount())
	}
	if !g.HasCandidate() {
		t.Fatal("Candidate node missing")
	}

	fallback := 0
	linked := make(map[uint64]bool)
	for _, e := range g.Edges {
		if !e.Candidate {
			continue
		}
		fallback++
		if e.From != 99 {
			t.Errorf("Fallback edge source = %d, want candidate 99", e.From)
		}
		if e.Score != NeutralScore {
			t.Errorf("Fallback edge score = %f, want neutral %f", e.Score, NeutralScore)
		}
		linked[e.To] = true
	}

	// exactly one fallback edge per committed node
	if fallback != 3 {
		t.Errorf("Expected 3 fallback edges, got %d", fallback)
	}
	for _, id := range []uint64{1, 2, 3} {
		if !linked[id] {
			t.Errorf("Candidate not linked to committed node %d", id)
		}
	}
}

func TestCandidatePrecomputedEdgesUsedVerbatim(t *testing.T) {
	nodes, edges := crew()
	cand := Node{ID: 99}
	candEdges := []Edge{
		{From: 99, To: 1, Score: 91, RiskFlags: []string{"workload"}},
		{From: 99, To: 3, Score: 12},
	}

	g := testNormalizer().BuildWithCandidate(nodes, edges, cand, candEdges)

	got := 0
	for _, e := range g.Edges {
		if !e.Candidate {
			continue
		}
		got++
		if e.To == 1 && e.Score != 91 {
			t.Errorf("Precomputed score altered: %f", e.Score)
		}
	}
	if got != 2 {
		t.Errorf("Expected 2 candidate edges, got %d", got)
	}
}

func TestCandidateEdgesWithDanglingEndpointDropped(t *testing.T) {
	nodes, edges := crew()
	candEdges := []Edge{
		{From: 99, To: 1, Score: 70},
		{From: 99, To: 1234, Score: 70}, // unknown committed member
	}

	g := testNormalizer().BuildWithCandidate(nodes, edges, Node{ID: 99}, candEdges)

	got := 0
	for _, e := range g.Edges {
		if e.Candidate {
			got++
		}
	}
	if got != 1 {
		t.Errorf("Expected 1 surviving candidate edge, got %d", got)
	}
}

func TestCandidateShadowingCommittedIDSkipped(t *testing.T) {
	nodes, edges := crew()
	g := testNormalizer().BuildWithCandidate(nodes, edges, Node{ID: 2}, nil)

	if g.NodeCount() != 3 {
		t.Fatalf("Expected colliding candidate to be skipped, got %d nodes", g.NodeCount())
	}
	if g.HasCandidate() {
		t.Error("Colliding candidate must not replace a committed member")
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{101, 100},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
