package graph

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFile = `
global_score: 72.5
nodes:
  - id: 1
    label: Alice
    performance_score: 88
    completeness: 1.0
  - id: 2
    label: Bob
    performance_score: 64
    completeness: 0.5
edges:
  - from: 1
    to: 2
    score: 80
    risk_flags: [workload]
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.yaml")
	if err := os.WriteFile(path, []byte(sampleFile), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if len(f.Nodes) != 2 || len(f.Edges) != 1 {
		t.Fatalf("Unexpected shape: %d nodes %d edges", len(f.Nodes), len(f.Edges))
	}
	if f.GlobalScore != 72.5 {
		t.Errorf("GlobalScore = %f, want 72.5", f.GlobalScore)
	}

	nodes, edges := f.Records()
	if nodes[0].Label != "Alice" || nodes[0].Attrs.PerformanceScore != 88 {
		t.Errorf("Node record not converted: %+v", nodes[0])
	}
	if edges[0].Score != 80 || len(edges[0].RiskFlags) != 1 {
		t.Errorf("Edge record not converted: %+v", edges[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("nodes: {not: [valid"), 0o644)
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
