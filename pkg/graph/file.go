package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeSpec is one crew member in a YAML graph file.
type NodeSpec struct {
	ID               uint64  `yaml:"id"`
	Label            string  `yaml:"label"`
	PerformanceScore float64 `yaml:"performance_score"`
	Completeness     float64 `yaml:"completeness"`
}

// EdgeSpec is one pairwise compatibility entry in a YAML graph file.
type EdgeSpec struct {
	From      uint64   `yaml:"from"`
	To        uint64   `yaml:"to"`
	Score     float64  `yaml:"score"`
	RiskFlags []string `yaml:"risk_flags,omitempty"`
}

// File is the on-disk YAML description of a committed crew graph. It exists
// for the command-line tools; the engine itself never reads disk.
type File struct {
	Nodes       []NodeSpec `yaml:"nodes"`
	Edges       []EdgeSpec `yaml:"edges"`
	GlobalScore float64    `yaml:"global_score,omitempty"`
}

// Records converts the file into raw node/edge records ready for a
// Normalizer. Out-of-range scores survive here; clamping happens during
// normalization.
func (f *File) Records() ([]Node, []Edge) {
	nodes := make([]Node, 0, len(f.Nodes))
	for _, ns := range f.Nodes {
		nodes = append(nodes, Node{
			ID:    ns.ID,
			Label: ns.Label,
			Attrs: Attributes{
				PerformanceScore: ns.PerformanceScore,
				Completeness:     ns.Completeness,
			},
		})
	}
	edges := make([]Edge, 0, len(f.Edges))
	for _, es := range f.Edges {
		edges = append(edges, Edge{
			From:      es.From,
			To:        es.To,
			Score:     es.Score,
			RiskFlags: es.RiskFlags,
		})
	}
	return nodes, edges
}

// LoadFile reads and decodes a YAML graph file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse graph file: %w", err)
	}
	return &f, nil
}
