package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/crewsim/pkg/graph"
	"github.com/dd0wney/crewsim/pkg/layout"
	"github.com/dd0wney/crewsim/pkg/logging"
	"github.com/dd0wney/crewsim/pkg/metrics"
	"github.com/dd0wney/crewsim/pkg/simulation"
)

type positionOut struct {
	ID        uint64  `json:"id"`
	Label     string  `json:"label,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Candidate bool    `json:"candidate,omitempty"`
}

type resultOut struct {
	Generation  string        `json:"generation"`
	Steps       int           `json:"steps"`
	Converged   bool          `json:"converged"`
	GlobalScore float64       `json:"global_score"`
	Positions   []positionOut `json:"positions"`
}

func main() {
	crewPath := flag.String("crew", "crew.yaml", "Path to the committed crew YAML file")
	candPath := flag.String("candidate", "", "Optional candidate YAML file to inject")
	maxTicks := flag.Int("max-ticks", 2000, "Upper bound on solver ticks")
	flag.Parse()

	logger := logging.NewDefaultLogger().With(logging.Component("crewsim"))

	crewFile, err := graph.LoadFile(*crewPath)
	if err != nil {
		log.Fatalf("Failed to load crew file: %v", err)
	}
	nodes, edges := crewFile.Records()

	engine, err := simulation.NewEngine(simulation.EngineConfig{
		Force:   layout.DefaultForceConfig(),
		Logger:  logger,
		Metrics: metrics.NewRegistry(),
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	committed := graph.Committed{Nodes: nodes, Edges: edges, GlobalScore: crewFile.GlobalScore}

	var handle *simulation.Handle
	if *candPath != "" {
		handle = injectFromFile(engine, committed, *candPath, logger)
	} else {
		handle = engine.Build(committed)
	}

	// headless stand-in for the render loop: one discrete step per iteration
	for i := 0; i < *maxTicks && !handle.Converged(); i++ {
		handle.TickOnce()
	}

	out := resultOut{
		Generation:  handle.ID().String(),
		Steps:       handle.Steps(),
		Converged:   handle.Converged(),
		GlobalScore: handle.Graph().GlobalScore,
	}
	for _, n := range handle.Graph().Nodes {
		out.Positions = append(out.Positions, positionOut{
			ID:        n.ID,
			Label:     n.Label,
			X:         n.Pos.X,
			Y:         n.Pos.Y,
			Z:         n.Pos.Z,
			Candidate: n.Candidate,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

// candidateFile is the YAML description of a what-if hire.
type candidateFile struct {
	ID          uint64           `yaml:"id"`
	Label       string           `yaml:"label"`
	Edges       []graph.EdgeSpec `yaml:"edges,omitempty"`
	ImpactFlags []string         `yaml:"impact_flags,omitempty"`
}

func injectFromFile(engine *simulation.Engine, committed graph.Committed, path string, logger logging.Logger) *simulation.Handle {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read candidate file: %v", err)
	}
	var cf candidateFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		log.Fatalf("Failed to parse candidate file: %v", err)
	}

	cand := simulation.CandidateInput{
		ID:          cf.ID,
		Label:       cf.Label,
		ImpactFlags: cf.ImpactFlags,
	}
	for _, es := range cf.Edges {
		cand.PrecomputedEdges = append(cand.PrecomputedEdges, graph.Edge{
			From:      es.From,
			To:        es.To,
			Score:     es.Score,
			RiskFlags: es.RiskFlags,
		})
	}

	logger.Info("injecting candidate", logging.CandidateID(cand.ID), logging.Path(path))
	fmt.Fprintf(os.Stderr, "what-if preview for %q (%d precomputed edges)\n", cf.Label, len(cf.Edges))
	return engine.Inject(committed, cand)
}
