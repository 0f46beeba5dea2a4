package simulation

import (
	"math/rand"

	"github.com/dd0wney/crewsim/pkg/graph"
	"github.com/dd0wney/crewsim/pkg/layout"
	"github.com/dd0wney/crewsim/pkg/logging"
	"github.com/dd0wney/crewsim/pkg/metrics"
)

// CandidateInput describes a hypothetical hire to preview. PrecomputedEdges
// carry real compatibility scores from the upstream simulation service; when
// empty, the normalizer synthesizes neutral fallback edges to every committed
// member instead.
type CandidateInput struct {
	ID               uint64
	Label            string
	PrecomputedEdges []graph.Edge
	ImpactFlags      []string
}

// EngineConfig configures an Engine. Zero-value Logger and Metrics are
// replaced with a no-op logger and a nil-safe registry.
type EngineConfig struct {
	Force   layout.ForceConfig
	Logger  logging.Logger
	Metrics *metrics.Registry
	// Rand seeds initial node placement; nil uses an unseeded source.
	Rand *rand.Rand
}

// Engine builds simulation generations and guarantees at most one is live at
// a time. Every Build/Inject/Withdraw synchronously stops and detaches the
// previous generation before the new one exists, so a stale tick handler can
// never keep mutating positions the successor also references. The committed
// crew records passed in are copied during normalization and never mutated.
type Engine struct {
	force      layout.ForceConfig
	log        logging.Logger
	metrics    *metrics.Registry
	normalizer *graph.Normalizer
	current    *Handle
}

// NewEngine creates an engine after validating the force configuration.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Force.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Engine{
		force:      cfg.Force,
		log:        log,
		metrics:    cfg.Metrics,
		normalizer: graph.NewNormalizer(cfg.Rand, cfg.Force.InitialSpread),
	}, nil
}

// Build starts a fresh generation from the committed crew only.
func (e *Engine) Build(c graph.Committed) *Handle {
	g := e.normalizer.Build(c.Nodes, c.Edges)
	g.GlobalScore = c.GlobalScore
	return e.adopt(g, c, "build")
}

// Inject starts a what-if generation: the committed crew plus one transient
// candidate. The committed graph itself is never modified, so withdrawing the
// candidate is just a rebuild without it.
func (e *Engine) Inject(c graph.Committed, cand CandidateInput) *Handle {
	node := graph.Node{ID: cand.ID, Label: cand.Label}
	g := e.normalizer.BuildWithCandidate(c.Nodes, c.Edges, node, cand.PrecomputedEdges)
	g.GlobalScore = c.GlobalScore
	h := e.adopt(g, c, "inject")
	e.log.Info("candidate injected",
		logging.Generation(h.id),
		logging.CandidateID(cand.ID),
		logging.Count(len(cand.PrecomputedEdges)),
	)
	return h
}

// Withdraw discards any candidate by rebuilding from the committed crew.
func (e *Engine) Withdraw(c graph.Committed) *Handle {
	g := e.normalizer.Build(c.Nodes, c.Edges)
	g.GlobalScore = c.GlobalScore
	return e.adopt(g, c, "withdraw")
}

// Current returns the live generation, or nil before the first Build.
func (e *Engine) Current() *Handle {
	return e.current
}

// Stop halts the live generation without starting a successor. Idempotent.
func (e *Engine) Stop() {
	if e.current != nil {
		e.current.Stop()
	}
}

// adopt retires the previous generation and installs its successor.
func (e *Engine) adopt(g *graph.Graph, c graph.Committed, reason string) *Handle {
	if e.current != nil {
		e.current.Stop()
	}

	h := newHandle(g, e.force, e.log, e.metrics)
	e.current = h

	dropped := countDropped(g, c)
	e.metrics.RecordRebuild(reason, g.NodeCount(), g.EdgeCount(), dropped)
	e.log.Info("simulation rebuilt",
		logging.Generation(h.id),
		logging.String("reason", reason),
		logging.NodeCount(g.NodeCount()),
		logging.EdgeCount(g.EdgeCount()),
		logging.Bool("candidate", g.HasCandidate()),
	)
	if dropped > 0 {
		// expected during crew churn, surfaced for observability only
		e.log.Debug("dangling edges dropped",
			logging.Generation(h.id),
			logging.Count(dropped),
		)
	}
	return h
}

// countDropped reports how many committed edges were discarded for dangling
// endpoints during normalization.
func countDropped(g *graph.Graph, c graph.Committed) int {
	kept := 0
	for _, e := range g.Edges {
		if !e.Candidate {
			kept++
		}
	}
	return len(c.Edges) - kept
}
