package layout

// Phase is the lifecycle state of one simulation generation.
type Phase int

const (
	// PhaseBuilding: the generation exists but has not ticked yet
	PhaseBuilding Phase = iota
	// PhaseRunning: at least one tick has run, alpha still above threshold
	PhaseRunning
	// PhaseConverged: alpha dropped below threshold, solver stopped
	PhaseConverged
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseRunning:
		return "running"
	case PhaseConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// Monitor tracks one solver's cooling and fires a callback exactly once when
// it stabilizes. It is an explicit state machine owned by the simulation
// handle; Stop detaches the callback, and there is no other registration
// mechanism.
type Monitor struct {
	phase       Phase
	onConverged func()
	stopped     bool
}

// NewMonitor creates a monitor in PhaseBuilding. onConverged may be nil.
func NewMonitor(onConverged func()) *Monitor {
	return &Monitor{phase: PhaseBuilding, onConverged: onConverged}
}

// Phase returns the current phase.
func (m *Monitor) Phase() Phase {
	return m.phase
}

// Observe inspects the solver after a tick. The first call moves
// Building→Running; the call that finds alpha below threshold moves
// Running→Converged, stops the solver and fires the callback. Observes after
// convergence or after Stop are no-ops, so the callback can never fire twice.
func (m *Monitor) Observe(s *Solver) {
	if m.stopped || m.phase == PhaseConverged {
		return
	}
	if m.phase == PhaseBuilding {
		m.phase = PhaseRunning
	}
	if !s.Converged() {
		return
	}
	m.phase = PhaseConverged
	s.Stop()
	if m.onConverged != nil {
		cb := m.onConverged
		m.onConverged = nil
		cb()
	}
}

// Stop detaches the callback and freezes the monitor. Idempotent; a pending
// convergence callback is cancelled, never fired late.
func (m *Monitor) Stop() {
	m.stopped = true
	m.onConverged = nil
}
