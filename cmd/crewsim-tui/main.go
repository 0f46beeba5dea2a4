package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/crewsim/pkg/graph"
	"github.com/dd0wney/crewsim/pkg/layout"
	"github.com/dd0wney/crewsim/pkg/logging"
	"github.com/dd0wney/crewsim/pkg/simulation"
)

const frameInterval = time.Second / 30

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			MarginLeft(2)

	convergedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00")).
			Bold(true).
			MarginLeft(2)

	canvasStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			MarginLeft(2)

	memberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF")).Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(2)
)

type keyMap struct {
	Inject   key.Binding
	Withdraw key.Binding
	Rebuild  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inject, k.Withdraw, k.Rebuild, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Inject, k.Withdraw, k.Rebuild, k.Quit}}
}

var keys = keyMap{
	Inject: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inject candidate"),
	),
	Withdraw: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "withdraw candidate"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rebuild layout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// frameMsg is one animation frame from the external clock. Each frame
// advances the simulation by exactly one discrete step, whatever the cadence.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	engine    *simulation.Engine
	committed graph.Committed
	candidate simulation.CandidateInput
	handle    *simulation.Handle
	injected  bool

	width  int
	height int
	help   help.Model
}

func (m model) Init() tea.Cmd {
	return frameTick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.handle.TickOnce()
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.engine.Stop()
			return m, tea.Quit
		case key.Matches(msg, keys.Inject):
			if !m.injected {
				m.handle = m.engine.Inject(m.committed, m.candidate)
				m.injected = true
			}
		case key.Matches(msg, keys.Withdraw):
			if m.injected {
				m.handle = m.engine.Withdraw(m.committed)
				m.injected = false
			}
		case key.Matches(msg, keys.Rebuild):
			if m.injected {
				m.handle = m.engine.Inject(m.committed, m.candidate)
			} else {
				m.handle = m.engine.Build(m.committed)
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	title := titleStyle.Render("crewsim — team compatibility layout")

	status := fmt.Sprintf("phase: %s   alpha: %.4f   steps: %d   nodes: %d   edges: %d",
		m.handle.Phase(), m.handle.Alpha(), m.handle.Steps(),
		m.handle.Graph().NodeCount(), m.handle.Graph().EdgeCount())
	line := statusStyle.Render(status)
	if m.handle.Converged() {
		line = convergedStyle.Render(status + "   ✓ stable")
	}

	return title + "\n" + line + "\n" +
		canvasStyle.Render(m.renderCanvas()) + "\n" +
		helpStyle.Render(m.help.View(keys)) + "\n"
}

// renderCanvas projects the 3D layout onto the terminal plane. Depth is
// encoded by glyph weight: nodes nearer the viewer render heavier.
func (m model) renderCanvas() string {
	w := m.width - 8
	h := m.height - 8
	if w < 20 {
		w = 20
	}
	if h < 10 {
		h = 10
	}

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	nodes := m.handle.Graph().Nodes
	if len(nodes) == 0 {
		return renderGrid(grid)
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, n := range nodes {
		minX = math.Min(minX, n.Pos.X)
		maxX = math.Max(maxX, n.Pos.X)
		minY = math.Min(minY, n.Pos.Y)
		maxY = math.Max(maxY, n.Pos.Y)
	}
	rangeX := math.Max(maxX-minX, 1)
	rangeY := math.Max(maxY-minY, 1)

	for _, n := range nodes {
		x := int((n.Pos.X - minX) / rangeX * float64(w-1))
		y := int((n.Pos.Y - minY) / rangeY * float64(h-1))

		glyph := "·"
		switch {
		case n.Pos.Z > 30:
			glyph = "●"
		case n.Pos.Z > -30:
			glyph = "o"
		}
		if n.Candidate {
			grid[y][x] = candidateStyle.Render(glyph)
		} else {
			grid[y][x] = memberStyle.Render(glyph)
		}
	}

	return renderGrid(grid)
}

func renderGrid(grid [][]string) string {
	out := ""
	for y, row := range grid {
		for _, cell := range row {
			out += cell
		}
		if y < len(grid)-1 {
			out += "\n"
		}
	}
	return out
}

func main() {
	crewPath := flag.String("crew", "crew.yaml", "Path to the committed crew YAML file")
	candID := flag.Uint64("candidate-id", 9999, "Node ID used for the what-if candidate")
	flag.Parse()

	crewFile, err := graph.LoadFile(*crewPath)
	if err != nil {
		log.Fatalf("Failed to load crew file: %v", err)
	}
	nodes, edges := crewFile.Records()

	engine, err := simulation.NewEngine(simulation.EngineConfig{
		Force:  layout.DefaultForceConfig(),
		Logger: logging.NewNopLogger(), // keep the alternate screen clean
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	committed := graph.Committed{Nodes: nodes, Edges: edges, GlobalScore: crewFile.GlobalScore}
	m := model{
		engine:    engine,
		committed: committed,
		candidate: simulation.CandidateInput{ID: *candID, Label: "what-if hire"},
		handle:    engine.Build(committed),
		help:      help.New(),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
