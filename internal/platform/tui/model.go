package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
	"github.com/vovakirdan/astro-arcade/internal/narrative"
)

// footerRows is the number of terminal rows below the playfield.
const footerRows = 1

// bannerMs is how long a wave briefing stays on screen.
const bannerMs = 3000

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)
)

// Options configures the terminal host.
type Options struct {
	Config    config.AsteroidsConfig
	Runtime   core.RuntimeConfig
	Audio     asteroids.Audio
	Logger    *log.Logger
	FixedSeed bool // Reuse Runtime.Seed for every run instead of drawing a new one
}

// Model is the Bubble Tea model hosting one asteroid field.
type Model struct {
	loop      *asteroids.Loop
	events    *asteroids.Inbox
	narrative *narrative.Service
	renderer  *Renderer
	held      *HeldKeys
	pressed   core.InputFrame // Edge actions since the previous tick
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	clock     func() time.Time

	runtime   core.RuntimeConfig
	fixedSeed bool
	width     int
	height    int
	tickGen   int

	banner      string
	bannerTicks int
	debrief     []string
	quitting    bool
}

// NewModel creates a model in the menu state.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ev := &asteroids.Inbox{}
	world := asteroids.NewWorld(opts.Config,
		asteroids.WithAudio(opts.Audio),
		asteroids.WithListener(ev),
		asteroids.WithLogger(logger),
	)

	tc := opts.Config.TUI
	cols := int(rt.Width / max(tc.CellWidth, 1))
	rows := int(rt.Height/max(tc.CellHeight, 1)) + hudRows
	renderer := NewRenderer(cols, rows, tc.CellWidth, tc.CellHeight)
	rt.Width, rt.Height = renderer.WorldSize()
	loop := asteroids.NewLoop(world, rt)
	loop.SetRuntime(rt)

	return Model{
		loop:      loop,
		events:    ev,
		narrative: narrative.New(opts.Config.Narrative),
		renderer:  renderer,
		held:      NewHeldKeys(time.Duration(tc.KeyHoldMs) * time.Millisecond),
		pressed:   core.NewInputFrame(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		clock:     time.Now,
		runtime:   rt,
		fixedSeed: opts.FixedSeed,
		width:     cols,
		height:    rows + footerRows,
	}
}

// Init sets the window title. The menu does not tick.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("astro")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey routes a key press through the UI state machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.loop.SetState(asteroids.StateMenu)
		return m, tea.Quit
	}

	switch m.loop.State() {
	case asteroids.StateMenu:
		if action == core.ActionConfirm || action == core.ActionFire {
			m.loop.SetState(asteroids.StateAIInteraction)
		}

	case asteroids.StateAIInteraction:
		switch action {
		case core.ActionConfirm, core.ActionFire:
			return m.startRun()
		case core.ActionBack:
			m.loop.SetState(asteroids.StateMenu)
		}

	case asteroids.StatePlaying:
		switch {
		case action.IsHeld():
			m.held.Press(action, m.clock())
		case action == core.ActionFire:
			m.pressed.Press(action)
		case action == core.ActionPause:
			m.held.Release()
			m.loop.SetState(asteroids.StatePaused)
		case action == core.ActionBack:
			m.held.Release()
			m.loop.SetState(asteroids.StateMenu)
		}

	case asteroids.StatePaused:
		switch action {
		case core.ActionPause, core.ActionConfirm:
			m.loop.SetState(asteroids.StatePlaying)
			return m.restartTicks()
		case core.ActionRestart:
			return m.startRun()
		case core.ActionBack:
			m.loop.SetState(asteroids.StateMenu)
		}

	case asteroids.StateGameOver:
		switch action {
		case core.ActionConfirm, core.ActionRestart:
			return m.startRun()
		case core.ActionBack:
			m.loop.SetState(asteroids.StateMenu)
		}
	}

	return m, nil
}

// startRun begins a fresh run and its tick chain.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if !m.fixedSeed {
		m.runtime.Seed = m.clock().UnixNano()
	}
	m.loop.SetRuntime(m.runtime)
	if m.loop.State() == asteroids.StatePaused {
		// Paused resumes on entering playing; leave it first to force a reset.
		m.loop.SetState(asteroids.StateMenu)
	}
	// Cleared before the reset so the new run's notifications land in it.
	m.events.Reset()
	m.loop.SetState(asteroids.StatePlaying)

	m.held.Release()
	m.pressed.ClearPressed()
	m.banner, m.bannerTicks = "", 0
	m.debrief = nil
	m.logger.Debug("run started", "run", m.loop.World().RunID(), "seed", m.runtime.Seed)
	return m.restartTicks()
}

// restartTicks abandons any pending tick chain and starts a new one.
func (m Model) restartTicks() (tea.Model, tea.Cmd) {
	m.tickGen++
	return m, tickCmd(m.runtime.TickRate, m.tickGen)
}

// handleResize fits the playfield to the terminal and resizes the world.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.renderer.Resize(msg.Width, msg.Height-footerRows)
	m.runtime.Width, m.runtime.Height = m.renderer.WorldSize()
	m.loop.SetRuntime(m.runtime)
	return m, nil
}

// handleTick advances the simulation one step while playing.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.loop.State() != asteroids.StatePlaying {
		return m, nil
	}

	frame := m.pressed.Clone()
	m.held.Fill(&frame, msg.Time)
	more := m.loop.Tick(frame)
	m.pressed.ClearPressed()

	if w := m.events.TakeWave(); w > 1 {
		m.banner = narrative.BriefingTitle(w)
		if b := m.narrative.Briefing(w); b != "" {
			m.banner += ": " + b
		}
		m.bannerTicks = m.runtime.TicksFor(bannerMs)
	} else if m.bannerTicks > 0 {
		m.bannerTicks--
		if m.bannerTicks == 0 {
			m.banner = ""
		}
	}

	if m.events.TakeGameOver() {
		m.finishRun()
		return m, nil
	}
	if !more {
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.tickGen)
}

// finishRun moves to the game-over screen and prepares the debrief.
func (m *Model) finishRun() {
	m.loop.SetState(asteroids.StateGameOver)
	m.held.Release()
	m.banner, m.bannerTicks = "", 0

	hud := m.events.HUD()
	m.debrief = m.narrative.Debrief(hud.Score, hud.Wave, m.events.Accuracy())
	m.logger.Info("run finished", "score", hud.Score, "wave", hud.Wave, "accuracy", m.events.Accuracy())
}

// saveScreenshot writes the last drawn playfield to a text file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".astro", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("astro_%s.txt", m.clock().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.loop.State() {
	case asteroids.StatePlaying:
		snap := m.loop.Snapshot()
		return RenderScreen(m.renderer.Draw(&snap, m.events.HUD(), m.banner)) + "\n" + m.help.View(m.keys)

	case asteroids.StatePaused:
		snap := m.loop.Snapshot()
		screen := m.renderer.Draw(&snap, m.events.HUD(), "PAUSED  p resume  r restart  esc menu")
		return RenderScreen(screen) + "\n" + m.help.View(m.keys)

	case asteroids.StateAIInteraction:
		return m.place(m.briefingView())

	case asteroids.StateGameOver:
		return m.place(m.gameOverView())

	default:
		return m.place(m.menuView())
	}
}

func (m Model) menuView() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("A S T R O"),
		"",
		textStyle.Render("Clear the belt. Keep the hull intact."),
		"",
		hintStyle.Render("enter launch  ·  q quit"),
	)
	return lipgloss.JoinVertical(lipgloss.Center, boxStyle.Render(body), "", m.help.View(m.keys))
}

func (m Model) briefingView() string {
	text := m.narrative.Briefing(1)
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(narrative.BriefingTitle(1)),
		"",
		textStyle.Width(min(48, max(m.width-10, 20))).Render(text),
		"",
		hintStyle.Render("enter start  ·  esc back"),
	)
	return boxStyle.Render(body)
}

func (m Model) gameOverView() string {
	lines := make([]string, 0, len(m.debrief))
	for _, l := range m.debrief {
		lines = append(lines, textStyle.Render(l))
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		"",
		strings.Join(lines, "\n"),
		"",
		hintStyle.Render("enter play again  ·  esc menu  ·  q quit"),
	)
	return boxStyle.Render(body)
}

// place centers content in the terminal.
func (m Model) place(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
