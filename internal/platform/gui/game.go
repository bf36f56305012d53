// Package gui hosts the asteroid field in a desktop window with Ebitengine.
// Keys are polled directly, so held steering needs no emulation.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/games/asteroids"
	"github.com/vovakirdan/astro-arcade/internal/narrative"
)

// bannerMs is how long a wave briefing stays on screen.
const bannerMs = 3000

// Options configures the window host.
type Options struct {
	Config    config.AsteroidsConfig
	Runtime   core.RuntimeConfig
	Audio     asteroids.Audio
	Logger    *log.Logger
	FixedSeed bool // Reuse Runtime.Seed for every run instead of drawing a new one
}

// Game implements ebiten.Game around an asteroids.Loop.
type Game struct {
	loop      *asteroids.Loop
	inbox     *asteroids.Inbox
	narrative *narrative.Service
	logger    *log.Logger
	runtime   core.RuntimeConfig
	fixedSeed bool
	frame     core.InputFrame

	banner      string
	bannerTicks int
	debrief     []string
}

// NewGame creates a game in the menu state.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	inbox := &asteroids.Inbox{}
	world := asteroids.NewWorld(opts.Config,
		asteroids.WithAudio(opts.Audio),
		asteroids.WithListener(inbox),
		asteroids.WithLogger(logger),
	)
	loop := asteroids.NewLoop(world, rt)
	loop.SetRuntime(rt)

	return &Game{
		loop:      loop,
		inbox:     inbox,
		narrative: narrative.New(opts.Config.Narrative),
		logger:    logger,
		runtime:   rt,
		fixedSeed: opts.FixedSeed,
		frame:     core.NewInputFrame(),
	}
}

// Update polls input and advances the state machine by one tick.
func (g *Game) Update() error {
	pollInput(&g.frame)
	if g.frame.Has(core.ActionQuit) {
		g.loop.SetState(asteroids.StateMenu)
		return ebiten.Termination
	}

	switch g.loop.State() {
	case asteroids.StateMenu:
		if g.frame.Has(core.ActionConfirm) || g.frame.Has(core.ActionFire) {
			g.loop.SetState(asteroids.StateAIInteraction)
		}

	case asteroids.StateAIInteraction:
		switch {
		case g.frame.Has(core.ActionConfirm), g.frame.Has(core.ActionFire):
			g.startRun()
		case g.frame.Has(core.ActionBack):
			g.loop.SetState(asteroids.StateMenu)
		}

	case asteroids.StatePlaying:
		switch {
		case g.frame.Has(core.ActionPause):
			g.loop.SetState(asteroids.StatePaused)
		case g.frame.Has(core.ActionBack):
			g.loop.SetState(asteroids.StateMenu)
		default:
			g.step()
		}

	case asteroids.StatePaused:
		switch {
		case g.frame.Has(core.ActionPause), g.frame.Has(core.ActionConfirm):
			g.loop.SetState(asteroids.StatePlaying)
		case g.frame.Has(core.ActionRestart):
			g.startRun()
		case g.frame.Has(core.ActionBack):
			g.loop.SetState(asteroids.StateMenu)
		}

	case asteroids.StateGameOver:
		switch {
		case g.frame.Has(core.ActionConfirm), g.frame.Has(core.ActionRestart):
			g.startRun()
		case g.frame.Has(core.ActionBack):
			g.loop.SetState(asteroids.StateMenu)
		}
	}
	return nil
}

func (g *Game) startRun() {
	if !g.fixedSeed {
		g.runtime.Seed = time.Now().UnixNano()
	}
	g.loop.SetRuntime(g.runtime)
	if g.loop.State() == asteroids.StatePaused {
		// Paused resumes on entering playing; leave it first to force a reset.
		g.loop.SetState(asteroids.StateMenu)
	}
	// Cleared before the reset so the new run's notifications land in it.
	g.inbox.Reset()
	g.loop.SetState(asteroids.StatePlaying)
	g.banner, g.bannerTicks = "", 0
	g.debrief = nil
	g.logger.Debug("run started", "run", g.loop.World().RunID(), "seed", g.runtime.Seed)
}

func (g *Game) step() {
	g.loop.Tick(g.frame)

	if w := g.inbox.TakeWave(); w > 1 {
		g.banner = narrative.BriefingTitle(w)
		g.bannerTicks = g.runtime.TicksFor(bannerMs)
	} else if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}

	if g.inbox.TakeGameOver() {
		g.loop.SetState(asteroids.StateGameOver)
		hud := g.inbox.HUD()
		g.debrief = g.narrative.Debrief(hud.Score, hud.Wave, g.inbox.Accuracy())
		g.logger.Info("run finished", "score", hud.Score, "wave", hud.Wave, "accuracy", g.inbox.Accuracy())
	}
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	h := screen.Bounds().Dy()

	switch g.loop.State() {
	case asteroids.StatePlaying, asteroids.StatePaused:
		snap := g.loop.Snapshot()
		drawWorld(screen, &snap)
		drawHUD(screen, g.inbox.HUD())
		if g.loop.State() == asteroids.StatePaused {
			drawCentered(screen, h/2-glyphH, "PAUSED", "P resume   R restart   ESC menu")
		} else if g.banner != "" {
			drawCentered(screen, 4*glyphH, g.banner, g.narrative.Briefing(snap.Wave))
		}

	case asteroids.StateAIInteraction:
		drawCentered(screen, h/3,
			narrative.BriefingTitle(1),
			"",
			g.narrative.Briefing(1),
			"",
			"ENTER start   ESC back",
		)

	case asteroids.StateGameOver:
		lines := append([]string{"GAME OVER", ""}, g.debrief...)
		lines = append(lines, "", "ENTER play again   ESC menu   Q quit")
		drawCentered(screen, h/3, lines...)

	default:
		drawCentered(screen, h/3,
			"A S T R O",
			"",
			"Clear the belt. Keep the hull intact.",
			"",
			"ARROWS steer   SPACE fire   P pause",
			"ENTER launch   Q quit",
		)
	}
}

// Layout sizes the world to the window. A resize re-wraps the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w > 0 && h > 0 && (w != g.runtime.Width || h != g.runtime.Height) {
		g.runtime.Width, g.runtime.Height = w, h
		g.loop.SetRuntime(g.runtime)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the player quits.
func Run(opts Options) error {
	g := NewGame(opts)
	ebiten.SetWindowSize(int(g.runtime.Width), int(g.runtime.Height))
	ebiten.SetWindowTitle("astro")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(max(g.runtime.TickRate, 1))
	return ebiten.RunGame(g)
}
