package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astro-arcade/internal/audio"
	"github.com/vovakirdan/astro-arcade/internal/config"
	"github.com/vovakirdan/astro-arcade/internal/core"
	"github.com/vovakirdan/astro-arcade/internal/platform/gui"
	"github.com/vovakirdan/astro-arcade/internal/platform/tui"
)

var (
	flagRenderer string
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the asteroid field.

Controls:
  Left/A, Right/D  - Turn
  Up/W             - Thrust
  Space            - Fire
  P                - Pause
  Enter            - Confirm
  Esc              - Back to menu
  R                - Restart
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  astro play
  astro play --difficulty easy
  astro play --renderer gui
  astro play --mute --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "tui", "Display: tui (terminal) or gui (window)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagRenderer != "tui" && flagRenderer != "gui" {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q (want tui or gui)\n", flagRenderer)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagMute {
		cfg.Audio.Enabled = false
	}
	sink := audio.New(cfg.Audio, logger)

	rt := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var runErr error
	switch flagRenderer {
	case "gui":
		def := core.DefaultConfig()
		rt.Width, rt.Height = def.Width, def.Height
		runErr = gui.Run(gui.Options{
			Config:    cfg,
			Runtime:   rt,
			Audio:     sink,
			Logger:    logger,
			FixedSeed: flagSeed != 0,
		})
	default:
		rt.Width, rt.Height = terminalWorld(cfg.TUI)
		runErr = tui.Run(tui.Options{
			Config:    cfg,
			Runtime:   rt,
			Audio:     sink,
			Logger:    logger,
			FixedSeed: flagSeed != 0,
		})
	}

	sink.Close()
	_ = logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalWorld sizes the world to the current terminal, less the HUD and
// footer rows. The host resizes it again on its first window-size message.
func terminalWorld(tc config.TUIConfig) (width, height float64) {
	cols, rows := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return float64(cols) * tc.CellWidth, float64(max(rows-2, 1)) * tc.CellHeight
}
