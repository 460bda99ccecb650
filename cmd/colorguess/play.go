package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/color-guess/internal/config"
	"github.com/vovakirdan/color-guess/internal/core"
	"github.com/vovakirdan/color-guess/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  1-6          - Guess that swatch
  Arrows/hjkl  - Move the highlight
  Enter/Space  - Guess the highlighted swatch
  Mouse click  - Guess the clicked swatch
  N            - New game (score back to 0)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  colorguess play
  colorguess play --seed 42
  colorguess play --config ./my-colorguess.yaml --log-file /tmp/colorguess.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := openLogger("colorguess", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	runErr := tui.Run(gameCfg, cfg, logger)

	// Close the log before potential exit
	//nolint:errcheck // Best-effort close
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
