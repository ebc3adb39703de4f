package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play hexswap in the terminal. Each character cell shows two pixels, so
only the part of the board around the cursor fits on screen.

Controls:
  Arrows/WASD  - Move the cursor or drag the selection
  Space/Z      - Select / swap
  X, Tab, Enter - Debug background colours
  Ctrl+S       - Save a PNG screenshot
  ?            - Toggle help
  Q/Esc        - Quit

Logs go to --log-file since the game owns the terminal.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	s, logger, game, player, cleanup := interactiveSetup()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	err := tui.Run(game, tui.Options{
		TickRate:        s.runtime.TickRate,
		Width:           width,
		Height:          height,
		ScreenshotDir:   config.ExpandHome(s.cfg.Screenshots.Dir),
		ScreenshotScale: s.cfg.Screenshots.Scale,
		Logger:          logger,
		Sound:           soundHandler(player),
	})
	cleanup()

	if err != nil {
		fail("running game: %v", err)
	}
}
