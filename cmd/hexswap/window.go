package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the board in a desktop window at full resolution.

Controls:
  Arrows/WASD  - Move the cursor or drag the selection
  Space/Z      - Select / swap
  X, Tab, Enter - Debug background colours (while held alone)
  F12          - Save a PNG screenshot
  Esc          - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window pixel scale (0 = use config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	s, logger, game, player, cleanup := interactiveSetup()

	scale := s.cfg.Scale
	if flagScale > 0 {
		scale = flagScale
	}

	err := window.New(game, window.Options{
		Scale:           scale,
		TickRate:        s.runtime.TickRate,
		ScreenshotDir:   config.ExpandHome(s.cfg.Screenshots.Dir),
		ScreenshotScale: s.cfg.Screenshots.Scale,
		Logger:          logger,
		Sound:           soundHandler(player),
	}).Run()
	cleanup()

	if err != nil && !errors.Is(err, window.ErrExit) {
		fail("running game: %v", err)
	}
}
