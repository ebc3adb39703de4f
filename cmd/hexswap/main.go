// hexswap is a half-hex swapping puzzle for the terminal and the desktop.
//
// Usage:
//
//	hexswap play             - Play in the terminal
//	hexswap window           - Play in a desktop window
//	hexswap bench            - Run the simulation headless and time it
//	hexswap runs             - Show recent bench runs
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set the seed recorded with the game
//	--config <path>      - Use a custom config YAML
//	--db <path>          - Set database path (default: ~/.hexswap/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for the interactive front ends
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexswap/internal/audio"
	"github.com/vovakirdan/hexswap/internal/config"
	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexswap",
	Short: "hexswap - swap half-hexagons until they match",
	Long: `hexswap is a puzzle played on a board of half-hexagons. Select a
piece, drag the selection with the direction keys and confirm to swap the
two pieces. A hexagon whose halves carry the same colours disappears.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  bench    - Run the simulation headless and time it
  runs     - Show recent bench runs

Examples:
  hexswap play
  hexswap window --fps 30
  hexswap bench --frames 10000 --seed 42
  hexswap runs`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexswap/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.hexswap/hexswap.log", "Log file for play and window")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hexswap",
		Level:           lvl,
	}), nil
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// settings are the resolved inputs shared by every command.
type settings struct {
	cfg     config.Config
	runtime core.RuntimeConfig
}

// loadSettings loads the config and applies the global flags.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return settings{}, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return settings{cfg: cfg, runtime: cfg.Runtime(seed)}, nil
}

// newGame creates a game logging through logger.
func newGame(s settings, logger *log.Logger) *hexswap.Game {
	return hexswap.New(hexswap.Params{
		Config:      s.runtime,
		Logger:      logger,
		ErrorLogger: logger.WithPrefix("hexswap/error"),
	})
}

// interactiveSetup prepares logging, the game and the audio player for the
// play and window commands. cleanup must be called on exit.
func interactiveSetup() (s settings, logger *log.Logger, game *hexswap.Game, player *audio.Player, cleanup func()) {
	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	logger, err = newLogger(logFile, flagLogLevel)
	if err != nil {
		logFile.Close()
		fail("%v", err)
	}

	game = newGame(s, logger)
	logger.Info("game started", "seed", s.runtime.Seed, "tick_rate", s.runtime.TickRate)

	if s.cfg.Audio.Enabled {
		player = audio.NewPlayer(s.cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			// Continue without sound - game still works
			logger.Warn("audio disabled", "error", err)
			player = nil
		}
	}

	cleanup = func() {
		player.Close()
		st := game.Stats()
		logger.Info("game ended", "frames", st.Frames, "swaps", st.Swaps, "matches", st.Matches)
		logFile.Close()
	}
	return s, logger, game, player, cleanup
}

// soundHandler returns the audio sink for Game.Frame, nil when silent.
func soundHandler(p *audio.Player) func(core.SFX) {
	if p == nil {
		return nil
	}
	return p.Play
}
