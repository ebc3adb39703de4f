package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hexswap/internal/core"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/screenshot"
)

// Options configures the terminal front end.
type Options struct {
	TickRate        int
	Width, Height   int // Initial terminal size
	ScreenshotDir   string
	ScreenshotScale int
	Logger          *log.Logger    // nil discards output
	Sound           func(core.SFX) // nil keeps the game silent
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one hexswap game.
type Model struct {
	game     *hexswap.Game
	opts     Options
	keys     KeyMap
	help     help.Model
	renderer *Renderer
	logger   *log.Logger
	width    int
	height   int
	pressed  core.Button // Buttons to release after the next frame
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *hexswap.Game, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.ScreenshotScale <= 0 {
		opts.ScreenshotScale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: NewRenderer(),
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The terminal reports no key-up
// events, so a button pressed here is released after the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.game.Press(b)
		m.pressed |= b
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Frame(m.opts.Sound)

	for _, b := range core.Buttons {
		if m.pressed.Contains(b) {
			m.game.Release(b)
		}
	}
	m.pressed = 0

	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the last frame as a PNG.
func (m *Model) saveScreenshot() {
	path, err := screenshot.Save(m.game.FrameBuffer(), m.opts.ScreenshotDir, m.opts.ScreenshotScale, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

func (m Model) footer() string {
	st := m.game.Stats()
	line := fmt.Sprintf("frame %d  swaps %d  matches %d  in flight %d",
		st.Frames, st.Swaps, st.Matches, len(m.game.State().Animations()))
	if m.status != "" {
		line += "  " + m.status
	}
	return statusStyle.Render(line) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// View renders the part of the framebuffer around the cursor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	rows := core.Max(1, m.height-lipgloss.Height(footer))
	cols := m.width
	if cols < 1 {
		cols = core.ScreenW
	}

	fb := m.game.FrameBuffer()
	px, py := hexswap.PixelOfIndex(m.game.State().Cursor().Active())
	fx, fy := core.NewRect(int(px), int(py), hexswap.HexWidth, hexswap.HexHeight).Center()
	view := Viewport(fb.Width(), fb.Height(), cols, rows, fx, fy)

	return m.renderer.Render(fb, view) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game *hexswap.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
