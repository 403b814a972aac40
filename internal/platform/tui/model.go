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

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/games/bikerush"
)

// maxFrameDelta caps the measured frame time so a stalled terminal does not
// teleport the bike.
const maxFrameDelta = 100 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options tune the terminal host.
type Options struct {
	HoldWindow time.Duration // 0 uses DefaultHoldWindow
	Logger     *log.Logger   // nil discards logs
}

// Model is the Bubble Tea model for a ride.
type Model struct {
	game      *bikerush.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	logger    *log.Logger
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *bikerush.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	game.Reset(cfg)
	logger.Info("ride started", "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", cfg.TickRate)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, sceneHeight(cfg.ScreenH)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		holds:     NewHoldTracker(opts.HoldWindow),
		logger:    logger,
		gameState: game.State(),
	}
}

// sceneHeight leaves one row for the help footer.
func sceneHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey feeds a key press into the hold tracker.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Info("ride quit", "distance", m.game.Level().Distance)
		return m, tea.Quit
	}

	if k := m.keys.Lookup(msg); k != core.KeyNone {
		m.holds.Observe(k, now)
	}
	return m, nil
}

// handleResize rescales the scene. The level keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the measured time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.config.FrameDuration()
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	delta = min(max(delta, 0), maxFrameDelta)
	m.lastTick = now

	prev := m.gameState
	result := m.game.Step(m.holds.Frame(now, delta))
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case !prev.GameOver && cur.GameOver:
		l := m.game.Level()
		m.logger.Info("level ended",
			"status", l.Status,
			"reason", l.Reason,
			"elapsed", time.Duration(l.Elapsed)*time.Millisecond,
			"distance", l.Distance,
		)
	case prev.GameOver && !cur.GameOver:
		m.holds.Reset()
		m.logger.Info("level restarted")
	case prev.Paused != cur.Paused:
		m.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteRune('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for a ride.
func Run(game *bikerush.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ride failed: %w", err)
	}
	return nil
}
