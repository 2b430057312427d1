package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the simulation driven by the model.
type Game interface {
	Title() string
	// Apply feeds a player action into the simulation.
	Apply(a core.Action)
	// Update advances the simulation clock by dt seconds.
	Update(dt float64)
	GameOver() bool
	// Restarts reports how many automatic restarts have happened.
	Restarts() int
	// Render draws the current state into dst, each arena cell cellWidth columns wide.
	Render(dst *core.Screen, cellWidth int)
}

// Model is the Bubble Tea model running one game. It is the only owner of
// the game: key presses and ticks reach it one at a time through Update.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	cellWidth int
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	lastTick  time.Time
	gameOver  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game Game, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		cellWidth: cellWidth,
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "title", m.game.Title())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys move the snake right away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit requested")
		return m, tea.Quit
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case action.IsDirectional():
		m.game.Apply(action)
		m.observe()
	}

	return m, nil
}

// handleTick feeds the real time elapsed since the previous tick into the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.game.Update(dt)
	m.observe()

	return m, tickCmd(m.config.TickRate)
}

// observe logs game over and restart transitions.
func (m *Model) observe() {
	over := m.game.GameOver()
	if over == m.gameOver {
		return
	}
	m.gameOver = over
	if over {
		m.logger.Debug("game over")
	} else {
		m.logger.Debug("restarted", "restarts", m.game.Restarts())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, m.help.View(m.keys))

	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(helpView), 1))
	m.screen.Clear()
	m.game.Render(m.screen, m.cellWidth)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) error {
	model := NewModel(game, cfg, cellWidth, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
