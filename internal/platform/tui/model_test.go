package tui

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// recordingGame captures what the model feeds into the simulation.
type recordingGame struct {
	actions  []core.Action
	dts      []float64
	over     bool
	restarts int
}

func (g *recordingGame) Title() string { return "Recorder" }
func (g *recordingGame) Apply(a core.Action) { g.actions = append(g.actions, a) }
func (g *recordingGame) Update(dt float64) { g.dts = append(g.dts, dt) }
func (g *recordingGame) GameOver() bool { return g.over }
func (g *recordingGame) Restarts() int { return g.restarts }
func (g *recordingGame) Render(dst *core.Screen, _ int) { dst.DrawText(0, 0, "recorder", core.ColorDefault) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestTickFeedsElapsedTime(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), 2, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg(start.Add(250*time.Millisecond)))
	_, _ = update(t, m, TickMsg(start.Add(300*time.Millisecond)))

	expected := []float64{0, 0.25, 0.05}
	if len(game.dts) != len(expected) {
		t.Fatalf("Update called %d times, expected %d", len(game.dts), len(expected))
	}
	for i, dt := range expected {
		if math.Abs(game.dts[i]-dt) > 1e-9 {
			t.Errorf("dt[%d] = %v, expected %v", i, game.dts[i], dt)
		}
	}
}

func TestKeysReachGame(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), 2, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, runeKey('?'))
	_, _ = update(t, m, runeKey('a'))

	expected := []core.Action{core.ActionDown, core.ActionLeft}
	if len(game.actions) != len(expected) {
		t.Fatalf("actions = %v, expected %v", game.actions, expected)
	}
	for i, a := range expected {
		if game.actions[i] != a {
			t.Errorf("actions[%d] = %s, expected %s", i, game.actions[i], a)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), 2, nil)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? again should collapse the help")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), 2, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestObserveTracksGameOver(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), 2, nil)

	game.over = true
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.gameOver {
		t.Error("model should notice game over")
	}

	game.over = false
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.gameOver {
		t.Error("model should notice the restart")
	}
}

func TestObserveLogsRestartCount(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	game := &recordingGame{}
	m := NewModel(game, testConfig(), 2, logger)

	game.over = true
	m, _ = update(t, m, TickMsg(time.Now()))
	game.over = false
	game.restarts = 1
	_, _ = update(t, m, TickMsg(time.Now()))

	out := buf.String()
	if !strings.Contains(out, "game over") {
		t.Errorf("log %q should record the game over", out)
	}
	if !strings.Contains(out, "restarts=1") {
		t.Errorf("log %q should carry the restart count", out)
	}
}

func TestViewRendersGameAndHelp(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), 2, nil)

	view := m.View()
	if !strings.Contains(view, "recorder") {
		t.Error("View() should contain the game rendering")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the key help")
	}
}

func TestWindowResize(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), 2, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})
	if m.config.ScreenW != 50 || m.config.ScreenH != 30 {
		t.Errorf("config = %dx%d, expected 50x30", m.config.ScreenW, m.config.ScreenH)
	}

	m.View()
	if m.screen.Width() != 50 {
		t.Errorf("screen width = %d, expected 50", m.screen.Width())
	}
}

func TestModelDrivesSnake(t *testing.T) {
	game := snake.New(config.DefaultSnakeConfig(), 1)
	m := NewModel(game, testConfig(), 2, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if head := game.Snapshot().Head(); head != (snake.Cell{X: 4, Y: 3}) {
		t.Fatalf("Head = %v after down key, expected (4,3)", head)
	}

	start := time.Now()
	m, _ = update(t, m, TickMsg(start))
	_, _ = update(t, m, TickMsg(start.Add(150*time.Millisecond)))
	if head := game.Snapshot().Head(); head != (snake.Cell{X: 4, Y: 4}) {
		t.Errorf("Head = %v after a move period, expected (4,4)", head)
	}
}
