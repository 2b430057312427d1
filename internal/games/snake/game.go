package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game implements the Snake game state machine.
//
// A Game is owned by a single driver: HandleDirection and Update must not be
// called concurrently. Snapshot returns a copy that is safe to hand elsewhere.
type Game struct {
	rng *rand.Rand

	snake *Snake

	width  int
	height int

	food       Cell
	foodExists bool

	gameOver bool

	// waiting accumulates seconds in the current phase: time since the last
	// move while running, time since the collision while game over.
	waiting float64

	movePeriod   float64
	restartDelay float64
	origin       Cell
	initialFood  Cell

	restarts int
}

// New creates a game from a validated configuration. The seed drives food placement.
func New(cfg config.SnakeConfig, seed int64) *Game {
	g := &Game{
		rng:          rand.New(rand.NewSource(seed)),
		width:        cfg.Arena.Width,
		height:       cfg.Arena.Height,
		movePeriod:   cfg.Timing.MovePeriod,
		restartDelay: cfg.Timing.RestartDelay,
		origin:       Cell{X: cfg.Spawn.Origin.X, Y: cfg.Spawn.Origin.Y},
		initialFood:  Cell{X: cfg.Spawn.Food.X, Y: cfg.Spawn.Food.Y},
	}
	g.reset()
	return g
}

// reset puts the game back into its initial configuration.
func (g *Game) reset() {
	g.snake = NewSnake(g.origin.X, g.origin.Y)
	g.food = g.initialFood
	g.foodExists = true
	g.gameOver = false
	g.waiting = 0
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// GameOver reports whether the game is waiting for its automatic restart.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Restarts returns how many times the game has reset after a game over.
func (g *Game) Restarts() int {
	return g.restarts
}

// Apply feeds a platform action into the game. Non-directional actions are ignored.
func (g *Game) Apply(a core.Action) {
	if dir, ok := DirectionFor(a); ok {
		g.HandleDirection(dir)
	}
}

// HandleDirection steers the snake and moves it immediately, without waiting
// for the move timer. Input during game over and 180° reversals are ignored.
func (g *Game) HandleDirection(dir Direction) {
	if g.gameOver || !dir.Valid() {
		return
	}
	if dir == g.snake.Direction().Opposite() {
		return
	}
	g.advance(dir)
}

// Update advances the simulation clock by dt seconds.
func (g *Game) Update(dt float64) {
	g.waiting += dt

	if g.gameOver {
		if g.waiting > g.restartDelay {
			g.restarts++
			g.reset()
		}
		return
	}

	if !g.foodExists {
		g.spawnFood()
	}

	if g.waiting > g.movePeriod {
		g.advance(DirNone)
	}
}

// advance performs a forced move, checked against walls and the body before
// it is committed. Either way the phase timer restarts.
func (g *Game) advance(dir Direction) {
	if g.legal(g.snake.NextHead(dir)) {
		g.snake.MoveForward(dir)
		if g.foodExists && g.snake.Head() == g.food {
			g.foodExists = false
			g.snake.RestoreTail()
		}
	} else {
		g.gameOver = true
	}
	g.waiting = 0
}

// legal reports whether the head may enter c.
func (g *Game) legal(c Cell) bool {
	if g.snake.OverlapsTail(c) {
		return false
	}
	return g.inInterior(c)
}

// inInterior reports whether c lies strictly inside the wall ring.
func (g *Game) inInterior(c Cell) bool {
	return c.X > 0 && c.X < g.width-1 && c.Y > 0 && c.Y < g.height-1
}

// spawnFood places food uniformly on an interior cell the snake does not occupy.
// When the snake covers the whole interior there is nowhere to put it and food
// stays absent.
func (g *Game) spawnFood() {
	if g.interiorFull() {
		return
	}

	for {
		c := Cell{
			X: 1 + g.rng.Intn(g.width-2),
			Y: 1 + g.rng.Intn(g.height-2),
		}
		if !g.snake.Occupies(c) {
			g.food = c
			g.foodExists = true
			return
		}
	}
}

// interiorFull reports whether every interior cell is under the snake.
func (g *Game) interiorFull() bool {
	area := (g.width - 2) * (g.height - 2)
	if g.snake.Len() < area {
		return false
	}
	seen := make(map[Cell]struct{}, g.snake.Len())
	for _, c := range g.snake.body {
		if g.inInterior(c) {
			seen[c] = struct{}{}
		}
	}
	return len(seen) >= area
}
