package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of everything a renderer may draw.
// It shares no memory with the Game, so it may be used while the game keeps running.
type Snapshot struct {
	Body       []Cell // Head first
	Dir        Direction
	Food       Cell
	FoodExists bool
	Width      int
	Height     int
	GameOver   bool
}

// Head returns the first body cell.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// State returns the state name.
func (s Snapshot) State() GameStateType {
	if s.GameOver {
		return StateGameOver
	}
	return StateRunning
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:       g.snake.Body(),
		Dir:        g.snake.Direction(),
		Food:       g.food,
		FoodExists: g.foodExists,
		Width:      g.width,
		Height:     g.height,
		GameOver:   g.gameOver,
	}
}
