package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Glyphs used by the terminal renderer.
const (
	wallRune  = '█'
	headRune  = '█'
	bodyRune  = '▓'
	foodRune  = '●'
	shadeRune = '░'
)

const gameOverText = "GAME OVER"

// Render draws the snapshot into dst with each cell cellWidth columns wide,
// centered on the screen.
func (s Snapshot) Render(dst *core.Screen, cellWidth int) {
	cellWidth = max(cellWidth, 1)
	arena := core.NewRect(0, 0, s.Width*cellWidth, s.Height)
	arena.X = max((dst.Width()-arena.W)/2, 0)
	arena.Y = max((dst.Height()-arena.H)/2, 0)

	block := func(c Cell, r rune, color core.Color) {
		dst.DrawRect(core.NewRect(arena.X+c.X*cellWidth, arena.Y+c.Y, cellWidth, 1), r, color)
	}

	// Walls
	for x := 0; x < s.Width; x++ {
		block(Cell{X: x, Y: 0}, wallRune, core.ColorGray)
		block(Cell{X: x, Y: s.Height - 1}, wallRune, core.ColorGray)
	}
	for y := 0; y < s.Height; y++ {
		block(Cell{X: 0, Y: y}, wallRune, core.ColorGray)
		block(Cell{X: s.Width - 1, Y: y}, wallRune, core.ColorGray)
	}

	if s.FoodExists {
		block(s.Food, foodRune, core.ColorRed)
	}

	// Draw tail to head so the head stays visible on overlap
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			block(s.Body[i], headRune, core.ColorBrightGreen)
		} else {
			block(s.Body[i], bodyRune, core.ColorGreen)
		}
	}

	if s.GameOver {
		dst.Tint(arena, core.ColorRed, shadeRune)
		cx, cy := arena.Center()
		dst.DrawText(cx-len(gameOverText)/2, cy, gameOverText, core.ColorBrightRed)
	}
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen, cellWidth int) {
	g.Snapshot().Render(dst, cellWidth)
}
