package snake

// Snake owns the body chain and the facing direction.
// The body is stored head first, tail last.
type Snake struct {
	body      []Cell
	direction Direction

	// pendingTail is the cell removed by the last MoveForward, kept until
	// RestoreTail consumes it or the next move overwrites it.
	pendingTail    Cell
	hasPendingTail bool
}

// NewSnake lays out a 3-cell snake facing right with its tail at (x, y).
func NewSnake(x, y int) *Snake {
	return &Snake{
		body: []Cell{
			{X: x + 2, Y: y}, // Head
			{X: x + 1, Y: y},
			{X: x, Y: y},
		},
		direction: DirRight,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	s.mustHaveBody()
	return s.body[0]
}

// Tail returns the last cell of the chain.
func (s *Snake) Tail() Cell {
	s.mustHaveBody()
	return s.body[len(s.body)-1]
}

// Direction returns the current facing direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of cells in the chain.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the chain, head first.
func (s *Snake) Body() []Cell {
	return append([]Cell(nil), s.body...)
}

// NextHead returns the cell the head would occupy after a move in dir,
// or in the facing direction when dir is DirNone. It does not mutate the snake.
func (s *Snake) NextHead(dir Direction) Cell {
	return s.Head().Step(s.resolve(dir))
}

// MoveForward turns to dir (unless DirNone), pushes a new head and pops the
// tail. The chain length is unchanged. The removed cell is returned and also
// kept as the pending tail for RestoreTail.
//
// Reversal is not rejected here; that is the caller's decision.
func (s *Snake) MoveForward(dir Direction) Cell {
	s.direction = s.resolve(dir)
	head := s.Head().Step(s.direction)

	removed := s.body[len(s.body)-1]
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	s.pendingTail = removed
	s.hasPendingTail = true
	return removed
}

// RestoreTail re-appends the cell removed by the most recent MoveForward.
// The pending tail is consumed; calling it twice, or before any move, panics.
func (s *Snake) RestoreTail() {
	if !s.hasPendingTail {
		panic("snake: RestoreTail without a preceding MoveForward")
	}
	s.hasPendingTail = false
	s.body = append(s.body, s.pendingTail)
}

// OverlapsTail reports whether c matches any body cell except the last one.
// The last cell vacates as the head advances, so moving into it is legal.
func (s *Snake) OverlapsTail(c Cell) bool {
	for i := 0; i < len(s.body)-1; i++ {
		if s.body[i] == c {
			return true
		}
	}
	return false
}

// Occupies reports whether c matches any body cell, tail included.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

func (s *Snake) resolve(dir Direction) Direction {
	if dir.Valid() {
		return dir
	}
	return s.direction
}

func (s *Snake) mustHaveBody() {
	if len(s.body) == 0 {
		panic("snake: empty body chain")
	}
}
