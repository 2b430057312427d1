package snake

import (
	"reflect"
	"testing"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(2, 2)

	expected := []Cell{{4, 2}, {3, 2}, {2, 2}}
	if !reflect.DeepEqual(s.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", s.Body(), expected)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Head() != (Cell{4, 2}) || s.Tail() != (Cell{2, 2}) {
		t.Errorf("Head()/Tail() = %v/%v, expected (4,2)/(2,2)", s.Head(), s.Tail())
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir, expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Opposite(); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
			if got := tc.dir.Opposite().Opposite(); got != tc.dir {
				t.Errorf("Opposite() twice = %v, expected %v", got, tc.dir)
			}
		})
	}
}

func TestNextHeadIsPure(t *testing.T) {
	s := NewSnake(2, 2)
	before := s.Body()

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirNone, Cell{5, 2}},
		{DirRight, Cell{5, 2}},
		{DirUp, Cell{4, 1}},
		{DirDown, Cell{4, 3}},
		{DirLeft, Cell{3, 2}},
	}
	for _, tc := range tests {
		if got := s.NextHead(tc.dir); got != tc.expected {
			t.Errorf("NextHead(%v) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}

	if !reflect.DeepEqual(s.Body(), before) || s.Direction() != DirRight {
		t.Error("NextHead should not mutate the snake")
	}
}

func TestMoveForwardPreservesLength(t *testing.T) {
	s := NewSnake(5, 5)
	dirs := []Direction{DirNone, DirDown, DirNone, DirLeft, DirLeft, DirUp, DirNone, DirRight}

	for i, d := range dirs {
		s.MoveForward(d)
		if s.Len() != 3 {
			t.Fatalf("after move %d Len() = %d, expected 3", i, s.Len())
		}
	}
}

func TestMoveForwardShiftsBody(t *testing.T) {
	s := NewSnake(2, 2)

	removed := s.MoveForward(DirNone)

	expected := []Cell{{5, 2}, {4, 2}, {3, 2}}
	if !reflect.DeepEqual(s.Body(), expected) {
		t.Errorf("Body() = %v, expected %v", s.Body(), expected)
	}
	if removed != (Cell{2, 2}) {
		t.Errorf("MoveForward() removed %v, expected (2,2)", removed)
	}

	s.MoveForward(DirDown)
	if s.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", s.Direction())
	}
	if s.Head() != (Cell{5, 3}) {
		t.Errorf("Head() = %v, expected (5,3)", s.Head())
	}
}

func TestRestoreTailGrowsByRemovedCell(t *testing.T) {
	s := NewSnake(2, 2)

	removed := s.MoveForward(DirNone)
	s.RestoreTail()

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", s.Len())
	}
	if s.Tail() != removed {
		t.Errorf("Tail() = %v, expected removed cell %v", s.Tail(), removed)
	}
}

func TestRestoreTailUsesLatestMove(t *testing.T) {
	s := NewSnake(2, 2)

	s.MoveForward(DirNone) // removes (2,2)
	latest := s.MoveForward(DirNone)
	s.RestoreTail()

	if latest != (Cell{3, 2}) || s.Tail() != latest {
		t.Errorf("Tail() = %v, expected the most recently removed cell %v", s.Tail(), latest)
	}
}

func TestRestoreTailConsumesPendingTail(t *testing.T) {
	s := NewSnake(2, 2)
	s.MoveForward(DirNone)
	s.RestoreTail()

	defer func() {
		if recover() == nil {
			t.Error("second RestoreTail should panic")
		}
	}()
	s.RestoreTail()
}

func TestRestoreTailWithoutMovePanics(t *testing.T) {
	s := NewSnake(2, 2)

	defer func() {
		if recover() == nil {
			t.Error("RestoreTail before any move should panic")
		}
	}()
	s.RestoreTail()
}

func TestOverlapsTailExcludesLastCell(t *testing.T) {
	s := &Snake{
		body:      []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}},
		direction: DirUp,
	}

	body := s.Body()
	for i, c := range body[:len(body)-1] {
		if !s.OverlapsTail(c) {
			t.Errorf("OverlapsTail(%v) for segment %d = false, expected true", c, i)
		}
	}
	if s.OverlapsTail(body[len(body)-1]) {
		t.Error("OverlapsTail on the last cell should be false")
	}
	if s.OverlapsTail(Cell{9, 9}) {
		t.Error("OverlapsTail on a free cell should be false")
	}
	if !s.Occupies(body[len(body)-1]) {
		t.Error("Occupies should include the last cell")
	}
}

func TestOverlapsTailWithDuplicateTail(t *testing.T) {
	s := &Snake{
		body:      []Cell{{5, 2}, {4, 2}, {3, 2}, {3, 2}},
		direction: DirRight,
	}
	if !s.OverlapsTail(Cell{3, 2}) {
		t.Error("OverlapsTail should report a tail cell that is duplicated earlier in the chain")
	}
	if s.OverlapsTail(Cell{2, 2}) {
		t.Error("OverlapsTail should be false for a cell off the chain")
	}
}

func TestEmptyBodyPanics(t *testing.T) {
	s := &Snake{direction: DirRight}

	defer func() {
		if recover() == nil {
			t.Error("Head on an empty chain should panic")
		}
	}()
	s.Head()
}

func TestBodyReturnsCopy(t *testing.T) {
	s := NewSnake(2, 2)
	body := s.Body()
	body[0] = Cell{99, 99}

	if s.Head() == (Cell{99, 99}) {
		t.Error("Body() should return a copy")
	}
}
