// Package snake implements the snake body and its movement rules
package snake

import (
	"github.com/lixenwraith/vi-snake/grid"
)

// Snake is an ordered body with the head at index 0
// Direction changes are queued as pending and committed by Move
type Snake struct {
	body          []grid.Cell
	direction     grid.Direction // committed by the last Move
	nextDirection grid.Direction // applied by the next Move
	growing       bool
}

// New creates a snake of the given length with its head at head, facing dir
// The body trails behind the head, opposite to dir
func New(head grid.Cell, length int, dir grid.Direction) *Snake {
	if length < 1 {
		length = 1
	}

	body := make([]grid.Cell, 0, length+8)
	back := dir.Opposite()
	c := head
	for i := 0; i < length; i++ {
		body = append(body, c)
		c = c.Add(back)
	}

	return &Snake{
		body:          body,
		direction:     dir,
		nextDirection: dir,
	}
}

// FromBody creates a snake from an explicit body, head first, moving in dir
func FromBody(body []grid.Cell, dir grid.Direction) *Snake {
	b := make([]grid.Cell, len(body), len(body)+8)
	copy(b, body)
	return &Snake{
		body:          b,
		direction:     dir,
		nextDirection: dir,
	}
}

// Move commits the pending direction and advances the head by one cell
// The tail is removed unless a grow was requested since the last move
func (s *Snake) Move() {
	s.direction = s.nextDirection
	head := s.body[0].Add(s.direction)

	s.body = append(s.body, grid.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// ChangeDirection sets the pending direction for the next Move
// A reversal of the committed direction is ignored; the latest accepted call wins
func (s *Snake) ChangeDirection(d grid.Direction) {
	if !d.Valid() || s.direction.IsOpposite(d) {
		return
	}
	s.nextDirection = d
}

// Grow makes the next Move keep the tail
func (s *Snake) Grow() {
	s.growing = true
}

// CheckSelfCollision reports whether the head overlaps any other segment
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment lies on c
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Head returns the head cell
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []grid.Cell {
	out := make([]grid.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed direction
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// PendingDirection returns the direction the next Move will use
func (s *Snake) PendingDirection() grid.Direction {
	return s.nextDirection
}

// Growing reports whether a grow is pending
func (s *Snake) Growing() bool {
	return s.growing
}
