// Package collision provides the pure per-tick collision tests
package collision

import (
	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/snake"
)

// Outcome is the result of resolving one tick
type Outcome uint8

const (
	None Outcome = iota
	Wall
	Self
	Food
)

func (o Outcome) String() string {
	switch o {
	case Wall:
		return "wall"
	case Self:
		return "self"
	case Food:
		return "food"
	default:
		return "none"
	}
}

// Fatal reports whether the outcome ends the game
func (o Outcome) Fatal() bool {
	return o == Wall || o == Self
}

// CheckWall reports whether the head left the board
func CheckWall(s *snake.Snake, g grid.Grid) bool {
	return !g.InBounds(s.Head())
}

// CheckSelf reports whether the head overlaps the body
func CheckSelf(s *snake.Snake) bool {
	return s.CheckSelfCollision()
}

// CheckFood reports whether the head is on the food cell
func CheckFood(s *snake.Snake, f food.Food) bool {
	return s.Head() == f.Position
}

// Resolve evaluates wall, then self, then food for the post-move snake
func Resolve(s *snake.Snake, f food.Food, g grid.Grid) Outcome {
	switch {
	case CheckWall(s, g):
		return Wall
	case CheckSelf(s):
		return Self
	case CheckFood(s, f):
		return Food
	default:
		return None
	}
}
