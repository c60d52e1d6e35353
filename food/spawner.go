package food

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/grid"
)

// ErrBoardFull is returned when no free cell remains for food
var ErrBoardFull = errors.New("no free cell for food")

// RandSource is the randomness the spawner draws from
// *rand.Rand satisfies it
type RandSource interface {
	Intn(n int) int
}

// Occupancy reports whether a cell is taken
// *snake.Snake satisfies it
type Occupancy interface {
	Occupies(c grid.Cell) bool
}

// Spawner generates food on free cells and holds the active item
type Spawner struct {
	grid        grid.Grid
	rng         RandSource
	weights     Weights
	maxAttempts int
	current     Food
}

// NewSpawner creates a spawner over g; a nil rng uses a time-seeded source
func NewSpawner(g grid.Grid, rng RandSource) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Spawner{
		grid:        g,
		rng:         rng,
		weights:     DefaultWeights(),
		maxAttempts: g.Size() * constant.FoodSampleFactor,
	}
}

// SetWeights replaces the type distribution; non-positive totals are ignored
func (s *Spawner) SetWeights(w Weights) {
	if w.Normal < 0 || w.Double < 0 || w.Speed < 0 || w.total() <= 0 {
		return
	}
	s.weights = w
}

// Generate draws a type and a free cell, replacing the active food
// Cells are rejection sampled; after maxAttempts the free cells are scanned
// and one is picked uniformly. A full board returns ErrBoardFull and keeps the old food
func (s *Spawner) Generate(occupied Occupancy) (Food, error) {
	t := s.weights.pick(s.rng.Intn(s.weights.total()))

	for i := 0; i < s.maxAttempts; i++ {
		c := grid.C(s.rng.Intn(s.grid.Cols), s.rng.Intn(s.grid.Rows))
		if !occupied.Occupies(c) {
			s.current = Food{Position: c, Type: t}
			return s.current, nil
		}
	}

	free := make([]int, 0, 16)
	for i := 0; i < s.grid.Size(); i++ {
		if !occupied.Occupies(s.grid.At(i)) {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return s.current, ErrBoardFull
	}

	s.current = Food{Position: s.grid.At(free[s.rng.Intn(len(free))]), Type: t}
	return s.current, nil
}

// Current returns the active food
func (s *Spawner) Current() Food {
	return s.current
}

// Place forces the active food, used to restore or script a board
func (s *Spawner) Place(f Food) {
	s.current = f
}
