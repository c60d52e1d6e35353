package food

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-snake/grid"
)

// cellSet is a map based Occupancy
type cellSet map[grid.Cell]bool

func (s cellSet) Occupies(c grid.Cell) bool { return s[c] }

// scriptedSource returns the queued values in order, then zeros
type scriptedSource struct {
	values []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestGenerateNeverOnOccupiedCell(t *testing.T) {
	g := grid.New(10, 10)
	sp := NewSpawner(g, rand.New(rand.NewSource(42)))

	occupied := cellSet{}
	for x := 0; x < 10; x++ {
		for y := 0; y < 7; y++ {
			occupied[grid.C(x, y)] = true
		}
	}

	for i := 0; i < 500; i++ {
		f, err := sp.Generate(occupied)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if occupied[f.Position] {
			t.Fatalf("food placed on occupied cell %v", f.Position)
		}
		if !g.InBounds(f.Position) {
			t.Fatalf("food out of bounds %v", f.Position)
		}
	}
}

func TestGenerateFallsBackToScanNearFull(t *testing.T) {
	g := grid.New(6, 6)
	occupied := cellSet{}
	for i := 0; i < g.Size(); i++ {
		occupied[g.At(i)] = true
	}
	free := grid.C(4, 2)
	delete(occupied, free)

	// Every sampled cell lands on (0,0), forcing the scan path
	sp := NewSpawner(g, &scriptedSource{})
	f, err := sp.Generate(occupied)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if f.Position != free {
		t.Errorf("Position = %v, want %v", f.Position, free)
	}
}

func TestGenerateFullBoard(t *testing.T) {
	g := grid.New(3, 3)
	occupied := cellSet{}
	for i := 0; i < g.Size(); i++ {
		occupied[g.At(i)] = true
	}

	sp := NewSpawner(g, rand.New(rand.NewSource(1)))
	before := sp.Current()
	_, err := sp.Generate(occupied)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
	if sp.Current() != before {
		t.Error("active food replaced on full board")
	}
}

func TestTypeSelectionByWeight(t *testing.T) {
	tests := []struct {
		roll int
		want Type
	}{
		{0, Normal},
		{89, Normal},
		{90, Double},
		{94, Double},
		{95, Speed},
		{99, Speed},
	}

	for _, tc := range tests {
		// First draw is the type roll, then the cell
		sp := NewSpawner(grid.New(10, 10), &scriptedSource{values: []int{tc.roll, 3, 4}})
		f, err := sp.Generate(cellSet{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if f.Type != tc.want {
			t.Errorf("roll %d: Type = %s, want %s", tc.roll, f.Type, tc.want)
		}
		if f.Position != grid.C(3, 4) {
			t.Errorf("roll %d: Position = %v, want (3,4)", tc.roll, f.Position)
		}
	}
}

func TestTypeDistribution(t *testing.T) {
	sp := NewSpawner(grid.New(40, 30), rand.New(rand.NewSource(7)))
	counts := map[Type]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		f, _ := sp.Generate(cellSet{})
		counts[f.Type]++
	}

	normal := float64(counts[Normal]) / n
	if normal < 0.87 || normal > 0.93 {
		t.Errorf("normal share = %.3f, want ~0.90", normal)
	}
	t.Logf("distribution: normal=%d double=%d speed=%d", counts[Normal], counts[Double], counts[Speed])
}

func TestSetWeightsRejectsInvalid(t *testing.T) {
	sp := NewSpawner(grid.New(5, 5), &scriptedSource{values: []int{0}})
	sp.SetWeights(Weights{})
	sp.SetWeights(Weights{Normal: -1, Double: 5, Speed: 5})

	sp.SetWeights(Weights{Speed: 1})
	f, _ := sp.Generate(cellSet{})
	if f.Type != Speed {
		t.Errorf("Type = %s, want speed with speed-only weights", f.Type)
	}
}

func TestPoints(t *testing.T) {
	if Normal.Points() != 10 || Double.Points() != 20 || Speed.Points() != 10 {
		t.Errorf("points = %d/%d/%d, want 10/20/10", Normal.Points(), Double.Points(), Speed.Points())
	}
}
