package grid

import "testing"

func TestInBounds(t *testing.T) {
	g := New(40, 30)

	tests := []struct {
		cell Cell
		want bool
	}{
		{C(0, 0), true},
		{C(39, 29), true},
		{C(-1, 5), false},
		{C(40, 5), false},
		{C(5, -1), false},
		{C(5, 30), false},
		{C(20, 15), true},
	}

	for _, tc := range tests {
		if got := g.InBounds(tc.cell); got != tc.want {
			t.Errorf("InBounds(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := New(7, 5)
	for i := 0; i < g.Size(); i++ {
		c := g.At(i)
		if !g.InBounds(c) {
			t.Fatalf("At(%d) = %v out of bounds", i, c)
		}
		if got := g.Index(c); got != i {
			t.Fatalf("Index(At(%d)) = %d", i, got)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := New(40, 30).Center(); got != C(20, 15) {
		t.Errorf("Center() = %v, want (20,15)", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		opp := d.Opposite()
		if !d.IsOpposite(opp) {
			t.Errorf("%s.IsOpposite(%s) = false", d, opp)
		}
		if d.IsOpposite(d) {
			t.Errorf("%s.IsOpposite(itself) = true", d)
		}
		if opp.Opposite() != d {
			t.Errorf("double opposite of %s = %s", d, opp.Opposite())
		}
	}

	if Up.IsOpposite(Left) || Up.IsOpposite(Right) {
		t.Error("perpendicular directions reported as opposite")
	}
}

func TestCellAdd(t *testing.T) {
	start := C(5, 5)
	tests := map[Direction]Cell{
		Up:    C(5, 4),
		Down:  C(5, 6),
		Left:  C(4, 5),
		Right: C(6, 5),
	}
	for d, want := range tests {
		if got := start.Add(d); got != want {
			t.Errorf("%v.Add(%s) = %v, want %v", start, d, got, want)
		}
	}
}
