package grid

// Direction is one of the four unit movement vectors
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionVectors = [...][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Vector returns the unit (dx, dy) of the direction, screen coordinates with y growing down
func (d Direction) Vector() (int, int) {
	if int(d) >= len(directionVectors) {
		return 0, 0
	}
	v := directionVectors[d]
	return v[0], v[1]
}

// Opposite returns the 180 degree reversal of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether other is the exact reversal of d
func (d Direction) IsOpposite(other Direction) bool {
	dx1, dy1 := d.Vector()
	dx2, dy2 := other.Vector()
	return dx1+dx2 == 0 && dy1+dy2 == 0
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "INVALID"
	}
}
