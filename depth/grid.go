package depth

import "fmt"

// GridPos is a logical position on the isometric map. Z is the elevation tier.
type GridPos struct {
	X float64
	Y float64
	Z float64
}

// Pos builds a GridPos from integer cell coordinates.
func Pos(x, y, z int) GridPos {
	return GridPos{X: float64(x), Y: float64(y), Z: float64(z)}
}

// Compare orders positions lexicographically on (X, Y, Z).
func (p GridPos) Compare(o GridPos) int {
	switch {
	case p.X < o.X:
		return -1
	case p.X > o.X:
		return 1
	case p.Y < o.Y:
		return -1
	case p.Y > o.Y:
		return 1
	case p.Z < o.Z:
		return -1
	case p.Z > o.Z:
		return 1
	}
	return 0
}

// Less reports whether p must be painted before o.
func (p GridPos) Less(o GridPos) bool {
	return p.Compare(o) < 0
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
