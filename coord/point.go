package coord

import (
	"strconv"
)

// Point is a position in 3D space. It doubles as a vector
// for the arithmetic below.
type Point struct{ X, Y, Z float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}

// Cross returns the right-handed cross product p × op.
func (p Point) Cross(op Point) Point {
	return Point{
		p.Y*op.Z - p.Z*op.Y,
		-(p.X*op.Z - p.Z*op.X),
		p.X*op.Y - p.Y*op.X,
	}
}
func (p Point) Dot(op Point) float64 {
	return p.X*op.X + p.Y*op.Y + p.Z*op.Z
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

// Slice returns the coordinates as [x, y, z].
func (p Point) Slice() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String formats p the way it is typed at the prompt: "x y z".
func (p Point) String() string {
	return formatFloat(p.X) + " " + formatFloat(p.Y) + " " + formatFloat(p.Z)
}
