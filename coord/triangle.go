package coord

// Edge is a directed segment from e[0] to e[1].
type Edge [2]Point

// Triangle holds its vertices in the order they were given.
type Triangle struct{ A, B, C Point }

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// Vertices returns A, B and C in order.
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Edges returns AB, BC and CA, keeping the rotation of the vertices.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

// Plane returns the plane through the vertices, oriented A→B→C.
func (t Triangle) Plane() Plane {
	return Plane{t.A, t.B, t.C}
}

// String lists the vertices as "x y z, x y z, x y z".
func (t Triangle) String() string {
	v := t.Vertices()
	return v[0].String() + ", " + v[1].String() + ", " + v[2].String()
}

// Degenerate returns true if the vertices are collinear or coincident.
func (t Triangle) Degenerate() bool {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Equal(Point{})
}
