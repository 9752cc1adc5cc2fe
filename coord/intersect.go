package coord

// EdgeIntersects returns true if e passes through the interior of t.
//
// The endpoints of e must fall on strictly different sides of the plane of t
// (a point on the plane counts as its own side), and e must wind the same way
// around all three edges of t. Any exact zero in the second test is treated as
// a miss, so grazing contact along an edge or vertex of t is not reported.
// No tolerance is applied.
func (t Triangle) EdgeIntersects(e Edge) bool {
	p := t.Plane()
	if p.Side(e[0]) == p.Side(e[1]) {
		return false
	}

	edges := t.Edges()
	s := Sign(SignedVolume(edges[0][0], edges[0][1], e[0], e[1]))
	for _, te := range edges[1:] {
		if Sign(SignedVolume(te[0], te[1], e[0], e[1])) != s {
			return false
		}
	}

	return true
}

// Intersects returns true if t and o cross each other.
func (t Triangle) Intersects(o Triangle) bool {
	return Intersects(t, o)
}

// Intersects returns true if any edge of b passes through a, or any
// edge of a passes through b.
//
// It is meant for transversal intersections. Exactly coplanar triangles are
// never reported, whether or not they overlap, and neither are triangles
// that touch only at a shared vertex.
func Intersects(a, b Triangle) bool {
	for _, e := range b.Edges() {
		if a.EdgeIntersects(e) {
			return true
		}
	}
	for _, e := range a.Edges() {
		if b.EdgeIntersects(e) {
			return true
		}
	}

	return false
}
