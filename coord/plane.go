package coord

// Plane is the oriented plane through three points.
type Plane [3]Point

// Side reports which side of the plane p lies on: -1, 0 or 1.
// The orientation follows the right-hand rule over p[0], p[1], p[2].
func (p Plane) Side(pt Point) int {
	return Sign(SignedVolume(p[0], p[1], p[2], pt))
}
