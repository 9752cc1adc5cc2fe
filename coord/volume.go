package coord

// SignedVolume returns the oriented volume of the tetrahedron with
// base (a, b, c) and apex d:
//
//	((a-d) × (b-d)) · (c-d) / 6
//
// It is zero exactly when d lies on the plane through a, b and c.
func SignedVolume(a, b, c, d Point) float64 {
	return a.Sub(d).Cross(b.Sub(d)).Dot(c.Sub(d)) / 6
}

// Sign buckets v into -1, 0 or 1. Both zeros map to 0, and so does NaN
// since it is neither above nor below zero.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
