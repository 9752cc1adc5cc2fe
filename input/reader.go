package input

import (
	"io"

	"github.com/mastercactapus/trisect/coord"
)

type Reader interface {
	Read() (coord.Point, error)
}

type PointsReader struct {
	Points []coord.Point
	n      int
}

func (p *PointsReader) Read() (coord.Point, error) {
	if p.n == len(p.Points) {
		return coord.Point{}, io.EOF
	}

	p.n++
	return p.Points[p.n-1], nil
}

// ReadTriangle reads three points from r.
//
// io.ErrUnexpectedEOF is returned if r runs out part way through.
func ReadTriangle(r Reader) (t coord.Triangle, err error) {
	var v [3]coord.Point
	for i := range v {
		v[i], err = r.Read()
		if err == io.EOF && i > 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return t, err
		}
	}
	return coord.NewTriangle(v[0], v[1], v[2]), nil
}
