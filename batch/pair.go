package batch

import (
	"io"

	"github.com/mastercactapus/trisect/coord"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Vertices is a triangle as written in a batch file: three [x, y, z] lists.
type Vertices [][]float64

// Triangle converts v, checking that it has exactly three vertices
// of three coordinates each.
func (v Vertices) Triangle() (coord.Triangle, error) {
	if len(v) != 3 {
		return coord.Triangle{}, errors.Errorf("expected 3 vertices, got %d", len(v))
	}
	var pts [3]coord.Point
	for i, c := range v {
		if len(c) != 3 {
			return coord.Triangle{}, errors.Errorf("vertex %d: expected 3 coordinates, got %d", i+1, len(c))
		}
		pts[i] = coord.Point{X: c[0], Y: c[1], Z: c[2]}
	}
	return coord.NewTriangle(pts[0], pts[1], pts[2]), nil
}

// FromTriangle is the inverse of Vertices.Triangle.
func FromTriangle(t coord.Triangle) Vertices {
	return Vertices{t.A.Slice(), t.B.Slice(), t.C.Slice()}
}

// Pair is one test case.
type Pair struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	A    Vertices `json:"a" yaml:"a"`
	B    Vertices `json:"b" yaml:"b"`
}

// Triangles validates and converts both sides of the pair.
func (p Pair) Triangles() (a, b coord.Triangle, err error) {
	a, err = p.A.Triangle()
	if err != nil {
		return a, b, errors.Wrap(err, "triangle a")
	}
	b, err = p.B.Triangle()
	if err != nil {
		return a, b, errors.Wrap(err, "triangle b")
	}
	return a, b, nil
}

// Validate checks every pair, naming the first bad one.
func Validate(pairs []Pair) error {
	for i, p := range pairs {
		_, _, err := p.Triangles()
		if err != nil {
			return errors.Wrapf(err, "pair %d", i)
		}
	}
	return nil
}

// Load decodes a YAML (or JSON) list of pairs from r.
func Load(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	err := yaml.NewDecoder(r).Decode(&pairs)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode pairs")
	}

	err = Validate(pairs)
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
