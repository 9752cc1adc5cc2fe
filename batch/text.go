package batch

import (
	"io"

	"github.com/mastercactapus/trisect/input"
	"github.com/pkg/errors"
)

// LoadText reads pairs from plain vertex lines, the same "x y z" lines the
// prompt accepts. Every six valid lines form one pair; other lines are
// skipped. Pairs are left unnamed.
func LoadText(r io.Reader) ([]Pair, error) {
	pts, err := input.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse vertices")
	}
	if len(pts)%6 != 0 {
		return nil, errors.Errorf("got %d vertices, need a multiple of 6", len(pts))
	}

	pr := &input.PointsReader{Points: pts}
	pairs := make([]Pair, 0, len(pts)/6)
	for {
		a, err := input.ReadTriangle(pr)
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			return nil, err
		}
		b, err := input.ReadTriangle(pr)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{A: FromTriangle(a), B: FromTriangle(b)})
	}
}
