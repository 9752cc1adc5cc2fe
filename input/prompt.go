package input

import (
	"fmt"
	"io"
	"io/ioutil"

	"github.com/mastercactapus/trisect/coord"
	"github.com/pkg/errors"
)

// Prompter asks for vertices one line at a time, asking again
// whenever a line is rejected.
type Prompter struct {
	p *Parser
	w io.Writer
}

// NewPrompter reads answers from r and writes prompts to w.
// A nil w disables prompting.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	if w == nil {
		w = ioutil.Discard
	}
	return &Prompter{p: NewParser(r), w: w}
}

// ReadPoint prompts for vertex v of triangle t (both 1-based)
// until a valid line is entered.
func (pr *Prompter) ReadPoint(t, v int) (coord.Point, error) {
	for {
		_, err := fmt.Fprintf(pr.w, "Please input floating point values (ex. 0.0 0.0 0.0) for vertex %d of triangle %d.\n", v, t)
		if err != nil {
			return coord.Point{}, errors.Wrap(err, "write prompt")
		}

		pt, err := pr.p.ReadLine()
		if err == ErrBadLine {
			continue
		}
		return pt, err
	}
}

// ReadTriangles collects n triangles, three vertices each.
func (pr *Prompter) ReadTriangles(n int) ([]coord.Triangle, error) {
	res := make([]coord.Triangle, 0, n)
	for t := 1; t <= n; t++ {
		var v [3]coord.Point
		for i := range v {
			pt, err := pr.ReadPoint(t, i+1)
			if err == io.EOF && (t > 1 || i > 0) {
				err = io.ErrUnexpectedEOF
			}
			if err != nil {
				return nil, err
			}
			v[i] = pt
		}
		res = append(res, coord.NewTriangle(v[0], v[1], v[2]))
	}
	return res, nil
}

// Answer formats the result line for the two triangles.
func Answer(intersects bool) string {
	s := "no"
	if intersects {
		s = "yes"
	}
	return "Do the two triangles intersect?: " + s
}
