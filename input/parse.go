package input

import (
	"io"

	"github.com/mastercactapus/trisect/coord"
)

// Parse reads every valid vertex line from r.
func Parse(r io.Reader) ([]coord.Point, error) {
	pr := NewParser(r)
	var p []coord.Point
	for {
		pt, err := pr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		p = append(p, pt)
	}
	return p, nil
}
