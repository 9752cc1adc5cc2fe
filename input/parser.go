package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mastercactapus/trisect/coord"
	"github.com/pkg/errors"
)

// ErrBadLine is returned by ReadLine when a line does not hold exactly
// three numbers.
var ErrBadLine = errors.New("expected 3 coordinates")

// Parser reads one vertex per line as whitespace separated numbers.
type Parser struct{ br *bufio.Reader }

func NewParser(r io.Reader) *Parser {
	if br, ok := r.(*bufio.Reader); ok {
		return &Parser{br: br}
	}

	return &Parser{br: bufio.NewReader(r)}
}

// parseLine collects every token of s that parses as a float.
// Anything else is dropped.
func parseLine(s string) []float64 {
	fields := strings.Fields(s)
	res := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		res = append(res, v)
	}
	return res
}

// ReadLine consumes a single line. If it does not yield exactly three
// numbers, ErrBadLine is returned and the caller may try again.
func (p *Parser) ReadLine() (coord.Point, error) {
	s, err := p.br.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err == io.EOF {
		return coord.Point{}, io.EOF
	}
	if err != nil {
		return coord.Point{}, errors.Wrap(err, "read line")
	}

	v := parseLine(s)
	if len(v) != 3 {
		return coord.Point{}, ErrBadLine
	}

	return coord.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Read returns the next point, skipping lines that don't hold exactly
// three numbers.
func (p *Parser) Read() (coord.Point, error) {
	for {
		pt, err := p.ReadLine()
		if err == ErrBadLine {
			continue
		}
		return pt, err
	}
}
