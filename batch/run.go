package batch

import (
	"context"
	"runtime"
	"strconv"
	"sync"

	"github.com/mastercactapus/trisect/coord"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for the pair at Index.
type Result struct {
	Index      int    `json:"index"`
	Name       string `json:"name,omitempty"`
	Intersects bool   `json:"intersects"`
}

// Answer renders r as "name: yes|no". Unnamed pairs are labeled
// by their 1-based position.
func (r Result) Answer() string {
	name := r.Name
	if name == "" {
		name = "pair " + strconv.Itoa(r.Index+1)
	}
	s := "no"
	if r.Intersects {
		s = "yes"
	}
	return name + ": " + s
}

// Runner tests pairs in parallel.
type Runner struct {
	// Workers caps the number of concurrent tests. Zero means GOMAXPROCS.
	Workers int

	// OnResult, if set, is called once per pair as results come in.
	// Calls are serialized but arrive in no particular order.
	OnResult func(Result)

	mx sync.Mutex
}

// Run tests every pair and returns the results in input order.
//
// A malformed pair stops the run with an error naming it. If ctx is
// cancelled part way, ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	n := r.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	res := make([]Result, len(pairs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			err := gCtx.Err()
			if err != nil {
				return err
			}

			a, b, err := p.Triangles()
			if err != nil {
				return errors.Wrapf(err, "pair %d", i)
			}
			res[i] = Result{
				Index:      i,
				Name:       p.Name,
				Intersects: coord.Intersects(a, b),
			}
			r.emit(res[i])
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Runner) emit(res Result) {
	if r.OnResult == nil {
		return
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	r.OnResult(res)
}

// Run tests pairs with a default Runner.
func Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	var r Runner
	return r.Run(ctx, pairs)
}
