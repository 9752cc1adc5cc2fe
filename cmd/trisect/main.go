package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mastercactapus/trisect/batch"
	"github.com/mastercactapus/trisect/coord"
	"github.com/mastercactapus/trisect/input"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

func main() {
	log.SetFlags(log.Lshortfile)

	addr := flag.String("addr", "", "Address to serve the HTTP API on (e.g. :9092). Interactive mode if empty.")
	batchFile := flag.String("batch", "", "YAML or JSON file of triangle pairs to test, or a .txt file of vertex lines (6 per pair). Use - for stdin.")
	jsonOut := flag.Bool("json", false, "Print batch results as JSON.")
	workers := flag.Int("workers", 0, "Max concurrent tests in batch mode (0 = GOMAXPROCS).")
	flag.Parse()

	var err error
	switch {
	case *addr != "":
		err = serve(*addr, *workers)
	case *batchFile != "":
		err = runBatch(os.Stdout, *batchFile, *workers, *jsonOut)
	default:
		var prompts io.Writer
		if term.IsTerminal(int(os.Stdin.Fd())) {
			prompts = os.Stdout
		}
		err = interactive(os.Stdin, prompts, os.Stdout)
	}
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
}

func interactive(r io.Reader, prompts, w io.Writer) error {
	var tris []coord.Triangle
	var err error
	if prompts != nil {
		tris, err = input.NewPrompter(r, prompts).ReadTriangles(2)
	} else {
		tris, err = readTriangles(input.NewParser(r), 2)
	}
	if err != nil {
		return errors.Wrap(err, "read triangles")
	}

	for i, t := range tris {
		if t.Degenerate() {
			log.Printf("WARNING: triangle %d has no area (%s), result is not meaningful", i+1, t)
		}
	}

	_, err = fmt.Fprintln(w, input.Answer(coord.Intersects(tris[0], tris[1])))
	return err
}

// readTriangles reads n triangles from piped input without prompting.
func readTriangles(r input.Reader, n int) ([]coord.Triangle, error) {
	res := make([]coord.Triangle, 0, n)
	for len(res) < n {
		t, err := input.ReadTriangle(r)
		if err == io.EOF && len(res) > 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func runBatch(w io.Writer, name string, workers int, asJSON bool) error {
	in := io.Reader(os.Stdin)
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open batch file")
		}
		defer f.Close()
		in = f
	}

	load := batch.Load
	if filepath.Ext(name) == ".txt" {
		load = batch.LoadText
	}
	pairs, err := load(in)
	if err != nil {
		return errors.Wrap(err, name)
	}

	r := &batch.Runner{Workers: workers}
	res, err := r.Run(context.Background(), pairs)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(w).Encode(res)
	}
	for _, rs := range res {
		_, err = fmt.Fprintln(w, rs.Answer())
		if err != nil {
			return err
		}
	}
	return nil
}

func serve(addr string, workers int) error {
	api := newAPI(workers)
	defer api.Close()

	log.Println("Listening on", addr)
	return http.ListenAndServe(addr, logRequests(api))
}

// logRequests logs each request and allows cross-origin access.
func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		h.ServeHTTP(w, req)
	})
}
