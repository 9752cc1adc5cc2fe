package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"sync"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/mastercactapus/trisect/batch"
	"github.com/mastercactapus/trisect/coord"
)

const maxBody = 1 << 20

// maxJobs is how many finished batches are kept for GET /api/batch/{id}.
// The oldest is dropped first.
const maxJobs = 256

type api struct {
	http.Handler
	workers int
	sse     *sse.Server

	mx       sync.RWMutex
	jobs     map[string][]batch.Result
	jobOrder []string
}

type intersectResponse struct {
	Intersects bool `json:"intersects"`

	// Degenerate is set when either triangle has no area, in which
	// case Intersects carries no meaning.
	Degenerate bool `json:"degenerate,omitempty"`
}

type batchResponse struct {
	ID      string         `json:"id"`
	Results []batch.Result `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func newAPI(workers int) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		workers: workers,
		jobs:    make(map[string][]batch.Result),
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	r.HandleFunc("/api/intersect", a.intersect)
	r.HandleFunc("/api/batch", a.runBatch)
	r.HandleFunc("/api/batch/{id}", a.getBatch)
	r.HandleFunc("/ws", a.socket)
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func (a *api) Close() { a.sse.Shutdown() }

func test(p batch.Pair) (*intersectResponse, error) {
	t1, t2, err := p.Triangles()
	if err != nil {
		return nil, err
	}
	return &intersectResponse{
		Intersects: coord.Intersects(t1, t2),
		Degenerate: t1.Degenerate() || t2.Degenerate(),
	}, nil
}

func (a *api) intersect(w http.ResponseWriter, req *http.Request) {
	if req.Method != "POST" {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var p batch.Pair
	err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBody)).Decode(&p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := test(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) runBatch(w http.ResponseWriter, req *http.Request) {
	if req.Method != "POST" {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var pairs []batch.Pair
	err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBody)).Decode(&pairs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = batch.Validate(pairs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	r := &batch.Runner{
		Workers: a.workers,
		OnResult: func(res batch.Result) {
			data, err := json.Marshal(struct {
				ID string `json:"id"`
				batch.Result
			}{id, res})
			if err != nil {
				log.Printf("ERROR: marshal json: %+v", err)
				return
			}
			a.sse.SendMessage("/events/results", sse.SimpleMessage(string(data)))
		},
	}
	res, err := r.Run(req.Context(), pairs)
	if err != nil {
		log.Printf("ERROR: batch %s: %+v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.saveJob(id, res)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(batchResponse{ID: id, Results: res})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) saveJob(id string, res []batch.Result) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.jobs[id] = res
	a.jobOrder = append(a.jobOrder, id)
	for len(a.jobOrder) > maxJobs {
		delete(a.jobs, a.jobOrder[0])
		a.jobOrder = a.jobOrder[1:]
	}
}

func (a *api) getBatch(w http.ResponseWriter, req *http.Request) {
	if req.Method != "GET" {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := mux.Vars(req)["id"]
	a.mx.RLock()
	res, ok := a.jobs[id]
	a.mx.RUnlock()
	if !ok {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(batchResponse{ID: id, Results: res})
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) socket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("ERROR: upgrade:", err)
		return
	}
	defer ws.Close()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("ERROR: read:", err)
			}
			return
		}

		var reply interface{}
		var p batch.Pair
		err = json.Unmarshal(data, &p)
		if err == nil {
			reply, err = test(p)
		}
		if err != nil {
			reply = errorResponse{Error: err.Error()}
		}

		err = ws.WriteJSON(reply)
		if err != nil {
			log.Println("ERROR: send:", err)
			return
		}
	}
}
