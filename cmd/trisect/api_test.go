package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mastercactapus/trisect/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crossing = `{"a": [[0,0,0],[2,0,0],[0,2,0]], "b": [[1,-1,-1],[1,-1,1],[1,1,0]]}`
const disjoint = `{"a": [[0,0,0],[1,0,0],[0,1,0]], "b": [[10,10,10],[11,10,10],[10,11,10]]}`

func do(t *testing.T, a *api, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, req)
	return rec
}

func TestAPI_Intersect(t *testing.T) {
	a := newAPI(2)
	defer a.Close()

	rec := do(t, a, "POST", "/api/intersect", crossing)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"intersects": true}`, rec.Body.String())

	rec = do(t, a, "POST", "/api/intersect", disjoint)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"intersects": false}`, rec.Body.String())

	rec = do(t, a, "POST", "/api/intersect", `{"a": [[0,0,0],[0,0,0],[1,1,1]], "b": [[0,0,0],[2,0,0],[0,2,0]]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degenerate":true`)
}

func TestAPI_Intersect_BadRequest(t *testing.T) {
	a := newAPI(2)
	defer a.Close()

	rec := do(t, a, "POST", "/api/intersect", `{"a": [[0,0,0]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, a, "POST", "/api/intersect", `{"a": [[0,0,0],[1,0,0]], "b": [[0,0,0],[1,0,0],[0,1,0]]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expected 3 vertices")

	rec = do(t, a, "GET", "/api/intersect", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAPI_Batch(t *testing.T) {
	a := newAPI(2)
	defer a.Close()

	rec := do(t, a, "POST", "/api/batch", "["+disjoint+","+crossing+"]")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, []batch.Result{
		{Index: 0, Intersects: false},
		{Index: 1, Intersects: true},
	}, resp.Results)

	rec = do(t, a, "GET", "/api/batch/"+resp.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var again batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &again))
	assert.Equal(t, resp, again)

	rec = do(t, a, "GET", "/api/batch/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, a, "POST", "/api/batch", `[{"a": [], "b": []}]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pair 0")
}

func TestAPI_Websocket(t *testing.T) {
	a := newAPI(2)
	defer a.Close()
	srv := httptest.NewServer(a)
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer ws.Close()

	read := func() string {
		_, data, err := ws.ReadMessage()
		require.NoError(t, err)
		return string(data)
	}

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(crossing)))
	assert.JSONEq(t, `{"intersects": true}`, read())

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte("garbage")))
	assert.Contains(t, read(), `"error"`)

	// connection survives a bad message
	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(disjoint)))
	assert.JSONEq(t, `{"intersects": false}`, read())
}

func TestAPI_BatchEvents(t *testing.T) {
	a := newAPI(2)
	srv := httptest.NewServer(logRequests(a))
	defer srv.Close()
	defer a.Close()

	events := make(chan string, 64)
	go func() {
		resp, err := http.Get(srv.URL + "/events/results")
		if err != nil {
			return
		}
		defer resp.Body.Close()
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			line := sc.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			select {
			case events <- strings.TrimPrefix(line, "data: "):
			default:
			}
		}
	}()

	body := "[" + disjoint + "," + crossing + "]"
	posted := make(map[string]bool)
	post := func() {
		resp, err := http.Post(srv.URL+"/api/batch", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var br batchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&br))
		posted[br.ID] = true
	}

	// the subscription may not be registered yet, so keep running
	// batches until one is seen in full
	post()
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	timeout := time.After(10 * time.Second)

	seen := make(map[string]map[int]bool)
	for {
		select {
		case data := <-events:
			var ev struct {
				ID string `json:"id"`
				batch.Result
			}
			require.NoError(t, json.Unmarshal([]byte(data), &ev))
			require.True(t, posted[ev.ID], "unknown job id %s", ev.ID)
			assert.Equal(t, ev.Index == 1, ev.Intersects)

			if seen[ev.ID] == nil {
				seen[ev.ID] = make(map[int]bool)
			}
			seen[ev.ID][ev.Index] = true
			if len(seen[ev.ID]) == 2 {
				return
			}
		case <-tick.C:
			post()
		case <-timeout:
			t.Fatal("no complete batch seen on /events/results")
		}
	}
}

func TestLogRequests(t *testing.T) {
	buf := new(bytes.Buffer)
	log.SetOutput(buf)
	defer log.SetOutput(os.Stderr)

	h := logRequests(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/batch/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, buf.String(), "DELETE /api/batch/x - 192.0.2.1:1234")
}

func TestAPI_JobEviction(t *testing.T) {
	a := newAPI(1)
	defer a.Close()

	for i := 0; i <= maxJobs; i++ {
		a.saveJob(fmt.Sprintf("job-%d", i), []batch.Result{{Index: i}})
	}

	assert.Len(t, a.jobs, maxJobs)
	assert.Len(t, a.jobOrder, maxJobs)

	rec := do(t, a, "GET", "/api/batch/job-0", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, a, "GET", fmt.Sprintf("/api/batch/job-%d", maxJobs), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
