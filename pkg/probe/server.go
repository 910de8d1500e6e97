package probe

import (
	"net/http"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Server answers liveness and readiness probes. Liveness is unconditional;
// readiness flips once the API listener is up and back off during shutdown.
type Server struct {
	state []byte
	ready *atomic.Bool
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewServer(options Options) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		state: stateJSON,
		ready: &atomic.Bool{},
	}
}

func (s Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handlerHealthz)
	mux.HandleFunc("GET /ready", s.handlerReady)

	return mux
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK)
}

func (s Server) handlerReady(w http.ResponseWriter, _ *http.Request) {
	if !s.ready.Load() {
		s.write(w, http.StatusServiceUnavailable)

		return
	}

	s.write(w, http.StatusOK)
}

func (s Server) write(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(s.state) //nolint:errcheck
}
