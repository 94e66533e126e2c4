// Package magentotest provides a recording fake of the Magento REST and
// GraphQL APIs for tests.
package magentotest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Call is one request received by the fake backend.
type Call struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Key returns "METHOD path" with the path relative to the REST root.
func (c Call) Key() string {
	return c.Method + " " + c.Path
}

// Authorization returns the authorization header of the call.
func (c Call) Authorization() string {
	return c.Header.Get("Authorization")
}

// Raw is written to the response body as is.
type Raw string

type response struct {
	status int
	body   interface{}
}

// Server is a scripted Magento backend. Each route answers with its queued
// responses in order and repeats the last one once the queue is drained.
// Unknown routes answer 404.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	calls  []Call
	routes map[string][]response
}

// NewServer starts a fake backend that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{routes: make(map[string][]response)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle queues a response for method and path. The path is relative to
// /rest/V1, so "guest-carts/123" or "graphql".
func (s *Server) Handle(method, path string, status int, body interface{}) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + strings.TrimPrefix(path, "/")
	s.routes[key] = append(s.routes[key], response{status: status, body: body})
	return s
}

// Calls returns the calls received so far, in arrival order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Keys returns the "METHOD path" key of every call received so far.
func (s *Server) Keys() []string {
	calls := s.Calls()
	keys := make([]string, 0, len(calls))
	for _, c := range calls {
		keys = append(keys, c.Key())
	}
	return keys
}

// Host returns the host:port of the fake backend.
func (s *Server) Host() string {
	return strings.TrimPrefix(s.URL, "http://")
}

// Args returns an argument bag pointing at the fake backend, merged with
// extra.
func (s *Server) Args(extra map[string]interface{}) map[string]interface{} {
	args := map[string]interface{}{
		"MAGENTO_HOST":              s.Host(),
		"MAGENTO_SCHEMA":            "http",
		"MAGENTO_API_VERSION":       "V1",
		"MAGENTO_MEDIA_PATH":        "media/catalog/product",
		"MAGENTO_INTEGRATION_TOKEN": "integration-token",
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/rest/V1"), "/")
	call := Call{
		Method:   r.Method,
		Path:     path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	queue := s.routes[call.Key()]
	var resp response
	found := len(queue) > 0
	if found {
		resp = queue[0]
		if len(queue) > 1 {
			s.routes[call.Key()] = queue[1:]
		}
	}
	s.mu.Unlock()

	if !found {
		resp = response{
			status: http.StatusNotFound,
			body:   map[string]string{"message": "Request does not match any route."},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	switch b := resp.body.(type) {
	case nil:
	case Raw:
		io.WriteString(w, string(b))
	default:
		json.NewEncoder(w).Encode(b)
	}
}
