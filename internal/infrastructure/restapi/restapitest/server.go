// Package restapitest ofrece una API REST de inventario en memoria para tests.
package restapitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// Request petición registrada por el servidor falso.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// JSON decodifica el cuerpo de la petición.
func (r Request) JSON(t testing.TB) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("cuerpo no es JSON: %v (%s)", err, string(r.Body))
	}
	return m
}

type failure struct {
	status int
	body   string
}

// Server API falsa con colecciones products, suppliers y orders.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	docs     map[string][]map[string]any
	failures map[string]failure
	requests []Request
	seq      int
}

// New arranca el servidor y lo cierra al terminar el test.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		docs: map[string][]map[string]any{
			"products":  {},
			"suppliers": {},
			"orders":    {},
		},
		failures: map[string]failure{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Seed agrega documentos a una colección; se les asigna _id si no lo traen.
func (s *Server) Seed(collection string, docs ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		if _, ok := d["_id"]; !ok {
			d["_id"] = s.nextID(collection)
		}
		s.docs[collection] = append(s.docs[collection], d)
	}
}

// Fail hace que toda petición a la colección responda status con body.
func (s *Server) Fail(collection string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = failure{status: status, body: body}
}

// Recover elimina el fallo inyectado.
func (s *Server) Recover(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, collection)
}

// Requests devuelve las peticiones con ese método cuyo path empieza por prefix.
func (s *Server) Requests(method, prefix string) []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Request
	for _, r := range s.requests {
		if r.Method == method && strings.HasPrefix(r.Path, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// Docs copia de los documentos de una colección.
func (s *Server) Docs(collection string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.docs[collection]...)
}

func (s *Server) nextID(collection string) string {
	s.seq++
	return fmt.Sprintf("%s%04d", strings.TrimSuffix(collection, "s"), s.seq)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection := parts[0]
	if _, ok := s.docs[collection]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "Route not found"})
		return
	}
	if f, ok := s.failures[collection]; ok {
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, s.docs[collection])
	case len(parts) == 1 && r.Method == http.MethodPost:
		doc, ok := decode(w, body)
		if !ok {
			return
		}
		doc["_id"] = s.nextID(collection)
		if collection != "products" {
			doc["createdAt"] = time.Now().UTC().Format(time.RFC3339)
		}
		s.docs[collection] = append(s.docs[collection], doc)
		writeJSON(w, http.StatusCreated, doc)
	case len(parts) == 2 && r.Method == http.MethodPut:
		doc, ok := decode(w, body)
		if !ok {
			return
		}
		idx := s.indexOf(collection, parts[1])
		if idx < 0 {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
			return
		}
		for k, v := range doc {
			s.docs[collection][idx][k] = v
		}
		writeJSON(w, http.StatusOK, s.docs[collection][idx])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		idx := s.indexOf(collection, parts[1])
		if idx < 0 {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Not found"})
			return
		}
		s.docs[collection] = append(s.docs[collection][:idx], s.docs[collection][idx+1:]...)
		writeJSON(w, http.StatusOK, map[string]any{"message": "deleted"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Method not allowed"})
	}
}

func (s *Server) indexOf(collection, id string) int {
	for i, d := range s.docs[collection] {
		if d["_id"] == id {
			return i
		}
	}
	return -1
}

func decode(w http.ResponseWriter, body []byte) (map[string]any, bool) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON"})
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
