// Package web is the HTTP boundary adapter (C6): it exposes the core
// cube/heuristic/solver packages over a small JSON API, following the
// teacher's gorilla/mux server layout.
//
// The cube held here is process-wide and single-valued, deliberately:
// the core packages carry no session concept, so binding a cube to a
// caller (or supporting concurrent independent cubes) is left as the
// adapter's responsibility rather than the core's. A production
// deployment would key this by session id; this adapter does not,
// matching the original implementation's single global cube in app.py.
package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/kanavgoyal898/idacube/internal/cube"
)

// Server holds the adapter's process-wide cube state and its router.
type Server struct {
	router  *mux.Router
	dbRoot  string
	mu      sync.Mutex
	current *cube.Cube
}

// NewServer constructs a Server with a solved 3x3x3 cube and the given
// heuristic database root (used by /api/solve).
func NewServer(dbRoot string) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		dbRoot:  dbRoot,
		current: cube.New(3, cube.DefaultPalette),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cube", s.handleCube).Methods("POST")
	api.HandleFunc("/shuffle", s.handleShuffle).Methods("POST")
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
