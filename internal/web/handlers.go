package web

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/kanavgoyal898/idacube/internal/heuristic"
	"github.com/kanavgoyal898/idacube/internal/persistence"
	"github.com/kanavgoyal898/idacube/internal/solver"
)

type cubeRequest struct {
	Size int `json:"size"`
}

type cubeResponse struct {
	Size  int    `json:"size"`
	State string `json:"state"`
}

func (s *Server) handleCube(w http.ResponseWriter, r *http.Request) {
	var req cubeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Size < 1 || req.Size > 6 {
		http.Error(w, "size must be between 1 and 6", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.current = cube.New(req.Size, cube.DefaultPalette)
	state := s.current.State()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, cubeResponse{Size: req.Size, State: state})
}

type shuffleRequest struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

type shuffleResponse struct {
	Moves string `json:"moves"`
	State string `json:"state"`
}

func (s *Server) handleShuffle(w http.ResponseWriter, r *http.Request) {
	var req shuffleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	steps, err := s.current.Shuffle(req.Lower, req.Upper, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		http.Error(w, fmt.Sprintf("error shuffling cube: %v", err), http.StatusBadRequest)
		return
	}

	moves := make([]cube.Move, len(steps))
	for i, step := range steps {
		moves[i] = step.Move
	}
	writeJSON(w, http.StatusOK, shuffleResponse{
		Moves: cube.JoinMoves(moves),
		State: s.current.State(),
	})
}

type solveResponse struct {
	SolveID   string `json:"solve_id"`
	Moves     string `json:"moves"`
	Threshold int    `json:"threshold"`
	TimeMs    int64  `json:"time_ms"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c := s.current.Clone()
	s.mu.Unlock()

	ctx := r.Context()
	table, err := loadOrBuildTable(ctx, s.dbRoot, c.N)
	if err != nil {
		http.Error(w, fmt.Sprintf("error preparing heuristic table: %v", err), http.StatusInternalServerError)
		return
	}

	start := time.Now()
	result, err := solver.Solve(ctx, c, table, solver.Options{})
	elapsed := time.Since(start)
	if err != nil {
		http.Error(w, fmt.Sprintf("error solving cube: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{
		SolveID:   uuid.New().String(),
		Moves:     cube.JoinMoves(result.Moves),
		Threshold: result.Threshold,
		TimeMs:    elapsed.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func loadOrBuildTable(ctx context.Context, root string, n int) (heuristic.Table, error) {
	const buildMaxDepth = 5
	if persistence.Exists(root, n) {
		if table, err := persistence.Load(root, n); err == nil {
			return table, nil
		}
	}
	table, err := heuristic.Build(ctx, n, buildMaxDepth, cube.DefaultPalette)
	if err != nil {
		return nil, err
	}
	if err := persistence.Save(root, n, table); err != nil {
		return nil, err
	}
	return table, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
