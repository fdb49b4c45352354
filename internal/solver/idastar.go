// Package solver implements the IDA* search (C4): an iteratively
// deepening bounded depth-first search over move sequences, guided by a
// BFS heuristic table, that returns a move list transforming a scrambled
// cube to solved.
package solver

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/kanavgoyal898/idacube/internal/heuristic"
)

// ErrCancelled is returned when the caller's context is done mid-search.
// The solver never returns a partial solution: either a complete move
// list ending in the solved state, or this error.
var ErrCancelled = errors.New("solver: search cancelled")

// Options tunes the search. The zero value is a reasonable default:
// no strong pruning, fallback divisor of 8 (tuned for N=3 per §9), and
// no absolute depth ceiling.
type Options struct {
	// StrongPruning enables the optional stronger redundancy pruning
	// (skip any move on the same (family, index) slice as the previous
	// move). Moves on parallel slices are not reordered. Off by
	// default: the spec requires only immediate-inverse pruning.
	StrongPruning bool

	// FallbackDivisor scales MisplacedFacelets when a state is absent
	// from the heuristic table. Zero means "use 8", the constant the
	// spec names as safe for N=3 (§9).
	FallbackDivisor int

	// MaxThreshold is an absolute safety-valve ceiling on the f-bound
	// (§7): if set and the outer loop would raise the threshold past it,
	// the search stops and returns ErrCancelled rather than looping
	// forever on an unreachable or pathological input. Zero means no
	// ceiling.
	MaxThreshold int
}

// Result is a successful search outcome.
type Result struct {
	Moves     []cube.Move
	States    []string
	Threshold int
}

type searchState struct {
	ctx       context.Context
	table     heuristic.Table
	opts      Options
	threshold int
	next      int
	path      []cube.Move
	states    []string
}

// Solve runs IDA* from start using table as the admissible heuristic. It
// never mutates start; all search happens on cloned cubes.
func Solve(ctx context.Context, start *cube.Cube, table heuristic.Table, opts Options) (Result, error) {
	if opts.FallbackDivisor <= 0 {
		opts.FallbackDivisor = 8
	}

	startState := start.State()
	s := &searchState{
		ctx:       ctx,
		table:     table,
		opts:      opts,
		threshold: heuristicOf(startState, start.N, table, opts.FallbackDivisor),
	}

	for {
		select {
		case <-ctx.Done():
			return Result{}, ErrCancelled
		default:
		}

		s.next = math.MaxInt32
		s.path = s.path[:0]
		s.states = s.states[:0]

		found, err := s.search(start, 0)
		if err != nil {
			return Result{}, err
		}
		if found {
			moves := append([]cube.Move(nil), s.path...)
			states := append([]string(nil), s.states...)
			return Result{Moves: moves, States: states, Threshold: s.threshold}, nil
		}

		if s.next == math.MaxInt32 {
			// No child was ever generated: the start state could not be
			// expanded at all. Treat as cancellation rather than
			// looping forever (§7: unreachable for a well-formed,
			// solvable cube).
			return Result{}, ErrCancelled
		}
		if opts.MaxThreshold > 0 && s.next > opts.MaxThreshold {
			return Result{}, ErrCancelled
		}
		s.threshold = s.next
	}
}

// search is the DFS step at (cube, g). It returns true if a solution
// was found; the path leading to it is left in s.path/s.states.
func (s *searchState) search(c *cube.Cube, g int) (bool, error) {
	select {
	case <-s.ctx.Done():
		return false, ErrCancelled
	default:
	}

	state := c.State()
	h := heuristicOf(state, c.N, s.table, s.opts.FallbackDivisor)
	f := g + h

	if f > s.threshold {
		if f < s.next {
			s.next = f
		}
		return false, nil
	}

	if c.IsSolved() {
		return true, nil
	}

	var lastMove cube.Move
	haveLast := len(s.path) > 0
	if haveLast {
		lastMove = s.path[len(s.path)-1]
	}

	children := children(c.N)
	if s.opts.StrongPruning {
		children = pruneStrong(children, s.path)
	}
	children = pruneInverse(children, lastMove, haveLast)

	type scored struct {
		move  cube.Move
		state string
		f     int
	}
	scoredChildren := make([]scored, 0, len(children))
	for _, m := range children {
		child := c.Clone()
		if err := child.ApplyMove(m); err != nil {
			// Unreachable: children(c.N) only yields in-range moves.
			continue
		}
		cs := child.State()
		ch := heuristicOf(cs, child.N, s.table, s.opts.FallbackDivisor)
		scoredChildren = append(scoredChildren, scored{move: m, state: cs, f: g + 1 + ch})
	}
	sort.SliceStable(scoredChildren, func(i, j int) bool {
		return scoredChildren[i].f < scoredChildren[j].f
	})

	for _, sc := range scoredChildren {
		child := c.Clone()
		if err := child.ApplyMove(sc.move); err != nil {
			continue
		}
		s.path = append(s.path, sc.move)
		s.states = append(s.states, sc.state)

		found, err := s.search(child, g+1)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}

		s.path = s.path[:len(s.path)-1]
		s.states = s.states[:len(s.states)-1]
	}

	return false, nil
}

func heuristicOf(state string, n int, table heuristic.Table, fallbackDivisor int) int {
	if table != nil {
		if d, ok := table[state]; ok {
			return d
		}
	}
	return cube.MisplacedFacelets(state, n) / fallbackDivisor
}

func children(n int) []cube.Move {
	return cube.AllMoves(n)
}

// pruneInverse drops the immediate inverse of the last move on the
// path: the minimal redundancy pruning the spec requires (§4.4 step 4).
func pruneInverse(moves []cube.Move, last cube.Move, haveLast bool) []cube.Move {
	if !haveLast {
		return moves
	}
	inv := last.Inverse()
	out := make([]cube.Move, 0, len(moves))
	for _, m := range moves {
		if m == inv {
			continue
		}
		out = append(out, m)
	}
	return out
}

// pruneStrong applies the optional stronger redundancy pruning from §9:
// never repeat a move on the same (family, index) twice in a row. This
// move model has no half-turn move, so a half turn of one slice takes
// two consecutive quarter turns; paths containing one are skipped, and a
// solution found with this pruning on can be longer than the shortest.
func pruneStrong(moves []cube.Move, path []cube.Move) []cube.Move {
	if len(path) == 0 {
		return moves
	}
	last := path[len(path)-1]
	out := make([]cube.Move, 0, len(moves))
	for _, m := range moves {
		if m.Family == last.Family && m.Index == last.Index {
			continue
		}
		out = append(out, m)
	}
	return out
}
