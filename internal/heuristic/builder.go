// Package heuristic builds the BFS heuristic database (C3): a
// state→depth map computed by a bounded breadth-first search outward
// from the solved cube, used by the IDA* solver as an admissible lower
// bound.
//
// The reference implementation this was migrated from popped its
// frontier LIFO (a stack), which degrades the traversal to depth-limited
// DFS and only produced correct depths because of a defensive
// "overwrite if the recorded depth is larger" check. This package uses a
// genuine FIFO queue, so depths are final the first time a state is
// recorded; see BuildWithProgress.
package heuristic

import (
	"context"
	"errors"

	"github.com/kanavgoyal898/idacube/internal/cube"
)

// ErrCancelled is returned when the caller's context is done before the
// build completes. No partial table is returned.
var ErrCancelled = errors.New("heuristic: build cancelled")

// Table maps a canonical cube state string to the minimal number of
// moves required to return it to solved, for every state discovered
// within the configured depth bound. A missing key means "depth >
// bound", not "unreachable".
type Table map[string]int

// ProgressFunc is called after each state is dequeued, reporting the
// total number of states visited so far. It is purely observational: it
// must not block and has no effect on the build's outcome (§4.3).
type ProgressFunc func(visited int)

type queueEntry struct {
	state string
	depth int
}

// Build runs a depth-bounded BFS from the solved n-dimensional cube
// (using palette) and returns the resulting heuristic table. It is
// equivalent to BuildWithProgress(ctx, n, maxDepth, palette, nil).
func Build(ctx context.Context, n int, maxDepth int, palette [6]byte) (Table, error) {
	return BuildWithProgress(ctx, n, maxDepth, palette, nil)
}

// BuildWithProgress is Build with an optional progress callback.
func BuildWithProgress(ctx context.Context, n int, maxDepth int, palette [6]byte, progress ProgressFunc) (Table, error) {
	solved := cube.New(n, palette)
	startState := solved.State()

	table := Table{startState: 0}
	queue := make([]queueEntry, 0, 1)
	queue = append(queue, queueEntry{state: startState, depth: 0})

	moves := cube.AllMoves(n)
	visited := 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		entry := queue[0]
		queue = queue[1:]
		visited++
		if progress != nil {
			progress(visited)
		}

		if entry.depth >= maxDepth {
			continue
		}

		for _, m := range moves {
			c, err := cube.FromState(entry.state, palette)
			if err != nil {
				// Unreachable: entry.state was itself produced by this
				// package from a valid cube.
				return nil, err
			}
			if err := c.ApplyMove(m); err != nil {
				// Unreachable: moves come from cube.AllMoves(n), always
				// in range for this cube.
				return nil, err
			}
			next := c.State()
			nextDepth := entry.depth + 1

			recorded, seen := table[next]
			if !seen {
				table[next] = nextDepth
				queue = append(queue, queueEntry{state: next, depth: nextDepth})
				continue
			}
			// Defensive only: in a correct FIFO BFS a state is never
			// rediscovered at a strictly smaller depth than its first
			// recording, so this branch should never execute.
			if recorded > nextDepth {
				table[next] = nextDepth
			}
		}
	}

	return table, nil
}
