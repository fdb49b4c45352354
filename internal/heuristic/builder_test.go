package heuristic

import (
	"context"
	"testing"

	"github.com/kanavgoyal898/idacube/internal/cube"
)

func TestBuildSolvedStateHasDepthZero(t *testing.T) {
	table, err := Build(context.Background(), 3, 2, cube.DefaultPalette)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	solved := cube.New(3, cube.DefaultPalette)
	if d, ok := table[solved.State()]; !ok || d != 0 {
		t.Errorf("table[solved] = (%d, %v), want (0, true)", d, ok)
	}
}

func TestBuildDepthOneContainsEveryFirstMove(t *testing.T) {
	table, err := Build(context.Background(), 3, 1, cube.DefaultPalette)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, m := range cube.AllMoves(3) {
		c := cube.New(3, cube.DefaultPalette)
		if err := c.ApplyMove(m); err != nil {
			t.Fatalf("ApplyMove(%v): %v", m, err)
		}
		d, ok := table[c.State()]
		if !ok {
			t.Errorf("state after %v missing from depth-1 table", m)
			continue
		}
		if d != 1 {
			t.Errorf("state after %v recorded at depth %d, want 1", m, d)
		}
	}
}

func TestBuildRecordsFirstDiscoveryDepthNotLater(t *testing.T) {
	// A state reachable in one move from solved must never be recorded
	// at a depth greater than 1, even though later BFS levels may also
	// reach it by another path.
	table, err := Build(context.Background(), 2, 3, cube.DefaultPalette)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := cube.AllMoves(2)[0]
	c := cube.New(2, cube.DefaultPalette)
	c.ApplyMove(m)
	if d := table[c.State()]; d != 1 {
		t.Errorf("one-move state recorded at depth %d, want 1", d)
	}
}

func TestBuildRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Build(ctx, 3, 3, cube.DefaultPalette); err != ErrCancelled {
		t.Errorf("Build on a cancelled context = %v, want ErrCancelled", err)
	}
}

func TestBuildWithProgressReportsMonotonically(t *testing.T) {
	var calls []int
	_, err := BuildWithProgress(context.Background(), 2, 2, cube.DefaultPalette, func(visited int) {
		calls = append(calls, visited)
	})
	if err != nil {
		t.Fatalf("BuildWithProgress: %v", err)
	}
	if len(calls) == 0 {
		t.Fatal("expected at least one progress callback")
	}
	for i := 1; i < len(calls); i++ {
		if calls[i] <= calls[i-1] {
			t.Errorf("progress not monotonically increasing: %v", calls)
			break
		}
	}
}

func TestBuildMaxDepthZeroOnlyHasSolved(t *testing.T) {
	table, err := Build(context.Background(), 3, 0, cube.DefaultPalette)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(table) != 1 {
		t.Errorf("maxDepth=0 table has %d entries, want 1 (solved only)", len(table))
	}
}
