package cli

import (
	"context"
	"fmt"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/kanavgoyal898/idacube/internal/heuristic"
	"github.com/kanavgoyal898/idacube/internal/persistence"
)

// defaultDBRoot mirrors the original implementation's "./database"
// default, just rooted under a Go-ier name.
const defaultDBRoot = "./database"

// loadOrBuildTable loads a persisted heuristic table for n, building and
// saving one (bounded by maxDepth) on a miss or a checksum failure.
func loadOrBuildTable(ctx context.Context, root string, n, maxDepth int, quiet bool) (heuristic.Table, error) {
	if persistence.Exists(root, n) {
		table, err := persistence.Load(root, n)
		if err == nil {
			return table, nil
		}
		if !quiet {
			fmt.Printf("Heuristic table for %dx%dx%d failed to load (%v), rebuilding...\n", n, n, n, err)
		}
	} else if !quiet {
		fmt.Printf("Heuristic not found, building database for %dx%dx%d (max depth %d)...\n", n, n, n, maxDepth)
	}

	table, err := heuristic.Build(ctx, n, maxDepth, cube.DefaultPalette)
	if err != nil {
		return nil, err
	}
	if err := persistence.Save(root, n, table); err != nil {
		return nil, err
	}
	return table, nil
}
