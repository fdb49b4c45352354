package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/kanavgoyal898/idacube/internal/heuristic"
	"github.com/kanavgoyal898/idacube/internal/persistence"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and persist a heuristic table ahead of time",
	Long: `Build runs the bounded BFS from the solved cube explicitly, rather than
lazily on first solve, and writes the resulting table (plus its checksum
sidecar) to --out.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		out, _ := cmd.Flags().GetString("out")

		if size < 1 || size > 6 {
			fmt.Printf("Error: --size must be between 1 and 6, got %d\n", size)
			os.Exit(1)
		}
		if maxDepth < 0 {
			fmt.Printf("Error: --max-depth must be non-negative, got %d\n", maxDepth)
			os.Exit(1)
		}

		start := time.Now()
		visited := 0
		table, err := heuristic.BuildWithProgress(context.Background(), size, maxDepth, cube.DefaultPalette, func(n int) {
			visited = n
		})
		if err != nil {
			fmt.Printf("Error building heuristic table: %v\n", err)
			os.Exit(1)
		}

		if err := persistence.Save(out, size, table); err != nil {
			fmt.Printf("Error saving heuristic table: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Built heuristic table for %dx%dx%d: %d states visited, %d recorded, depth <= %d, in %v\n",
			size, size, size, visited, len(table), maxDepth, time.Since(start))
		fmt.Printf("Saved to %s\n", persistence.Dir(out, size))
	},
}

func init() {
	buildCmd.Flags().IntP("size", "s", 3, "Cube dimension (1..6)")
	buildCmd.Flags().Int("max-depth", 5, "Heuristic build depth bound")
	buildCmd.Flags().String("out", defaultDBRoot, "Directory to write the heuristic table under")
}
