package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/kanavgoyal898/idacube/internal/solver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Shuffle a solved cube and solve it with IDA*",
	Long: `Solve scrambles a solved cube with a random number of moves in
[--shuffle-lower-bound, --shuffle-upper-bound], builds or loads the
heuristic table for --size, and prints the resulting move list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		lower, _ := cmd.Flags().GetInt("shuffle-lower-bound")
		upper, _ := cmd.Flags().GetInt("shuffle-upper-bound")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		headless, _ := cmd.Flags().GetBool("headless")
		dbRoot, _ := cmd.Flags().GetString("db")

		if size < 1 || size > 6 {
			fmt.Printf("Error: --size must be between 1 and 6, got %d\n", size)
			os.Exit(1)
		}

		c := cube.New(size, cube.DefaultPalette)
		steps, err := c.Shuffle(lower, upper, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			fmt.Printf("Error shuffling cube: %v\n", err)
			os.Exit(1)
		}
		if !headless {
			fmt.Printf("Shuffled %dx%dx%d cube in %d moves\n", size, size, size, len(steps))
			fmt.Printf("Shuffled state: %s\n", c.State())
		}

		ctx := context.Background()
		table, err := loadOrBuildTable(ctx, dbRoot, size, maxDepth, headless)
		if err != nil {
			fmt.Printf("Error building heuristic table: %v\n", err)
			os.Exit(1)
		}

		start := time.Now()
		result, err := solver.Solve(ctx, c, table, solver.Options{})
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("Error solving cube: %v\n", err)
			os.Exit(1)
		}

		moveStr := cube.JoinMoves(result.Moves)
		if headless {
			fmt.Print(moveStr)
			return
		}
		fmt.Printf("Solved in %d moves (threshold %d) in %v: %s\n",
			len(result.Moves), result.Threshold, elapsed, moveStr)
	},
}

func init() {
	solveCmd.Flags().IntP("size", "s", 3, "Cube dimension (1..6)")
	solveCmd.Flags().Int("shuffle-lower-bound", 1, "Minimum number of shuffle moves")
	solveCmd.Flags().Int("shuffle-upper-bound", 5, "Maximum number of shuffle moves")
	solveCmd.Flags().Int("max-depth", 5, "Heuristic build depth bound")
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
	solveCmd.Flags().String("db", defaultDBRoot, "Heuristic database root directory")
}
