package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "An IDA* Rubik's cube solver",
	Long: `Cube scrambles, solves, and inspects N-dimensional Rubik's cubes using
an iterative-deepening A* search guided by a precomputed BFS heuristic
table.`,
	Version: "1.0.0",
}

// Execute runs the root command. It is the sole entry point main calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
}
