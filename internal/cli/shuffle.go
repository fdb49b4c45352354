package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/spf13/cobra"
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Print a random scramble and the resulting state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		lower, _ := cmd.Flags().GetInt("lower")
		upper, _ := cmd.Flags().GetInt("upper")

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

		moves := make([]cube.Move, len(steps))
		for i, s := range steps {
			moves[i] = s.Move
		}
		fmt.Printf("Moves: %s\n", cube.JoinMoves(moves))
		fmt.Printf("State: %s\n", c.State())
	},
}

func init() {
	shuffleCmd.Flags().IntP("size", "s", 3, "Cube dimension (1..6)")
	shuffleCmd.Flags().Int("lower", 1, "Minimum number of shuffle moves")
	shuffleCmd.Flags().Int("upper", 5, "Maximum number of shuffle moves")
}
