package cli

import (
	"fmt"
	"os"

	"github.com/kanavgoyal898/idacube/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a cube state to the terminal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		state, _ := cmd.Flags().GetString("state")
		noColor, _ := cmd.Flags().GetBool("no-color")

		var c *cube.Cube
		var err error
		if state != "" {
			c, err = cube.FromState(state, cube.DefaultPalette)
			if err != nil {
				fmt.Printf("Error parsing state: %v\n", err)
				os.Exit(1)
			}
		} else {
			c = cube.New(size, cube.DefaultPalette)
		}

		fmt.Print(c.Render(!noColor))
	},
}

func init() {
	showCmd.Flags().IntP("size", "s", 3, "Cube dimension, used when --state is omitted")
	showCmd.Flags().String("state", "", "Cube state string to render (default: solved cube of --size)")
	showCmd.Flags().Bool("no-color", false, "Render plain palette letters instead of lipgloss colors")
}
