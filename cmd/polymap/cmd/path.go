package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngeo/polymap/geom"
)

var pathConfigVal string

// pathCmd represents the path command.
var pathCmd = &cobra.Command{
	Use:   "path REGIONFILE X1 Y1 X2 Y2",
	Short: "find the shortest obstacle-free path between two points",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		coord, err := loadCoordinator(args[0], pathConfigVal)
		check(err)

		start := geom.NewPoint(parseFloat(args[1]), parseFloat(args[2]))
		end := geom.NewPoint(parseFloat(args[3]), parseFloat(args[4]))

		if err := coord.SetFirstPoint(start); err != nil {
			fmt.Println("no path:", err)
			return
		}
		path, err := coord.GetShortestPath(end)
		if err != nil {
			fmt.Println("no path:", err)
			return
		}
		for _, p := range path {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	},
}

func init() {
	RootCmd.AddCommand(pathCmd)
	pathCmd.Flags().StringVar(&pathConfigVal, "config", "", "build settings YAML (defaults used if omitted)")
}
