package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ngeo/polymap/geom"
)

var locateConfigVal string

// locateCmd represents the locate command.
var locateCmd = &cobra.Command{
	Use:   "locate REGIONFILE X Y",
	Short: "report which region/triangle contains a point",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		coord, err := loadCoordinator(args[0], locateConfigVal)
		check(err)

		x, y := parseFloat(args[1]), parseFloat(args[2])
		tri, idx, found := coord.Locate(geom.NewPoint(x, y), nil)
		if !found {
			fmt.Println("outside")
			return
		}
		fmt.Printf("region %d, triangle %v\n", idx, tri.Points())
	},
}

func init() {
	RootCmd.AddCommand(locateCmd)
	locateCmd.Flags().StringVar(&locateConfigVal, "config", "", "build settings YAML (defaults used if omitted)")
}

func check(err error) {
	if err != nil {
		fmt.Println("error,", err)
		os.Exit(-1)
	}
}

func parseFloat(s string) float64 {
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		fmt.Println("error, invalid number:", s)
		os.Exit(-1)
	}
	return f
}
