package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "polymap",
	Short: "locate points and find shortest paths over polygonal regions",
	Long: `polymap preprocesses a set of polygonal regions into Kirkpatrick
point-location structures, then answers point-location and
obstacle-free shortest-path queries against them.`,
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
