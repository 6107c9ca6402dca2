package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofvm",
	Short: "Finite volume solver for hyperbolic conservation laws on structured grids",
	Long:  `Finite volume solver for hyperbolic conservation laws on structured grids`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
