package main

import (
	"os"

	"github.com/graalign/graalign/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graalign",
	Short: "Structural alignment for program dependence graphs",
	Long: `graalign compares two program dependence graphs vertex by vertex,
combining vertex-type penalties and graphlet-based structural signatures
into a seed-and-expand alignment search inspired by GRAAL-style biological
network alignment.

Features:
  • Vertex-type and subtype penalty cost model
  • Graphlet degree signature distance
  • Hungarian-matching neighborhood cost
  • Concurrent seed-and-expand alignment search
  • Batch alignment against a directory of suspects`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewAlignCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
