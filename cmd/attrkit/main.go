package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "attrkit",
		Short: "Attribute-layer tooling for JSON record data",
		Long: `attrkit shapes JSON record data through an attribute layer:
mass-assignment policy, type casts, and visibility filtering.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
