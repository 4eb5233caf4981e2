package main

import (
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "balsa",
	Short: "Balsa - a delightfully simple HTML template engine",
	Long: `Balsa compiles HTML templates with typed, named parameters and renders
them against a set of runtime values.

Templates embed parameter blocks like {{ title : string }} and declaration
blocks like {{@ accent : color = "#ff0000" }}. Parameters are type-checked
at compile time and cast at render time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
