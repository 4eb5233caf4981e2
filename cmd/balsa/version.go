package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TylerLafayette/balsa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Balsa version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("balsa %s\n", balsa.Version())
	},
}
