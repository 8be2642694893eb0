// Package cmd wires the millnodes command-line interface.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "millnodes",
		Short: "Parametric cabinet and millwork geometry builder",
		Long: `Millnodes computes parametric millwork geometry: single panels and
complete cabinet carcasses derived from a few exterior dimensions and
joinery parameters.

Every part is tagged with its identity and grain direction, so the
output feeds manufacturing tooling directly: STL for solids, YAML or
JSON cut lists for the shop.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newPanelCmd())
	cmd.AddCommand(newCarcassCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
