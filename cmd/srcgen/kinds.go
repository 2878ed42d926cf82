package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcgen/srcgen/internal/registry"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List supported declaration kinds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, k := range registry.Default.ListSupportedKinds() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}
