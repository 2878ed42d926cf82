package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcgen/srcgen/internal/manifest"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <manifest.json>",
	Short: "Print a manifest as HCL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "write HCL to this file instead of stdout")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	out := manifest.EncodeHCL(m)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
