package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <manifest>",
	Short: "Validate a manifest and report diagnostics without writing files",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	jsonOut, _ := cmd.Flags().GetBool("json")

	rep, err := generate(args[0], settings.GeneratorOptions())
	if err != nil {
		return err
	}
	if err := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), rep, jsonOut); err != nil {
		return err
	}
	if !rep.Success {
		return errFailed
	}
	return nil
}
