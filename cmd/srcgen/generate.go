package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/srcgen/srcgen/internal/generator"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/result"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] <manifest>",
	Short: "Generate C# files from a manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "output", "output directory for generated files")
	generateCmd.Flags().Bool("split", false, "write one file per declaration")
	generateCmd.Flags().Int("parallel", 0, "max parallel declarations per tier (0 = config or auto)")
	generateCmd.Flags().Bool("json", false, "print the report as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	outDir, _ := cmd.Flags().GetString("output")
	jsonOut, _ := cmd.Flags().GetBool("json")

	opts := settings.GeneratorOptions()
	if split, _ := cmd.Flags().GetBool("split"); split {
		opts.SplitFiles = true
	}
	if n, _ := cmd.Flags().GetInt("parallel"); n > 0 {
		opts.MaxParallel = n
	}

	rep, err := generate(args[0], opts)
	if err != nil {
		return err
	}
	if err := report(cmd.OutOrStdout(), cmd.ErrOrStderr(), rep, jsonOut); err != nil {
		return err
	}
	if !rep.Success {
		return errFailed
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	names := make([]string, 0, len(rep.Files))
	for name := range rep.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, rep.Files[name], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		slog.Info("wrote file", "path", path, "bytes", len(rep.Files[name]))
		if !jsonOut {
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		}
	}
	return nil
}

func generate(path string, opts generator.Options) (*result.Report, error) {
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded manifest", "path", path, "types", len(m.Types))
	return generator.New(opts).Generate(m), nil
}
