package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/srcgen/srcgen/internal/config"
	_ "github.com/srcgen/srcgen/internal/handler" // register handlers
	"github.com/srcgen/srcgen/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "srcgen",
	Short: "Generate C# source files from declarative manifests",
	Long: `srcgen reads a JSON or HCL manifest describing C# declarations, emits
each one, and combines the results into formatted source files.`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(kindsCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default ./srcgen.{toml,yaml,json})")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "", "override log.level (debug|info|warn|error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// settings is the loaded configuration shared by subcommands.
var settings *config.Config

func setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(l)

	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("--color: want auto, on or off, got %q", mode)
	}

	settings = cfg
	return nil
}
