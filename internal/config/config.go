// Package config loads srcgen settings from defaults, an optional config
// file and SRCGEN_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/generator"
)

const (
	// AppName is the application name.
	AppName = "srcgen"
	// EnvPrefix prefixes every environment override, e.g. SRCGEN_FORMAT_INDENT.
	EnvPrefix = "SRCGEN"
)

// Config is the full settings tree.
type Config struct {
	Format    Format    `mapstructure:"format"`
	Generator Generator `mapstructure:"generator"`
	Log       Log       `mapstructure:"log"`
}

// Format mirrors format.Options in config-file spelling.
type Format struct {
	Indent     string `mapstructure:"indent"`
	EndOfLine  string `mapstructure:"end_of_line"`
	Header     string `mapstructure:"header"`
	Validation string `mapstructure:"validation"`
	Validator  Tool   `mapstructure:"validator"`
	Formatter  Tool   `mapstructure:"formatter"`
}

// Tool is an external command line and its timeout.
type Tool struct {
	Command string        `mapstructure:"command"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Generator holds pipeline settings.
type Generator struct {
	MaxParallel int    `mapstructure:"max_parallel"`
	SplitFiles  bool   `mapstructure:"split_files"`
	OutputFile  string `mapstructure:"output_file"`
}

// Log selects logger level and output format.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	f := format.DefaultOptions()
	return Config{
		Format: Format{
			Indent:     f.Indent,
			EndOfLine:  f.EndOfLine,
			Validation: f.Validation.String(),
			Validator:  Tool{Timeout: format.DefaultToolTimeout},
			Formatter:  Tool{Timeout: format.DefaultToolTimeout},
		},
		Generator: Generator{OutputFile: generator.DefaultOutputFile},
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Load reads settings. With path empty, ./srcgen.{toml,yaml,json} is used
// when present; a missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("format.indent", defaults.Format.Indent)
	v.SetDefault("format.end_of_line", defaults.Format.EndOfLine)
	v.SetDefault("format.header", defaults.Format.Header)
	v.SetDefault("format.validation", defaults.Format.Validation)
	v.SetDefault("format.validator.command", defaults.Format.Validator.Command)
	v.SetDefault("format.validator.timeout", defaults.Format.Validator.Timeout)
	v.SetDefault("format.formatter.command", defaults.Format.Formatter.Command)
	v.SetDefault("format.formatter.timeout", defaults.Format.Formatter.Timeout)
	v.SetDefault("generator.max_parallel", defaults.Generator.MaxParallel)
	v.SetDefault("generator.split_files", defaults.Generator.SplitFiles)
	v.SetDefault("generator.output_file", defaults.Generator.OutputFile)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := format.ParseValidationLevel(cfg.Format.Validation); err != nil {
		return nil, fmt.Errorf("format.validation: %w", err)
	}
	return &cfg, nil
}

// FormatOptions converts the format section. Load has already checked the
// validation level.
func (c *Config) FormatOptions() format.Options {
	level, _ := format.ParseValidationLevel(c.Format.Validation)
	return format.Options{
		Indent:     c.Format.Indent,
		EndOfLine:  c.Format.EndOfLine,
		Header:     c.Format.Header,
		Validation: level,
		Validator:  format.Tool{Command: c.Format.Validator.Command, Timeout: c.Format.Validator.Timeout},
		Formatter:  format.Tool{Command: c.Format.Formatter.Command, Timeout: c.Format.Formatter.Timeout},
	}.WithDefaults()
}

// GeneratorOptions converts the generator section, including format options.
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		MaxParallel: c.Generator.MaxParallel,
		SplitFiles:  c.Generator.SplitFiles,
		OutputFile:  c.Generator.OutputFile,
		Format:      c.FormatOptions(),
	}
}
