package format

import (
	"fmt"
	"strings"
	"time"
)

// ValidationLevel selects how emitted text is checked after rendering.
type ValidationLevel int

const (
	// ValidationNone skips validation entirely.
	ValidationNone ValidationLevel = iota
	// ValidationStructural runs in-process delimiter and duplicate-member checks.
	ValidationStructural
	// ValidationCompiler runs the external Validator tool. Intended for tests;
	// it needs a compiler installed locally.
	ValidationCompiler
)

// DefaultToolTimeout bounds every external tool invocation.
const DefaultToolTimeout = 30 * time.Second

func (l ValidationLevel) String() string {
	switch l {
	case ValidationNone:
		return "none"
	case ValidationStructural:
		return "structural"
	case ValidationCompiler:
		return "compiler"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", int(l))
	}
}

// ParseValidationLevel parses the names produced by ValidationLevel.String.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ValidationNone, nil
	case "structural":
		return ValidationStructural, nil
	case "compiler":
		return ValidationCompiler, nil
	default:
		return ValidationNone, fmt.Errorf("unknown validation level %q (want none, structural or compiler)", s)
	}
}

// Tool describes an external command that reads source on stdin.
type Tool struct {
	// Command is a shell-style command line, e.g. "dotnet csharpier --write-stdout".
	Command string
	// Timeout bounds the run; zero means DefaultToolTimeout.
	Timeout time.Duration
}

// Enabled reports whether a command is configured.
func (t Tool) Enabled() bool {
	return strings.TrimSpace(t.Command) != ""
}

func (t Tool) timeout() time.Duration {
	if t.Timeout <= 0 {
		return DefaultToolTimeout
	}
	return t.Timeout
}

// Options configures rendering of declaration trees.
type Options struct {
	// Indent is the string written once per nesting level.
	Indent string
	// EndOfLine terminates every rendered line.
	EndOfLine string
	// Header is written as comment lines at the top of emitted files. Empty omits it.
	Header string
	// Validation selects the post-render check.
	Validation ValidationLevel
	// Validator is the external tool used by ValidationCompiler.
	Validator Tool
	// Formatter optionally reformats rendered text; unavailable tools are ignored.
	Formatter Tool
}

// DefaultOptions returns the canonical rendering options.
func DefaultOptions() Options {
	return Options{
		Indent:     "    ",
		EndOfLine:  "\n",
		Validation: ValidationNone,
	}
}

// WithDefaults fills unset layout fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Indent == "" {
		o.Indent = d.Indent
	}
	if o.EndOfLine == "" {
		o.EndOfLine = d.EndOfLine
	}
	return o
}

// HeaderTrivia turns header text into comment lines. Lines that already
// start a comment are kept as they are.
func (o Options) HeaderTrivia() []string {
	if strings.TrimSpace(o.Header) == "" {
		return nil
	}
	text := strings.ReplaceAll(o.Header, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			out = append(out, "//")
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "/*"), strings.HasPrefix(trimmed, "*"):
			out = append(out, strings.TrimRight(line, " \t"))
		default:
			out = append(out, "// "+strings.TrimRight(line, " \t"))
		}
	}
	return out
}
