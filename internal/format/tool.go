package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ErrToolUnavailable is returned when an external tool cannot be used:
// not configured, not installed, or timed out.
var ErrToolUnavailable = errors.New("external tool unavailable")

// Outcome is the captured result of one tool run.
type Outcome struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes tool with input on stdin and waits at most tool.Timeout.
// A non-zero exit is not an error; callers decide what it means.
func Run(tool Tool, input string) (Outcome, error) {
	if !tool.Enabled() {
		return Outcome{}, ErrToolUnavailable
	}
	args, err := shell.Fields(tool.Command, os.Getenv)
	if err != nil || len(args) == 0 {
		return Outcome{}, fmt.Errorf("%w: parse command %q: %v", ErrToolUnavailable, tool.Command, err)
	}
	path, err := exec.LookPath(args[0])
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrToolUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), tool.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if ctx.Err() != nil {
		return Outcome{}, fmt.Errorf("%w: %s timed out after %s", ErrToolUnavailable, args[0], tool.timeout())
	}
	out := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return Outcome{}, fmt.Errorf("%w: %v", ErrToolUnavailable, runErr)
		}
		out.ExitCode = exitErr.ExitCode()
	}
	return out, nil
}

// Reformat pipes text through opts.Formatter. Any failure returns text unchanged.
func Reformat(opts Options, text string) string {
	if !opts.Formatter.Enabled() {
		return text
	}
	out, err := Run(opts.Formatter, text)
	if err != nil {
		slog.Debug("formatter skipped", "command", opts.Formatter.Command, "error", err)
		return text
	}
	if out.ExitCode != 0 || strings.TrimSpace(out.Stdout) == "" {
		slog.Debug("formatter skipped", "command", opts.Formatter.Command, "exit_code", out.ExitCode)
		return text
	}
	return out.Stdout
}
