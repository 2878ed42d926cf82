package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/srcgen/srcgen/internal/result"
)

// errFailed signals that diagnostics were already printed.
var errFailed = errors.New("generation failed")

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.Faint)
)

func severityColor(s result.Severity) *color.Color {
	switch s {
	case result.SeverityError:
		return errorColor
	case result.SeverityWarning:
		return warningColor
	default:
		return infoColor
	}
}

// report prints rep as JSON to stdout or as coloured lines to stderr.
func report(stdout, stderr io.Writer, rep *result.Report, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	for _, d := range rep.Diagnostics {
		printDiagnostic(stderr, d)
	}
	if n := len(rep.Errors()); n > 0 {
		errorColor.Fprintf(stderr, "%d error(s)\n", n)
	}
	return nil
}

func printDiagnostic(w io.Writer, d result.Diagnostic) {
	c := severityColor(d.Severity)
	c.Fprintf(w, "%s %s", d.Severity, d.ID)
	if !d.Location.IsZero() {
		fmt.Fprintf(w, " [%s]", d.Location)
	}
	fmt.Fprintf(w, " %s\n", d.Message)
	if d.Suggestion != "" {
		hintColor.Fprintf(w, "  suggestion: %s\n", d.Suggestion)
	}
}
