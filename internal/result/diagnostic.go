package result

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic. Only SeverityError blocks success.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity as its lowercase name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "info":
		*s = SeverityInfo
	case "warning", "warn":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Location points at the source of a diagnostic. Any field may be empty.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	// Symbol names the declaration the diagnostic is about (e.g. "Shop.Gadget").
	Symbol string `json:"symbol,omitempty"`
}

// IsZero reports whether the location carries no information.
func (l Location) IsZero() bool {
	return l == Location{}
}

func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.File)
	if l.Line > 0 {
		if l.Column > 0 {
			fmt.Fprintf(&b, "(%d,%d)", l.Line, l.Column)
		} else {
			fmt.Fprintf(&b, "(%d)", l.Line)
		}
	}
	if l.Symbol != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(l.Symbol)
	}
	return b.String()
}

// Diagnostic is a structured, severity-tagged message.
type Diagnostic struct {
	ID         string   `json:"id"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Location   Location `json:"location,omitzero"`
	Suggestion string   `json:"suggestion,omitempty"`
}

func (d Diagnostic) String() string {
	loc := d.Location.String()
	if loc == "" {
		return fmt.Sprintf("%s %s: %s", d.Severity, d.ID, d.Message)
	}
	return fmt.Sprintf("%s: %s %s: %s", loc, d.Severity, d.ID, d.Message)
}

// Errorf builds an error-severity diagnostic.
func Errorf(id string, loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{ID: id, Severity: SeverityError, Message: fmt.Sprintf(format, args...), Location: loc}
}

// Warningf builds a warning-severity diagnostic.
func Warningf(id string, loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{ID: id, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), Location: loc}
}

// Infof builds an info-severity diagnostic.
func Infof(id string, loc Location, format string, args ...any) Diagnostic {
	return Diagnostic{ID: id, Severity: SeverityInfo, Message: fmt.Sprintf(format, args...), Location: loc}
}

// WithSuggestion returns a copy of d carrying a fix hint.
func (d Diagnostic) WithSuggestion(s string) Diagnostic {
	d.Suggestion = s
	return d
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Filter returns the diagnostics with exactly the given severity.
func Filter(diags []Diagnostic, sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
