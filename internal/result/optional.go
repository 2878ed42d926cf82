package result

import (
	"slices"
	"strings"

	"github.com/srcgen/srcgen/internal/syntax"
)

// Optional is the outcome of an emission or combination. The tree and text
// are present together or not at all; diagnostics are always carried.
type Optional struct {
	tree        *syntax.Unit
	text        string
	diagnostics []Diagnostic
}

// Succeeded returns an Optional holding tree and text.
func Succeeded(tree syntax.Unit, text string, diags ...Diagnostic) Optional {
	return Optional{tree: &tree, text: text, diagnostics: slices.Clone(diags)}
}

// Failed returns an Optional with no tree and the given diagnostics.
func Failed(diags ...Diagnostic) Optional {
	return Optional{diagnostics: slices.Clone(diags)}
}

// Tree returns the declaration tree if one was produced.
func (o Optional) Tree() (syntax.Unit, bool) {
	if o.tree == nil {
		return syntax.Unit{}, false
	}
	return *o.tree, true
}

// Text returns the rendered text if a tree was produced.
func (o Optional) Text() (string, bool) {
	if o.tree == nil {
		return "", false
	}
	return o.text, true
}

// Diagnostics returns a copy of every diagnostic, in report order.
func (o Optional) Diagnostics() []Diagnostic {
	return slices.Clone(o.diagnostics)
}

// Success reports a present tree and no error diagnostics.
// Warnings and infos do not affect it.
func (o Optional) Success() bool {
	return o.tree != nil && !HasErrors(o.diagnostics)
}

// Validate returns the valid projection, or nil when unsuccessful.
func (o Optional) Validate() *Valid {
	v, ok := o.TryValidate()
	if !ok {
		return nil
	}
	return &v
}

// TryValidate returns the valid projection and true, or a zero Valid and false.
func (o Optional) TryValidate() (Valid, bool) {
	if !o.Success() {
		return Valid{}, false
	}
	return Valid{tree: *o.tree, text: o.text}, true
}

// IsValid is TryValidate without the value, for guard clauses.
func (o Optional) IsValid() bool { return o.Success() }

// IsNotValid is the negation of IsValid.
func (o Optional) IsNotValid() bool { return !o.Success() }

// ValidateOrError returns the valid projection or a *ValidationError that
// lists every error diagnostic.
func (o Optional) ValidateOrError(message string) (Valid, error) {
	if v, ok := o.TryValidate(); ok {
		return v, nil
	}
	return Valid{}, &ValidationError{Message: message, Diagnostics: Filter(o.diagnostics, SeverityError)}
}

// MustValidate is ValidateOrError that panics with the *ValidationError.
func (o Optional) MustValidate(message string) Valid {
	v, err := o.ValidateOrError(message)
	if err != nil {
		panic(err)
	}
	return v
}

// Valid is an Optional that passed validation: its tree and text are
// always present. Error diagnostics are not retained.
type Valid struct {
	tree syntax.Unit
	text string
}

// Tree returns the declaration tree.
func (v Valid) Tree() syntax.Unit { return v.tree }

// Text returns the rendered text.
func (v Valid) Text() string { return v.text }

// Optional lifts v back into an Optional without diagnostics.
func (v Valid) Optional() Optional {
	return Succeeded(v.tree, v.text)
}

// ValidationError is returned when a caller demands a valid result from an
// unsuccessful one.
type ValidationError struct {
	Message     string
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString("result is not valid")
	}
	if len(e.Diagnostics) == 0 {
		b.WriteString(": no tree was produced")
		return b.String()
	}
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.ID)
		if loc := d.Location.String(); loc != "" {
			b.WriteString(" at ")
			b.WriteString(loc)
		}
		b.WriteString(": ")
		b.WriteString(d.Message)
	}
	return b.String()
}
