// Package builder provides immutable builders for C# declarations.
//
// Every With*/Add* method returns a new builder value; the receiver is never
// changed and no slice backing array is shared between two builders, so a
// builder can be used as a template for many variants:
//
//	base := builder.Class("Widget").WithNamespace("Shop")
//	a := base.AddField(builder.Field("Name", "string"))
//	b := base.AddField(builder.Field("Id", "int")) // a is unaffected
//
// Constructors panic on malformed identifiers. That is a caller bug, not a
// runtime condition; code handling untrusted names calls CheckIdentifier first.
package builder

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var keywords = map[string]bool{
	"abstract": true, "as": true, "base": true, "bool": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "checked": true,
	"class": true, "const": true, "continue": true, "decimal": true, "default": true,
	"delegate": true, "do": true, "double": true, "else": true, "enum": true,
	"event": true, "explicit": true, "extern": true, "false": true, "finally": true,
	"fixed": true, "float": true, "for": true, "foreach": true, "goto": true,
	"if": true, "implicit": true, "in": true, "int": true, "interface": true,
	"internal": true, "is": true, "lock": true, "long": true, "namespace": true,
	"new": true, "null": true, "object": true, "operator": true, "out": true,
	"override": true, "params": true, "private": true, "protected": true, "public": true,
	"readonly": true, "ref": true, "return": true, "sbyte": true, "sealed": true,
	"short": true, "sizeof": true, "stackalloc": true, "static": true, "string": true,
	"struct": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "uint": true, "ulong": true, "unchecked": true,
	"unsafe": true, "ushort": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "while": true,
}

// CheckIdentifier reports why name is not a usable C# identifier.
// A leading '@' escapes keywords.
func CheckIdentifier(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("identifier is empty")
	}
	body, verbatim := strings.CutPrefix(name, "@")
	if body == "" {
		return fmt.Errorf("identifier %q is empty after '@'", name)
	}
	for i, r := range body {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return fmt.Errorf("identifier %q contains invalid character %q", name, r)
		}
	}
	if !verbatim && keywords[body] {
		return fmt.Errorf("identifier %q is a reserved keyword (prefix it with '@')", name)
	}
	return nil
}

// CheckQualifiedName validates a dotted name such as "System.Collections.Generic".
func CheckQualifiedName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("qualified name is empty")
	}
	for _, part := range strings.Split(name, ".") {
		if err := CheckIdentifier(part); err != nil {
			return fmt.Errorf("qualified name %q: %w", name, err)
		}
	}
	return nil
}

func mustIdentifier(what, name string) {
	if err := CheckIdentifier(name); err != nil {
		panic(fmt.Sprintf("builder: %s: %v", what, err))
	}
}

func mustQualified(what, name string) {
	if err := CheckQualifiedName(name); err != nil {
		panic(fmt.Sprintf("builder: %s: %v", what, err))
	}
}

func mustText(what, s string) {
	if strings.TrimSpace(s) == "" {
		panic(fmt.Sprintf("builder: %s is empty", what))
	}
}

// with appends to a clipped copy so the result never aliases s.
func with[T any](s []T, v ...T) []T {
	return append(slices.Clip(s), v...)
}

// Accessibility is a C# access modifier. None writes no modifier.
type Accessibility string

const (
	None              Accessibility = ""
	Public            Accessibility = "public"
	Internal          Accessibility = "internal"
	Protected         Accessibility = "protected"
	Private           Accessibility = "private"
	ProtectedInternal Accessibility = "protected internal"
	PrivateProtected  Accessibility = "private protected"
)

// ParseAccessibility maps the C# spelling (or "none") to an Accessibility.
func ParseAccessibility(s string) (Accessibility, error) {
	switch a := Accessibility(strings.Join(strings.Fields(strings.ToLower(s)), " ")); a {
	case Public, Internal, Protected, Private, ProtectedInternal, PrivateProtected:
		return a, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("unknown accessibility %q", s)
	}
}

func modifiers(access Accessibility, rest ...string) []string {
	out := make([]string, 0, len(rest)+1)
	if access != None {
		out = append(out, string(access))
	}
	for _, m := range rest {
		if m != "" && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}
