// Package handler implements one registry.Handler per declaration kind.
// Handlers register themselves in init; import the package for its side
// effects.
package handler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/naming"
	"github.com/srcgen/srcgen/internal/result"
)

// rules toggles the member shapes a kind accepts.
type rules struct {
	kind         string
	fields       bool
	properties   bool
	methods      bool
	constructors bool
	enumMembers  bool
	forbidden    []string // type modifiers the kind rejects
	memberAccess builder.Accessibility
}

func at(t *manifest.Type, member string) result.Location {
	if member == "" {
		return result.Location{Symbol: t.QualifiedName()}
	}
	return result.Location{Symbol: t.QualifiedName() + "." + member}
}

// validate runs the checks shared by every kind, then the kind's member rules.
func (r rules) validate(t *manifest.Type) []result.Diagnostic {
	var errs []result.Diagnostic
	name := func(what, member, value string) {
		if err := builder.CheckIdentifier(value); err != nil {
			errs = append(errs, result.Errorf(result.CodeInvalidName, at(t, member), "%s: %v", what, err))
		}
	}
	qualified := func(what, value string) {
		if err := builder.CheckQualifiedName(value); err != nil {
			errs = append(errs, result.Errorf(result.CodeInvalidName, at(t, ""), "%s: %v", what, err))
		}
	}
	access := func(member, value string) {
		if _, err := builder.ParseAccessibility(value); err != nil {
			errs = append(errs, result.Errorf(result.CodeInvalidValue, at(t, member), "%v", err).
				WithSuggestion("Use public, internal, protected, private, protected internal or private protected"))
		}
	}
	typeText := func(member, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, result.Errorf(result.CodeInvalidValue, at(t, member), "type is required").
				WithSuggestion("Set type (e.g. string)"))
		}
	}
	violation := func(member, format string, args ...any) {
		errs = append(errs, result.Errorf(result.CodeKindViolation, at(t, member), format, args...))
	}

	name("type name", "", t.Name)
	if t.Namespace != "" {
		qualified("namespace", t.Namespace)
	}
	for _, u := range t.Usings {
		qualified("using", u)
	}
	for _, u := range t.StaticUsings {
		qualified("using static", u)
	}
	access("", t.Accessibility)
	for _, tp := range t.TypeParams {
		name("type parameter", "", tp)
	}
	for _, mod := range t.Modifiers {
		if slices.Contains(r.forbidden, mod) {
			errs = append(errs, result.Errorf(result.CodeUnsupported, at(t, ""), "%s cannot be %s", r.kind, mod))
		}
	}
	for _, p := range t.Parameters {
		name("parameter name", p.Name, p.Name)
		typeText(p.Name, p.Type)
	}

	if len(t.Fields) > 0 && !r.fields {
		violation("", "%s cannot declare fields", r.kind)
	}
	for _, f := range t.Fields {
		name("field name", f.Name, f.Name)
		typeText(f.Name, f.Type)
		access(f.Name, f.Accessibility)
		if f.Const && f.Initializer == "" {
			violation(f.Name, "const field needs an initializer")
		}
		if f.Const && (f.ReadOnly || f.Static) {
			violation(f.Name, "const field cannot also be static or readonly")
		}
	}

	if len(t.Properties) > 0 && !r.properties {
		violation("", "%s cannot declare properties", r.kind)
	}
	for _, p := range t.Properties {
		name("property name", p.Name, p.Name)
		typeText(p.Name, p.Type)
		access(p.Name, p.Accessibility)
		access(p.Name, p.SetterAccess)
		switch p.Access {
		case "", "get_set", "get", "get_init":
		default:
			errs = append(errs, result.Errorf(result.CodeInvalidValue, at(t, p.Name), "unknown property access %q", p.Access).
				WithSuggestion("Use get_set, get or get_init"))
		}
	}

	for _, m := range t.Methods {
		switch {
		case m.Constructor && !r.constructors:
			violation(m.Name, "%s cannot declare constructors", r.kind)
		case !m.Constructor && !r.methods:
			violation(m.Name, "%s cannot declare methods", r.kind)
		}
		if !m.Constructor {
			name("method name", m.Name, m.Name)
		}
		access(m.Name, m.Accessibility)
		for _, tp := range m.TypeParams {
			name("type parameter", m.Name, tp)
		}
		for _, p := range m.Params {
			name("parameter name", m.Name, p.Name)
			typeText(m.Name, p.Type)
		}
		if len(m.Body) > 0 && m.Expression != "" {
			violation(m.Name, "method has both body and expression")
		}
	}

	if len(t.Members) > 0 && !r.enumMembers {
		violation("", "%s cannot declare enum members", r.kind)
	}
	for _, em := range t.Members {
		name("enum member", em.Name, em.Name)
	}

	return errs
}

// warnings reports best-practice issues that do not block generation.
func (r rules) warnings(t *manifest.Type) []result.Diagnostic {
	var warns []result.Diagnostic
	typeAccess, _ := builder.ParseAccessibility(t.Accessibility)
	if (typeAccess == builder.None || typeAccess == builder.Public) && t.Doc == "" {
		warns = append(warns, result.Infof(result.CodeMissingDoc, at(t, ""), "public %s %s has no documentation", r.kind, t.Name))
	}
	// Verbatim identifiers (@class) keep their spelling.
	if want := naming.Pascal(t.Name); !strings.HasPrefix(t.Name, "@") && want != "" && want != t.Name {
		warns = append(warns, result.Infof(result.CodeNaming, at(t, ""), "type name %s is not PascalCase", t.Name).
			WithSuggestion("Rename to "+want))
	}
	for _, f := range t.Fields {
		a, _ := builder.ParseAccessibility(f.Accessibility)
		if (a == builder.None || a == builder.Public) && !f.ReadOnly && !f.Const {
			warns = append(warns, result.Warningf(result.CodeMutableField, at(t, f.Name),
				"public mutable field %s", f.Name).WithSuggestion("Use a property or mark the field readonly"))
		}
	}
	return warns
}

// Validate implements registry.Handler.
func (r rules) Validate(t *manifest.Type) []result.Diagnostic {
	return append(r.validate(t), r.warnings(t)...)
}

// Kind implements registry.Handler.
func (r rules) Kind() string { return r.kind }

// build fills start with everything declared on t. Builder preconditions
// surface as an error rather than a panic.
func (r rules) build(t *manifest.Type, start func(string) builder.TypeBuilder) (b builder.TypeBuilder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("build %s: %v", t.QualifiedName(), rec)
		}
	}()

	b = start(t.Name).WithNamespace(t.Namespace)
	if a, aerr := builder.ParseAccessibility(t.Accessibility); aerr == nil && t.Accessibility != "" {
		b = b.WithAccessibility(a)
	}
	b = b.WithModifiers(t.Modifiers...)
	if t.Doc != "" {
		b = b.WithDoc(docLines(t.Doc)...)
	}
	for _, a := range t.Attributes {
		b = b.AddAttribute(a)
	}
	for _, tp := range t.TypeParams {
		b = b.AddTypeParameter(tp)
	}
	for _, c := range t.Constraints {
		b = b.AddConstraint(c)
	}
	for _, base := range t.Bases {
		b = b.AddBase(base)
	}
	for _, u := range t.Usings {
		b = b.AddUsing(u)
	}
	for _, u := range t.StaticUsings {
		b = b.AddStaticUsing(u)
	}
	for _, p := range t.Parameters {
		b = b.AddPrimaryParameter(param(p))
	}
	for _, f := range t.Fields {
		b = b.AddField(r.field(f))
	}
	for _, p := range t.Properties {
		b = b.AddProperty(r.property(p))
	}
	for _, m := range t.Methods {
		b = b.AddMethod(r.method(m))
	}
	for _, em := range t.Members {
		e := builder.EnumMember(em.Name).WithValue(em.Value)
		if em.Doc != "" {
			e = e.WithDoc(docLines(em.Doc)...)
		}
		b = b.AddEnumMember(e)
	}
	return b, nil
}

// accessibility resolves a member's access, falling back to the kind default.
func (r rules) accessibility(s string) builder.Accessibility {
	if s == "" {
		return r.memberAccess
	}
	a, _ := builder.ParseAccessibility(s)
	return a
}

func (r rules) field(f manifest.Field) builder.FieldBuilder {
	b := builder.Field(f.Name, f.Type).WithAccessibility(r.accessibility(f.Accessibility))
	switch {
	case f.Const:
		b = b.Const()
	case f.Static:
		b = b.Static()
	}
	if f.ReadOnly {
		b = b.ReadOnly()
	}
	if f.Initializer != "" {
		b = b.WithInitializer(f.Initializer)
	}
	if f.Doc != "" {
		b = b.WithDoc(docLines(f.Doc)...)
	}
	return b
}

func (r rules) property(p manifest.Property) builder.PropertyBuilder {
	b := builder.Property(p.Name, p.Type).
		WithAccessibility(r.accessibility(p.Accessibility)).
		WithModifiers(p.Modifiers...)
	switch p.Access {
	case "get":
		b = b.GetOnly()
	case "get_init":
		b = b.InitOnly()
	}
	if p.SetterAccess != "" {
		a, _ := builder.ParseAccessibility(p.SetterAccess)
		b = b.WithSetterAccessibility(a)
	}
	if p.Expression != "" {
		b = b.WithExpression(p.Expression)
	}
	if p.Initializer != "" {
		b = b.WithInitializer(p.Initializer)
	}
	if p.Doc != "" {
		b = b.WithDoc(docLines(p.Doc)...)
	}
	return b
}

func (r rules) method(m manifest.Method) builder.MethodBuilder {
	var b builder.MethodBuilder
	if m.Constructor {
		b = builder.Constructor().WithInitializer(m.Initializer)
	} else {
		b = builder.Method(m.Name)
		if m.Returns != "" {
			b = b.WithReturnType(m.Returns)
		}
	}
	b = b.WithAccessibility(r.accessibility(m.Accessibility)).WithModifiers(m.Modifiers...)
	for _, tp := range m.TypeParams {
		b = b.AddTypeParameter(tp)
	}
	for _, p := range m.Params {
		b = b.AddParameter(param(p))
	}
	switch {
	case m.Expression != "":
		b = b.WithExpression(m.Expression)
	case len(m.Body) > 0:
		b = b.WithBody(m.Body...)
	case r.kind != "interface" && !hasAny(m.Modifiers, "abstract", "extern", "partial"):
		b = b.WithBody()
	}
	if m.Doc != "" {
		b = b.WithDoc(docLines(m.Doc)...)
	}
	return b
}

func param(p manifest.Param) builder.ParameterBuilder {
	b := builder.Parameter(p.Name, p.Type)
	if p.Modifier != "" {
		b = b.WithModifier(p.Modifier)
	}
	if p.Default != "" {
		b = b.WithDefault(p.Default)
	}
	return b
}

func docLines(doc string) []string {
	return strings.Split(strings.TrimRight(strings.ReplaceAll(doc, "\r\n", "\n"), "\n"), "\n")
}

func hasAny(mods []string, want ...string) bool {
	return slices.ContainsFunc(mods, func(m string) bool { return slices.Contains(want, m) })
}
