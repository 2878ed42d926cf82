package manifest

import (
	"fmt"
	"strings"

	"github.com/srcgen/srcgen/internal/result"
)

// Validate checks required fields and cross references of the manifest and
// fills defaults (kind "class"). Declaration-specific rules are checked by
// the kind handlers.
func Validate(m *Manifest) []result.Diagnostic {
	var errs []result.Diagnostic

	if m == nil {
		return []result.Diagnostic{result.Errorf(result.CodeSchema, result.Location{}, "manifest is nil")}
	}

	if m.Metadata.Version == "" {
		errs = append(errs, result.Errorf(result.CodeSchema, result.Location{}, "metadata.version is required").
			WithSuggestion(`Set metadata.version (e.g. "1.0")`))
	}
	if len(m.Types) == 0 {
		errs = append(errs, result.Errorf(result.CodeSchema, result.Location{}, "manifest declares no types").
			WithSuggestion("Add at least one type"))
	}

	seen := make(map[string]bool)
	for i := range m.Types {
		t := &m.Types[i]
		if t.Name == "" {
			errs = append(errs, result.Errorf(result.CodeSchema, result.Location{},
				"type at index %d has empty name", i).WithSuggestion("Set type.name"))
			continue
		}
		qn := t.QualifiedName()
		if seen[qn] {
			errs = append(errs, result.Errorf(result.CodeSchema, result.Location{Symbol: qn},
				"duplicate type: %s", qn).WithSuggestion("Use unique names within a namespace"))
		}
		seen[qn] = true
		if t.Kind == "" {
			t.Kind = "class"
		}
	}

	for i := range m.Types {
		t := &m.Types[i]
		if t.Name == "" {
			continue
		}
		for _, dep := range t.DependsOn {
			target, ambiguous := m.Resolve(dep, t)
			switch {
			case ambiguous:
				errs = append(errs, ambiguousRef(m, t, "depends_on", dep))
			case target == nil:
				errs = append(errs, result.Errorf(result.CodeSchema, result.Location{Symbol: t.QualifiedName()},
					"depends_on target not found: %s", dep).WithSuggestion("Reference an existing type by name"))
			case target == t:
				errs = append(errs, result.Errorf(result.CodeSchema, result.Location{Symbol: t.QualifiedName()},
					"type depends on itself"))
			}
		}
		for _, b := range t.Bases {
			if _, ambiguous := m.Resolve(baseName(b), t); ambiguous {
				errs = append(errs, ambiguousRef(m, t, "base", baseName(b)))
			}
		}
	}

	return errs
}

func ambiguousRef(m *Manifest, t *Type, what, name string) result.Diagnostic {
	var candidates []string
	for i := range m.Types {
		if m.Types[i].Name == name {
			candidates = append(candidates, m.Types[i].QualifiedName())
		}
	}
	return result.Errorf(result.CodeDependency, result.Location{Symbol: t.QualifiedName()},
		"ambiguous %s reference %q", what, name).
		WithSuggestion("Use the qualified name: " + strings.Join(candidates, " or "))
}

// Dependencies returns the types t must be emitted after: explicit
// depends_on entries and bases that name another manifest type.
func (m *Manifest) Dependencies(t *Type) []*Type {
	var out []*Type
	add := func(name string) {
		dep, _ := m.Resolve(name, t)
		if dep == nil || dep == t {
			return
		}
		for _, o := range out {
			if o == dep {
				return
			}
		}
		out = append(out, dep)
	}
	for _, d := range t.DependsOn {
		add(d)
	}
	for _, b := range t.Bases {
		add(baseName(b))
	}
	return out
}

// baseName strips generic arguments: "Repository<Widget>" -> "Repository".
func baseName(b string) string {
	for i, r := range b {
		if r == '<' {
			return b[:i]
		}
	}
	return b
}

// String describes the manifest for logs.
func (m *Manifest) String() string {
	return fmt.Sprintf("manifest %q v%s (%d types)", m.Metadata.Name, m.Metadata.Version, len(m.Types))
}
