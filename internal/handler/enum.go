package handler

import (
	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
	"github.com/srcgen/srcgen/internal/result"
)

type enumHandler struct{ rules }

func init() {
	registry.Default.Register(&enumHandler{rules{
		kind:        "enum",
		enumMembers: true,
		forbidden:   []string{"abstract", "sealed", "static", "partial"},
	}})
}

func (h enumHandler) Validate(t *manifest.Type) []result.Diagnostic {
	diags := h.rules.Validate(t)
	if len(t.Members) == 0 {
		diags = append(diags, result.Errorf(result.CodeKindViolation, at(t, ""), "enum has no members").
			WithSuggestion("Add at least one member block"))
	}
	if len(t.Bases) > 1 {
		diags = append(diags, result.Errorf(result.CodeKindViolation, at(t, ""),
			"enum can have at most one underlying type, got %d", len(t.Bases)))
	}
	if len(t.TypeParams) > 0 || len(t.Parameters) > 0 {
		diags = append(diags, result.Errorf(result.CodeKindViolation, at(t, ""), "enum cannot be generic or take parameters"))
	}
	seen := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		if seen[m.Name] {
			diags = append(diags, result.Errorf(result.CodeDuplicateName, at(t, m.Name), "duplicate enum member %s", m.Name))
		}
		seen[m.Name] = true
	}
	return diags
}

func (h enumHandler) Build(t *manifest.Type, _ *manifest.Manifest) (builder.TypeBuilder, error) {
	return h.build(t, builder.Enum)
}
