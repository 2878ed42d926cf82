package handler

import (
	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
	"github.com/srcgen/srcgen/internal/result"
)

type interfaceHandler struct{ rules }

func init() {
	registry.Default.Register(&interfaceHandler{rules{
		kind:         "interface",
		properties:   true,
		methods:      true,
		forbidden:    []string{"sealed", "abstract"},
		memberAccess: builder.None,
	}})
}

func (h interfaceHandler) Validate(t *manifest.Type) []result.Diagnostic {
	diags := h.rules.Validate(t)
	if len(t.Parameters) > 0 {
		diags = append(diags, result.Errorf(result.CodeKindViolation, at(t, ""),
			"interface cannot declare primary constructor parameters"))
	}
	for _, p := range t.Properties {
		if p.Initializer != "" {
			diags = append(diags, result.Errorf(result.CodeKindViolation, at(t, p.Name),
				"interface property cannot have an initializer"))
		}
	}
	return diags
}

func (h interfaceHandler) Build(t *manifest.Type, _ *manifest.Manifest) (builder.TypeBuilder, error) {
	return h.build(t, builder.Interface)
}
