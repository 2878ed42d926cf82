package handler

import (
	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
	"github.com/srcgen/srcgen/internal/result"
)

type structHandler struct{ rules }

func init() {
	registry.Default.Register(&structHandler{rules{
		kind:         "struct",
		fields:       true,
		properties:   true,
		methods:      true,
		constructors: true,
		forbidden:    []string{"abstract", "sealed", "static"},
		memberAccess: builder.Public,
	}})
}

func (h structHandler) Validate(t *manifest.Type) []result.Diagnostic {
	diags := h.rules.Validate(t)
	for _, f := range t.Fields {
		if f.Initializer != "" && !f.Static && !f.Const {
			diags = append(diags, result.Warningf(result.CodeKindViolation, at(t, f.Name),
				"instance field initializer on struct %s requires C# 10", t.Name))
		}
	}
	return diags
}

func (h structHandler) Build(t *manifest.Type, _ *manifest.Manifest) (builder.TypeBuilder, error) {
	return h.build(t, builder.Struct)
}
