package handler

import (
	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
)

type classHandler struct{ rules }

func init() {
	registry.Default.Register(&classHandler{rules{
		kind:         "class",
		fields:       true,
		properties:   true,
		methods:      true,
		constructors: true,
		memberAccess: builder.Public,
	}})
}

func (h classHandler) Build(t *manifest.Type, _ *manifest.Manifest) (builder.TypeBuilder, error) {
	return h.build(t, builder.Class)
}
