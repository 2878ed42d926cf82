package handler

import (
	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
)

type recordHandler struct {
	rules
	start func(string) builder.TypeBuilder
}

func init() {
	registry.Default.Register(&recordHandler{
		rules: rules{
			kind:         "record",
			fields:       true,
			properties:   true,
			methods:      true,
			constructors: true,
			memberAccess: builder.Public,
		},
		start: builder.Record,
	}, "record_class")
	registry.Default.Register(&recordHandler{
		rules: rules{
			kind:         "record_struct",
			fields:       true,
			properties:   true,
			methods:      true,
			constructors: true,
			forbidden:    []string{"abstract", "sealed", "static"},
			memberAccess: builder.Public,
		},
		start: builder.RecordStruct,
	})
}

func (h recordHandler) Build(t *manifest.Type, _ *manifest.Manifest) (builder.TypeBuilder, error) {
	return h.build(t, h.start)
}
