package manifest

import (
	"github.com/zclconf/go-cty/cty"
)

// TemplateContext describes t as a cty object for override templates.
// Lists are tuples so empty lists need no element type.
func (t *Type) TemplateContext() cty.Value {
	fields := make([]cty.Value, 0, len(t.Fields))
	for _, f := range t.Fields {
		fields = append(fields, cty.ObjectVal(map[string]cty.Value{
			"name":          cty.StringVal(f.Name),
			"type":          cty.StringVal(f.Type),
			"accessibility": cty.StringVal(f.Accessibility),
			"initializer":   cty.StringVal(f.Initializer),
			"doc":           cty.StringVal(f.Doc),
			"static":        cty.BoolVal(f.Static),
			"readonly":      cty.BoolVal(f.ReadOnly),
		}))
	}
	props := make([]cty.Value, 0, len(t.Properties))
	for _, p := range t.Properties {
		props = append(props, cty.ObjectVal(map[string]cty.Value{
			"name":        cty.StringVal(p.Name),
			"type":        cty.StringVal(p.Type),
			"access":      cty.StringVal(p.Access),
			"initializer": cty.StringVal(p.Initializer),
			"doc":         cty.StringVal(p.Doc),
		}))
	}
	methods := make([]cty.Value, 0, len(t.Methods))
	for _, md := range t.Methods {
		params := make([]cty.Value, 0, len(md.Params))
		for _, p := range md.Params {
			params = append(params, cty.ObjectVal(map[string]cty.Value{
				"name":    cty.StringVal(p.Name),
				"type":    cty.StringVal(p.Type),
				"default": cty.StringVal(p.Default),
			}))
		}
		methods = append(methods, cty.ObjectVal(map[string]cty.Value{
			"name":       cty.StringVal(md.Name),
			"returns":    cty.StringVal(md.Returns),
			"params":     tuple(params),
			"body":       stringList(md.Body),
			"expression": cty.StringVal(md.Expression),
		}))
	}
	members := make([]cty.Value, 0, len(t.Members))
	for _, em := range t.Members {
		members = append(members, cty.ObjectVal(map[string]cty.Value{
			"name":  cty.StringVal(em.Name),
			"value": cty.StringVal(em.Value),
		}))
	}

	return cty.ObjectVal(map[string]cty.Value{
		"name":           cty.StringVal(t.Name),
		"kind":           cty.StringVal(t.Kind),
		"namespace":      cty.StringVal(t.Namespace),
		"qualified_name": cty.StringVal(t.QualifiedName()),
		"accessibility":  cty.StringVal(t.Accessibility),
		"doc":            cty.StringVal(t.Doc),
		"modifiers":      stringList(t.Modifiers),
		"bases":          stringList(t.Bases),
		"fields":         tuple(fields),
		"properties":     tuple(props),
		"methods":        tuple(methods),
		"members":        tuple(members),
	})
}

// ContextFor is t's template context plus a "manifest" object with the
// manifest metadata.
func (m *Manifest) ContextFor(t *Type) cty.Value {
	attrs := t.TemplateContext().AsValueMap()
	attrs["manifest"] = cty.ObjectVal(map[string]cty.Value{
		"name":        cty.StringVal(m.Metadata.Name),
		"version":     cty.StringVal(m.Metadata.Version),
		"description": cty.StringVal(m.Metadata.Description),
	})
	return cty.ObjectVal(attrs)
}

func stringList(values []string) cty.Value {
	out := make([]cty.Value, 0, len(values))
	for _, v := range values {
		out = append(out, cty.StringVal(v))
	}
	return tuple(out)
}

func tuple(values []cty.Value) cty.Value {
	if len(values) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(values)
}
