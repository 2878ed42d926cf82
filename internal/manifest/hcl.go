package manifest

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// EncodeHCL renders m in the HCL manifest syntax accepted by DecodeHCL.
func EncodeHCL(m *Manifest) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	meta := body.AppendNewBlock("metadata", nil).Body()
	setStr(meta, "version", m.Metadata.Version)
	setStr(meta, "name", m.Metadata.Name)
	setStr(meta, "description", m.Metadata.Description)
	setStr(meta, "header", m.Metadata.Header)

	for i := range m.Types {
		t := &m.Types[i]
		body.AppendNewline()
		tb := body.AppendNewBlock("type", []string{t.Name}).Body()
		setStr(tb, "kind", t.Kind)
		setStr(tb, "namespace", t.Namespace)
		setStr(tb, "accessibility", t.Accessibility)
		setList(tb, "modifiers", t.Modifiers)
		setStr(tb, "doc", t.Doc)
		setList(tb, "attributes", t.Attributes)
		setList(tb, "type_params", t.TypeParams)
		setList(tb, "constraints", t.Constraints)
		setList(tb, "bases", t.Bases)
		setList(tb, "usings", t.Usings)
		setList(tb, "static_usings", t.StaticUsings)
		setList(tb, "depends_on", t.DependsOn)
		setStr(tb, "template", t.Template)

		for _, p := range t.Parameters {
			appendParam(tb, "parameter", p)
		}
		for _, fd := range t.Fields {
			fb := tb.AppendNewBlock("field", []string{fd.Name}).Body()
			setStr(fb, "type", fd.Type)
			setStr(fb, "accessibility", fd.Accessibility)
			setBool(fb, "static", fd.Static)
			setBool(fb, "readonly", fd.ReadOnly)
			setBool(fb, "const", fd.Const)
			setStr(fb, "initializer", fd.Initializer)
			setStr(fb, "doc", fd.Doc)
		}
		for _, p := range t.Properties {
			pb := tb.AppendNewBlock("property", []string{p.Name}).Body()
			setStr(pb, "type", p.Type)
			setStr(pb, "accessibility", p.Accessibility)
			setList(pb, "modifiers", p.Modifiers)
			setStr(pb, "access", p.Access)
			setStr(pb, "setter_accessibility", p.SetterAccess)
			setStr(pb, "expression", p.Expression)
			setStr(pb, "initializer", p.Initializer)
			setStr(pb, "doc", p.Doc)
		}
		for _, md := range t.Methods {
			mb := tb.AppendNewBlock("method", []string{md.Name}).Body()
			setStr(mb, "returns", md.Returns)
			setStr(mb, "accessibility", md.Accessibility)
			setList(mb, "modifiers", md.Modifiers)
			setBool(mb, "constructor", md.Constructor)
			setStr(mb, "initializer", md.Initializer)
			setList(mb, "type_params", md.TypeParams)
			setList(mb, "body", md.Body)
			setStr(mb, "expression", md.Expression)
			setStr(mb, "doc", md.Doc)
			for _, p := range md.Params {
				appendParam(mb, "param", p)
			}
		}
		for _, em := range t.Members {
			eb := tb.AppendNewBlock("member", []string{em.Name}).Body()
			setStr(eb, "value", em.Value)
			setStr(eb, "doc", em.Doc)
		}
	}
	return f.Bytes()
}

func appendParam(body *hclwrite.Body, blockType string, p Param) {
	pb := body.AppendNewBlock(blockType, []string{p.Name}).Body()
	setStr(pb, "type", p.Type)
	setStr(pb, "modifier", p.Modifier)
	setStr(pb, "default", p.Default)
}

// setStr sets a string attribute; empty values are omitted.
func setStr(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// setBool sets a bool attribute only when true.
func setBool(body *hclwrite.Body, name string, value bool) {
	if value {
		body.SetAttributeValue(name, cty.True)
	}
}

// setList sets a list(string) attribute; empty lists are omitted.
func setList(body *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	list := make([]cty.Value, 0, len(values))
	for _, v := range values {
		list = append(list, cty.StringVal(v))
	}
	body.SetAttributeValue(name, cty.ListVal(list))
}
