// Package template renders user-supplied declaration templates written in
// HCL template syntax:
//
//	public partial class ${name}
//	{
//	%{ for f in fields ~}
//	    public ${f.type} ${pascal(f.name)} { get; set; }
//	%{ endfor ~}
//	}
//
// The evaluation context is an explicit cty object; nothing is reflected.
// Parsed templates are cached for the life of the process.
package template

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/srcgen/srcgen/internal/emit"
	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Contexter converts a value into a template context object.
type Contexter interface {
	TemplateContext() cty.Value
}

type parsed struct {
	expr  hclsyntax.Expression
	diags hcl.Diagnostics
}

// cache maps name+digest to *parsed. Entries are never evicted.
var cache sync.Map

func cacheKey(name, src string) string {
	sum := sha256.Sum256([]byte(src))
	return name + "\x00" + hex.EncodeToString(sum[:])
}

func parse(name, src string) *parsed {
	key := cacheKey(name, src)
	if v, ok := cache.Load(key); ok {
		return v.(*parsed)
	}
	expr, diags := hclsyntax.ParseTemplate([]byte(src), name, hcl.InitialPos)
	v, _ := cache.LoadOrStore(key, &parsed{expr: expr, diags: diags})
	return v.(*parsed)
}

// Outcome is either rendered text or a render failure.
type Outcome struct {
	name    string
	text    string
	failure *result.Diagnostic
}

// Text returns the rendered text when rendering succeeded.
func (o Outcome) Text() (string, bool) {
	if o.failure != nil {
		return "", false
	}
	return o.text, true
}

// Failure returns the render diagnostic when rendering failed.
func (o Outcome) Failure() (result.Diagnostic, bool) {
	if o.failure == nil {
		return result.Diagnostic{}, false
	}
	return *o.failure, true
}

// Emit folds the outcome into the emission result vocabulary: rendered
// text becomes a raw declaration in namespace, a failure becomes a failed
// result carrying its diagnostic.
func (o Outcome) Emit(namespace string, imports []syntax.Import, opts format.Options) result.Optional {
	if o.failure != nil {
		return result.Failed(*o.failure)
	}
	return emit.Raw(namespace, imports, o.text, opts)
}

// Render evaluates the template src against ctx, which must be an object
// (or null for templates without variables).
func Render(name, src string, ctx cty.Value) Outcome {
	p := parse(name, src)
	if p.diags.HasErrors() {
		return failed(name, result.CodeTemplateParse, p.diags)
	}

	vars := map[string]cty.Value{}
	if !ctx.IsNull() {
		if !ctx.Type().IsObjectType() {
			d := result.Errorf(result.CodeTemplateRender, result.Location{File: name},
				"template context must be an object, got %s", ctx.Type().FriendlyName())
			return Outcome{name: name, failure: &d}
		}
		vars = ctx.AsValueMap()
	}

	val, diags := p.expr.Value(&hcl.EvalContext{Variables: vars, Functions: functions})
	if diags.HasErrors() {
		return failed(name, result.CodeTemplateRender, diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		d := result.Errorf(result.CodeTemplateRender, result.Location{File: name}, "template result: %v", err)
		return Outcome{name: name, failure: &d}
	}
	if val.IsNull() || !val.IsKnown() {
		d := result.Errorf(result.CodeTemplateRender, result.Location{File: name}, "template produced no text")
		return Outcome{name: name, failure: &d}
	}
	return Outcome{name: name, text: val.AsString()}
}

// RenderValue is Render with the context taken from c.
func RenderValue(name, src string, c Contexter) Outcome {
	return Render(name, src, c.TemplateContext())
}

func failed(name, code string, diags hcl.Diagnostics) Outcome {
	var msgs []string
	loc := result.Location{File: name}
	for _, d := range diags.Errs() {
		msgs = append(msgs, d.Error())
	}
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			loc = result.Location{File: d.Subject.Filename, Line: d.Subject.Start.Line, Column: d.Subject.Start.Column}
			break
		}
	}
	diag := result.Errorf(code, loc, "%s", strings.Join(msgs, "; "))
	if len(msgs) == 0 {
		diag = result.Errorf(code, loc, "template %s failed", name)
	}
	return Outcome{name: name, failure: &diag}
}

// String describes the outcome for logs.
func (o Outcome) String() string {
	if o.failure != nil {
		return fmt.Sprintf("template %s: %s", o.name, o.failure.Message)
	}
	return fmt.Sprintf("template %s: %d bytes", o.name, len(o.text))
}
