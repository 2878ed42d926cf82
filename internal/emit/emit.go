// Package emit turns builder state into rendered, optionally validated
// source. It never writes files; callers own the returned text.
package emit

import (
	"strings"

	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
)

// Source is a declaration ready to be emitted into its own file.
// builder.TypeBuilder implements it.
type Source interface {
	Namespace() string
	Imports() []syntax.Import
	Decl() *syntax.Type
}

// Emit renders src as one file. The result carries tree and text unless
// rendering itself failed; validation findings are reported as diagnostics.
func Emit(src Source, opts format.Options) result.Optional {
	if src == nil {
		return result.Failed(result.Errorf(result.CodeNothingToEmit, result.Location{}, "nothing to emit"))
	}
	decl := src.Decl()
	unit := syntax.Unit{
		Header:  opts.HeaderTrivia(),
		Imports: syntax.NormalizeImports(src.Imports()),
		Groups:  []syntax.Group{{Namespace: src.Namespace(), Decls: []syntax.Decl{decl}}},
	}
	return Unit(unit, opts, symbol(src.Namespace(), decl.Name))
}

// Raw emits verbatim member text at namespace scope, e.g. template output.
func Raw(namespace string, imports []syntax.Import, text string, opts format.Options) result.Optional {
	if strings.TrimSpace(text) == "" {
		return result.Failed(result.Errorf(result.CodeNothingToEmit, result.Location{Symbol: namespace}, "raw text is empty"))
	}
	unit := syntax.Unit{
		Header:  opts.HeaderTrivia(),
		Imports: syntax.NormalizeImports(imports),
		Groups:  []syntax.Group{{Namespace: namespace, Decls: []syntax.Decl{&syntax.Raw{Text: text}}}},
	}
	return Unit(unit, opts, namespace)
}

// Unit renders and validates an already built tree. sym names the
// declaration in diagnostics.
func Unit(u syntax.Unit, opts format.Options, sym string) result.Optional {
	text, err := Render(u, opts)
	if err != nil {
		return result.Failed(result.Errorf(result.CodeRenderFault, result.Location{Symbol: sym}, "%v", err))
	}
	if u.IsEmpty() {
		return result.Failed(result.Errorf(result.CodeNothingToEmit, result.Location{Symbol: sym}, "tree declares nothing"))
	}
	return result.Succeeded(u, text, Check(u, text, opts)...)
}

// Render prints u and passes the text through the configured formatter.
func Render(u syntax.Unit, opts format.Options) (string, error) {
	text, err := syntax.Render(u, opts)
	if err != nil {
		return "", err
	}
	return format.Reformat(opts, text), nil
}

func symbol(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
