// Package combine merges independently emitted fragments into one file.
//
// Combination is all-or-nothing: when any input is unsuccessful the result
// fails with the union of every input's diagnostics and no tree is built.
// Otherwise imports are deduplicated by (name, static), declarations are
// grouped by namespace, the first input's header is kept and the merged
// tree is rendered again.
package combine

import (
	"slices"
	"strings"

	"github.com/srcgen/srcgen/internal/emit"
	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
)

// Combine merges inputs in order.
func Combine(opts format.Options, inputs ...result.Optional) result.Optional {
	if len(inputs) == 0 {
		return result.Failed(result.Errorf(result.CodeEmptyCombine, result.Location{}, "no fragments to combine"))
	}

	var diags []result.Diagnostic
	ok := true
	for _, in := range inputs {
		diags = append(diags, in.Diagnostics()...)
		if !in.Success() {
			ok = false
		}
	}
	if !ok {
		return result.Failed(diags...)
	}
	if len(inputs) == 1 {
		return inputs[0]
	}

	trees := make([]syntax.Unit, 0, len(inputs))
	for _, in := range inputs {
		tree, _ := in.Tree()
		trees = append(trees, tree)
	}
	merged := Trees(trees...)

	text, err := emit.Render(merged, opts)
	if err != nil {
		diags = append(diags, result.Errorf(result.CodeRenderFault, result.Location{}, "%v", err))
		return result.Failed(diags...)
	}
	return result.Succeeded(merged, text, diags...)
}

// Valid merges already validated fragments.
func Valid(opts format.Options, inputs ...result.Valid) result.Optional {
	opt := make([]result.Optional, 0, len(inputs))
	for _, v := range inputs {
		opt = append(opt, v.Optional())
	}
	return Combine(opts, opt...)
}

// Trees builds the merged declaration tree without rendering it.
func Trees(trees ...syntax.Unit) syntax.Unit {
	if len(trees) == 0 {
		return syntax.Unit{}
	}

	var imports []syntax.Import
	for _, t := range trees {
		imports = append(imports, t.Imports...)
	}

	byNamespace := make(map[string][]syntax.Decl)
	for _, t := range trees {
		for _, g := range t.Groups {
			byNamespace[g.Namespace] = append(byNamespace[g.Namespace], g.Decls...)
		}
	}
	keys := make([]string, 0, len(byNamespace))
	for ns := range byNamespace {
		keys = append(keys, ns)
	}
	// Ordinal comparison: "" (file scope) always sorts first.
	slices.SortFunc(keys, strings.Compare)

	groups := make([]syntax.Group, 0, len(keys))
	for _, ns := range keys {
		groups = append(groups, syntax.Group{Namespace: ns, Decls: byNamespace[ns]})
	}

	return syntax.Unit{
		Header:  slices.Clone(trees[0].Header),
		Imports: syntax.NormalizeImports(imports),
		Groups:  groups,
	}
}
