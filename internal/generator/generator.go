// Package generator runs the manifest pipeline: validate, resolve
// dependency tiers, emit every declaration, then combine the fragments
// into output files.
package generator

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/srcgen/srcgen/internal/combine"
	"github.com/srcgen/srcgen/internal/dependency"
	"github.com/srcgen/srcgen/internal/emit"
	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/registry"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
	"github.com/srcgen/srcgen/internal/template"
)

// Generator turns manifests into C# files.
type Generator struct {
	opts Options
	reg  *registry.Registry
}

// New returns a generator using the default handler registry.
func New(opts Options) *Generator {
	return NewWithRegistry(opts, registry.Default)
}

// NewWithRegistry returns a generator that resolves kinds through reg.
func NewWithRegistry(opts Options, reg *registry.Registry) *Generator {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = runtime.NumCPU()
	}
	if opts.MaxParallel > 32 {
		opts.MaxParallel = 32
	}
	if opts.OutputFile == "" {
		opts.OutputFile = DefaultOutputFile
	}
	opts.Format = opts.Format.WithDefaults()
	return &Generator{opts: opts, reg: reg}
}

// Generate validates m and emits its declarations. Problems are reported
// as diagnostics in the returned report; Files is only set on success.
func (g *Generator) Generate(m *manifest.Manifest) *result.Report {
	out := &result.Report{Success: true}

	// 1. Manifest-level validation
	out.Add(manifest.Validate(m)...)
	if !out.Success {
		return out
	}

	// 2. Resolve dependency order and tiers
	ordered, tiers, err := dependency.Resolve(m)
	if err != nil {
		d := result.Errorf(result.CodeDependency, result.Location{}, "%v", err)
		if errors.Is(err, dependency.ErrCycle) {
			d = d.WithSuggestion("Remove circular depends_on entries or base types")
		}
		out.Add(d)
		return out
	}

	opts := g.opts.Format
	if opts.Header == "" {
		opts.Header = m.Metadata.Header
	}

	// 3. Emit tier by tier; within a tier declarations run in parallel and
	// each writes only its own slot.
	fragments := make([]result.Optional, len(m.Types))
	for n, tier := range tiers {
		slog.Debug("emitting tier", "tier", n, "declarations", len(tier))
		var eg errgroup.Group
		eg.SetLimit(g.opts.MaxParallel)
		for _, i := range tier {
			eg.Go(func() error {
				fragments[i] = g.emitType(m, &m.Types[i], opts)
				return nil
			})
		}
		_ = eg.Wait()
	}

	ok := true
	reported := 0
	for _, i := range ordered {
		diags := fragments[i].Diagnostics()
		out.Add(diags...)
		reported += len(diags)
		ok = ok && fragments[i].Success()
	}
	if !ok {
		out.Success = false
		return out
	}

	// 4. Build files in dependency order
	files := newFileSet()
	if g.opts.SplitFiles {
		for _, i := range ordered {
			t := &m.Types[i]
			text, _ := fragments[i].Text()
			name := files.fileName(t.Name, t.Namespace)
			if !files.add(name, text) {
				out.Add(result.Errorf(result.CodeSchema, result.Location{Symbol: t.QualifiedName()},
					"output file %q is already taken", name))
			}
		}
	} else {
		inputs := make([]result.Optional, 0, len(ordered))
		for _, i := range ordered {
			inputs = append(inputs, fragments[i])
		}
		combined := combine.Combine(opts, inputs...)
		if !combined.Success() {
			// Inputs were already reported; only what the merge added is new.
			out.Add(combined.Diagnostics()[reported:]...)
			out.Success = false
			return out
		}
		text, _ := combined.Text()
		files.add(g.opts.OutputFile, text)
	}
	if !out.Success {
		return out
	}
	out.Files = files.build()
	return out
}

// emitType validates and emits one declaration, through its template when
// it has one.
func (g *Generator) emitType(m *manifest.Manifest, t *manifest.Type, opts format.Options) result.Optional {
	loc := result.Location{Symbol: t.QualifiedName()}
	h, err := g.reg.Lookup(t.Kind)
	if err != nil {
		d := result.Errorf(result.CodeUnknownKind, loc, "%v", err)
		var unknown *registry.UnknownKindError
		if errors.As(err, &unknown) {
			d = d.WithSuggestion("Use one of: " + strings.Join(unknown.Supported, ", "))
		}
		return result.Failed(d)
	}

	diags := h.Validate(t)
	if result.HasErrors(diags) {
		return result.Failed(diags...)
	}

	var emitted result.Optional
	if t.Template != "" {
		emitted = g.emitTemplate(m, t, opts)
	} else {
		b, err := h.Build(t, m)
		if err != nil {
			return result.Failed(append(diags, result.Errorf(result.CodeRenderFault, loc, "%v", err))...)
		}
		emitted = emit.Emit(b, opts)
	}

	all := append(diags, emitted.Diagnostics()...)
	tree, ok := emitted.Tree()
	if !ok {
		return result.Failed(all...)
	}
	text, _ := emitted.Text()
	return result.Succeeded(tree, text, all...)
}

func (g *Generator) emitTemplate(m *manifest.Manifest, t *manifest.Type, opts format.Options) result.Optional {
	path := t.Template
	if !filepath.IsAbs(path) && m.Dir != "" {
		path = filepath.Join(m.Dir, path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return result.Failed(result.Errorf(result.CodeTemplateLoad, result.Location{File: path, Symbol: t.QualifiedName()},
			"read template: %v", err))
	}
	imports := make([]syntax.Import, 0, len(t.Usings)+len(t.StaticUsings))
	for _, u := range t.Usings {
		imports = append(imports, syntax.Import{Name: u})
	}
	for _, u := range t.StaticUsings {
		imports = append(imports, syntax.Import{Name: u, Static: true})
	}
	return template.Render(path, string(src), m.ContextFor(t)).Emit(t.Namespace, imports, opts)
}
