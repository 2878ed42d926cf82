package combine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/emit"
	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
)

func opts() format.Options {
	o := format.DefaultOptions()
	o.Header = "<auto-generated/>"
	return o
}

func widget() result.Optional {
	return emit.Emit(builder.Class("Widget").AddUsing("System").
		AddProperty(builder.Property("Name", "string")), opts())
}

func gadget() result.Optional {
	return emit.Emit(builder.Class("Gadget").WithNamespace("Shop").
		AddUsing("System").AddUsing("System.Linq").
		AddMethod(builder.Method("Run")), opts())
}

func texts(t *testing.T, o result.Optional) string {
	t.Helper()
	text, ok := o.Text()
	require.True(t, ok, "no text: %v", o.Diagnostics())
	return text
}

func TestWidgetAndGadget(t *testing.T) {
	got := Combine(opts(), widget(), gadget())
	require.True(t, got.Success())

	want := `// <auto-generated/>

using System;
using System.Linq;

public class Widget
{
    public string Name { get; set; }
}

namespace Shop
{
    public class Gadget
    {
        public void Run()
        {
        }
    }
}
`
	if diff := cmp.Diff(want, texts(t, got)); diff != "" {
		t.Errorf("combined text mismatch (-want +got):\n%s", diff)
	}

	tree, _ := got.Tree()
	assert.Equal(t, []string{"", "Shop"}, tree.Namespaces())
	assert.Equal(t, []syntax.Import{{Name: "System"}, {Name: "System.Linq"}}, tree.Imports)
}

func TestSuccessIsConjunction(t *testing.T) {
	failing := emit.Raw("Shop", nil, "", opts())
	require.False(t, failing.Success())

	tests := []struct {
		name string
		a, b result.Optional
		want bool
	}{
		{"both succeed", widget(), gadget(), true},
		{"first fails", failing, gadget(), false},
		{"second fails", widget(), failing, false},
		{"both fail", failing, failing, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(opts(), tt.a, tt.b)
			assert.Equal(t, tt.want, got.Success())
			assert.Equal(t, tt.a.Success() && tt.b.Success(), got.Success())
		})
	}
}

func TestFailingFragmentKeepsEveryDiagnostic(t *testing.T) {
	w := widget()
	tree, _ := w.Tree()
	warned := result.Succeeded(tree, texts(t, w),
		result.Warningf(result.CodeMutableField, result.Location{Symbol: "Widget.Count"}, "public mutable field Count"))
	failing := result.Failed(result.Errorf(result.CodeRenderFault, result.Location{Symbol: "Shop.Broken"}, "boom"))

	got := Combine(opts(), failing, warned)
	assert.False(t, got.Success())
	_, hasTree := got.Tree()
	assert.False(t, hasTree)
	_, hasText := got.Text()
	assert.False(t, hasText)

	ids := make([]string, 0)
	for _, d := range got.Diagnostics() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{result.CodeRenderFault, result.CodeMutableField}, ids)
}

func TestSingleInputIsUnchanged(t *testing.T) {
	w := widget()
	got := Combine(opts(), w)
	assert.Equal(t, texts(t, w), texts(t, got))
}

func TestEmptyCombineFails(t *testing.T) {
	got := Combine(opts())
	assert.False(t, got.Success())
	require.Len(t, got.Diagnostics(), 1)
	assert.Equal(t, result.CodeEmptyCombine, got.Diagnostics()[0].ID)
}

func TestImportIdentity(t *testing.T) {
	a := emit.Emit(builder.Class("A").AddUsing("System.Math").AddUsing("System"), opts())
	b := emit.Emit(builder.Class("B").AddStaticUsing("System.Math").AddUsing("System"), opts())

	got := Combine(opts(), a, b)
	require.True(t, got.Success())
	tree, _ := got.Tree()
	assert.Equal(t, []syntax.Import{
		{Name: "System"},
		{Name: "System.Math"},
		{Name: "System.Math", Static: true},
	}, tree.Imports)
}

func TestNamespacesNeverInterleave(t *testing.T) {
	x1 := emit.Emit(builder.Class("One").WithNamespace("X"), opts())
	y1 := emit.Emit(builder.Class("Two").WithNamespace("Y"), opts())
	x2 := emit.Emit(builder.Class("Three").WithNamespace("X"), opts())

	got := Combine(opts(), y1, x1, x2)
	require.True(t, got.Success())
	tree, _ := got.Tree()
	require.Len(t, tree.Groups, 2)
	assert.Equal(t, "X", tree.Groups[0].Namespace)
	assert.Equal(t, []string{"One", "Three"}, names(tree.Groups[0].Decls))
	assert.Equal(t, "Y", tree.Groups[1].Namespace)
	assert.Equal(t, []string{"Two"}, names(tree.Groups[1].Decls))
}

func TestHeaderComesFromFirstInput(t *testing.T) {
	other := format.DefaultOptions()
	other.Header = "Other header"
	a := widget()
	b := emit.Emit(builder.Class("B"), other)

	got := Combine(other, a, b)
	require.True(t, got.Success())
	tree, _ := got.Tree()
	aTree, _ := a.Tree()
	assert.Equal(t, aTree.Header, tree.Header)
	assert.Equal(t, []string{"// <auto-generated/>"}, tree.Header)
}

func TestValidInputs(t *testing.T) {
	a, ok := widget().TryValidate()
	require.True(t, ok)
	b, ok := gadget().TryValidate()
	require.True(t, ok)

	got := Valid(opts(), a, b)
	assert.True(t, got.Success())
	assert.Empty(t, got.Diagnostics())
}

func TestTreesEmpty(t *testing.T) {
	assert.True(t, Trees().IsEmpty())
}

func names(decls []syntax.Decl) []string {
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		out = append(out, d.DeclName())
	}
	return out
}
