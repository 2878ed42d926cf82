package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
)

func ids(diags []result.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.ID)
	}
	return out
}

func TestEmit(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Header = "<auto-generated/>"
	b := builder.Class("Gadget").WithNamespace("Shop").
		AddUsing("System.Linq").AddUsing("System").AddUsing("System.Linq").
		AddField(builder.Field("_count", "int").WithAccessibility(builder.Private))

	got := Emit(b, opts)
	require.True(t, got.Success())

	tree, _ := got.Tree()
	assert.Equal(t, []string{"// <auto-generated/>"}, tree.Header)
	assert.Equal(t, []syntax.Import{{Name: "System"}, {Name: "System.Linq"}}, tree.Imports)
	assert.Equal(t, []string{"Shop"}, tree.Namespaces())

	text, _ := got.Text()
	assert.Equal(t, `// <auto-generated/>

using System;
using System.Linq;

namespace Shop
{
    public class Gadget
    {
        private int _count;
    }
}
`, text)
}

func TestEmitNil(t *testing.T) {
	got := Emit(nil, format.DefaultOptions())
	assert.False(t, got.Success())
	assert.Equal(t, []string{result.CodeNothingToEmit}, ids(got.Diagnostics()))
}

func TestRaw(t *testing.T) {
	got := Raw("Shop", []syntax.Import{{Name: "System"}}, "public class Gen\n{\n}", format.DefaultOptions())
	require.True(t, got.Success())
	text, _ := got.Text()
	assert.Equal(t, "using System;\n\nnamespace Shop\n{\n    public class Gen\n    {\n    }\n}\n", text)

	empty := Raw("Shop", nil, "  ", format.DefaultOptions())
	assert.False(t, empty.Success())
	assert.Equal(t, []string{result.CodeNothingToEmit}, ids(empty.Diagnostics()))
}

func TestUnitRenderFault(t *testing.T) {
	u := syntax.Unit{Groups: []syntax.Group{{Decls: []syntax.Decl{&syntax.Type{}}}}}
	got := Unit(u, format.DefaultOptions(), "Broken")
	assert.False(t, got.Success())
	_, hasTree := got.Tree()
	assert.False(t, hasTree)
	require.Len(t, got.Diagnostics(), 1)
	assert.Equal(t, result.CodeRenderFault, got.Diagnostics()[0].ID)
	assert.Equal(t, "Broken", got.Diagnostics()[0].Location.Symbol)
}

func TestUnitEmptyTree(t *testing.T) {
	got := Unit(syntax.Unit{Groups: []syntax.Group{{Namespace: "Shop"}}}, format.DefaultOptions(), "Shop")
	assert.False(t, got.Success())
	assert.Equal(t, []string{result.CodeNothingToEmit}, ids(got.Diagnostics()))
}

func TestStructuralValidation(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Validation = format.ValidationStructural

	t.Run("clean", func(t *testing.T) {
		got := Emit(builder.Class("Widget").
			AddProperty(builder.Property("Name", "string").WithInitializer(`"{"`)).
			AddMethod(builder.Method("Run").WithBody("// }", "Console.WriteLine('}');")), opts)
		assert.True(t, got.Success(), "%v", got.Diagnostics())
	})

	t.Run("unbalanced raw member", func(t *testing.T) {
		got := Emit(builder.Class("Widget").AddRaw("void Run() {"), opts)
		assert.False(t, got.Success())
		_, hasTree := got.Tree()
		assert.True(t, hasTree, "validation findings keep the tree")
		assert.Contains(t, ids(got.Diagnostics()), result.CodeUnbalanced)
	})

	t.Run("duplicate member", func(t *testing.T) {
		got := Emit(builder.Class("Widget").
			AddField(builder.Field("Name", "string")).
			AddProperty(builder.Property("Name", "string")), opts)
		assert.False(t, got.Success())
		assert.Equal(t, []string{result.CodeDuplicateName}, ids(got.Diagnostics()))
	})

	t.Run("member named like type", func(t *testing.T) {
		got := Emit(builder.Class("Widget").AddProperty(builder.Property("Widget", "int")), opts)
		assert.Equal(t, []string{result.CodeDuplicateName}, ids(got.Diagnostics()))
	})

	t.Run("overloads allowed", func(t *testing.T) {
		got := Emit(builder.Class("Widget").
			AddMethod(builder.Method("Run")).
			AddMethod(builder.Method("Run").AddParameter(builder.Parameter("n", "int"))), opts)
		assert.True(t, got.Success())
	})
}

func TestCompilerValidationUnavailable(t *testing.T) {
	opts := format.DefaultOptions()
	opts.Validation = format.ValidationCompiler
	opts.Validator = format.Tool{Command: "srcgen-no-such-compiler --check"}

	got := Emit(builder.Class("Widget"), opts)
	assert.True(t, got.Success())
	assert.Empty(t, got.Diagnostics())
}

func TestParseCompilerOutput(t *testing.T) {
	out := `Build started.
/tmp/gen/Generated.cs(3,17): error CS1002: ; expected [/tmp/gen/gen.csproj]
Generated.cs(10,5): warning CS0168: The variable 'x' is declared but never used
Build FAILED.`
	diags := parseCompilerOutput(out)
	require.Len(t, diags, 2)

	assert.Equal(t, result.Diagnostic{
		ID:       "CS1002",
		Severity: result.SeverityError,
		Message:  "; expected",
		Location: result.Location{File: "/tmp/gen/Generated.cs", Line: 3, Column: 17},
	}, diags[0])
	assert.Equal(t, result.SeverityWarning, diags[1].Severity)
	assert.Equal(t, "CS0168", diags[1].ID)
}
