package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcgen/srcgen/internal/syntax"
)

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string
	}{
		{"Widget", ""},
		{"_count", ""},
		{"Item2", ""},
		{"@class", ""},
		{"", "empty"},
		{"@", "empty after '@'"},
		{"2fast", "invalid character"},
		{"my-name", "invalid character"},
		{"class", "reserved keyword"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIdentifier(tt.name)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCheckQualifiedName(t *testing.T) {
	assert.NoError(t, CheckQualifiedName("System.Collections.Generic"))
	assert.Error(t, CheckQualifiedName("System..Linq"))
	assert.Error(t, CheckQualifiedName("System.int"))
	assert.Error(t, CheckQualifiedName(" "))
}

func TestParseAccessibility(t *testing.T) {
	tests := map[string]Accessibility{
		"public":             Public,
		"Protected  Internal": ProtectedInternal,
		"private protected":  PrivateProtected,
		"none":               None,
		"":                   None,
	}
	for in, want := range tests {
		got, err := ParseAccessibility(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAccessibility("friend")
	assert.Error(t, err)
}

func TestConstructorsPanicOnBadNames(t *testing.T) {
	assert.Panics(t, func() { Class("class") })
	assert.Panics(t, func() { Field("x y", "int") })
	assert.Panics(t, func() { Field("x", " ") })
	assert.Panics(t, func() { Property("P", "") })
	assert.Panics(t, func() { Method("") })
	assert.Panics(t, func() { Class("A").WithNamespace("A..B") })
	assert.Panics(t, func() { Class("A").AddUsing("") })
	assert.NotPanics(t, func() { Class("A").WithNamespace("") })
}

func TestBuildersAreImmutable(t *testing.T) {
	base := Class("Widget").WithNamespace("Shop").AddField(Field("A", "int"))
	a := base.AddField(Field("B", "int"))
	b := base.AddField(Field("C", "int"))

	assert.Len(t, base.Fields(), 1)
	require.Len(t, a.Fields(), 2)
	require.Len(t, b.Fields(), 2)
	assert.Equal(t, "B", a.Fields()[1].Name())
	assert.Equal(t, "C", b.Fields()[1].Name())

	m := Method("Run").AddStatement("x();")
	m2 := m.AddStatement("y();")
	assert.Len(t, m.decl().(*syntax.Method).Body, 1)
	assert.Len(t, m2.decl().(*syntax.Method).Body, 2)
}

func TestDeclIsFresh(t *testing.T) {
	b := Class("Widget").AddBase("IPart")
	d1 := b.Decl()
	d1.Bases[0] = "Changed"
	assert.Equal(t, []string{"IPart"}, b.Decl().Bases)
}

func TestTypeBuilder(t *testing.T) {
	inner := Class("Node").WithAccessibility(Private).AddUsing("System.Text")
	b := Record("Tree").
		WithNamespace("Acme.Data").
		WithModifiers("sealed").
		WithDoc("A tree.").
		AddAttribute("Serializable").
		AddTypeParameter("T").
		AddConstraint("T : notnull").
		AddPrimaryParameter(Parameter("Root", "T")).
		AddBase("IEnumerable<T>").
		AddUsing("System").
		AddStaticUsing("System.Math").
		AddProperty(Property("Count", "int").GetOnly()).
		AddNestedType(inner).
		AddMethod(Method("Clear").WithModifiers("override").WithExpression("Root = default"))

	assert.Equal(t, "Acme.Data.Tree", b.QualifiedName())
	assert.Equal(t, syntax.KindRecord, b.Kind())
	assert.Equal(t, []syntax.Import{
		{Name: "System"},
		{Name: "System.Math", Static: true},
		{Name: "System.Text"},
	}, b.Imports())

	d := b.Decl()
	assert.Equal(t, []string{"public", "sealed"}, d.Modifiers)
	assert.Equal(t, []string{"T"}, d.TypeParams)
	assert.Equal(t, []string{"T : notnull"}, d.Constraints)
	assert.Equal(t, []syntax.Parameter{{Type: "T", Name: "Root"}}, d.Params)
	require.Len(t, d.Members, 3)
	assert.Equal(t, "Count", d.Members[0].DeclName())
	nested, ok := d.Members[1].(*syntax.Type)
	require.True(t, ok)
	assert.Equal(t, []string{"private"}, nested.Modifiers)
	assert.Equal(t, []string{"public", "override"}, d.Members[2].(*syntax.Method).Modifiers)
}

func TestFieldModifiers(t *testing.T) {
	tests := []struct {
		name string
		f    FieldBuilder
		want []string
	}{
		{"default", Field("x", "int"), []string{"public"}},
		{"private readonly", Field("x", "int").WithAccessibility(Private).ReadOnly(), []string{"private", "readonly"}},
		{"static readonly", Field("x", "int").Static().ReadOnly(), []string{"public", "static", "readonly"}},
		{"const ignores readonly", Field("x", "int").Const().ReadOnly(), []string{"public", "const"}},
		{"no accessibility", Field("x", "int").WithAccessibility(None), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.decl().(*syntax.Field).Modifiers)
		})
	}
	assert.True(t, Field("x", "int").IsMutable())
	assert.False(t, Field("x", "int").ReadOnly().IsMutable())
}

func TestPropertyAccessors(t *testing.T) {
	p := Property("Name", "string").InitOnly().WithSetterAccessibility(Private)
	assert.Equal(t, []syntax.Accessor{{Keyword: "get"}, {Modifier: "private", Keyword: "init"}},
		p.decl().(*syntax.Property).Accessors)
}

func TestMethodBodies(t *testing.T) {
	assert.Nil(t, Method("A").decl().(*syntax.Method).Body)
	assert.NotNil(t, Method("A").WithBody().decl().(*syntax.Method).Body)

	m := Method("A").WithBody("x();").WithExpression("y()").decl().(*syntax.Method)
	assert.Nil(t, m.Body)
	assert.Equal(t, "y()", m.Expression)

	c := Constructor().WithInitializer("base(1)").decl().(*syntax.Method)
	assert.True(t, c.Constructor)
	assert.Equal(t, "base(1)", c.Initializer)
}
