package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcgen/srcgen/internal/format"
)

func render(t *testing.T, u Unit) string {
	t.Helper()
	text, err := Render(u, format.DefaultOptions())
	require.NoError(t, err)
	return text
}

func TestRenderUnit(t *testing.T) {
	u := Unit{
		Header:  []string{"// <auto-generated/>"},
		Imports: []Import{{Name: "System"}, {Name: "System.Math", Static: true}},
		Groups: []Group{{
			Namespace: "Acme",
			Decls: []Decl{&Type{
				Doc:        []string{"A widget."},
				Attributes: []string{"Serializable"},
				Modifiers:  []string{"public", "sealed"},
				Kind:       KindClass,
				Name:       "Widget",
				TypeParams: []string{"T"},
				Bases:      []string{"IPart"},
				Constraints: []string{
					"T : class",
				},
				Members: []Decl{
					&Field{Modifiers: []string{"private", "readonly"}, Type: "T", Name: "_value"},
					&Field{Modifiers: []string{"public", "const"}, Type: "int", Name: "Max", Initializer: "10"},
					&Property{Modifiers: []string{"public"}, Type: "string", Name: "Name",
						Accessors: []Accessor{{Keyword: "get"}, {Modifier: "private", Keyword: "set"}}, Initializer: `""`},
					&Property{Modifiers: []string{"public"}, Type: "int", Name: "Size", Expression: "Max * 2"},
					&Method{Modifiers: []string{"public"}, Name: "Widget", Constructor: true,
						Params: []Parameter{{Type: "T", Name: "value"}}, Body: []string{"_value = value;"}},
					&Method{Modifiers: []string{"public"}, ReturnType: "T", Name: "Get", Expression: "_value"},
				},
			}},
		}},
	}

	want := `// <auto-generated/>

using System;
using static System.Math;

namespace Acme
{
    /// <summary>
    /// A widget.
    /// </summary>
    [Serializable]
    public sealed class Widget<T> : IPart
        where T : class
    {
        private readonly T _value;
        public const int Max = 10;

        public string Name { get; private set; } = "";

        public int Size => Max * 2;

        public Widget(T value)
        {
            _value = value;
        }

        public T Get() => _value;
    }
}
`
	if diff := cmp.Diff(want, render(t, u)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderKinds(t *testing.T) {
	tests := []struct {
		name string
		decl Decl
		want string
	}{
		{
			name: "positional record",
			decl: &Type{Modifiers: []string{"public"}, Kind: KindRecord, Name: "Point",
				Params: []Parameter{{Type: "int", Name: "X"}, {Type: "int", Name: "Y", Default: "0"}}},
			want: "public record Point(int X, int Y = 0);\n",
		},
		{
			name: "enum",
			decl: &Type{Modifiers: []string{"public"}, Kind: KindEnum, Name: "Color", Bases: []string{"byte"},
				Members: []Decl{&EnumMember{Name: "Red", Value: "1"}, &EnumMember{Name: "Green"}}},
			want: "public enum Color : byte\n{\n    Red = 1,\n    Green\n}\n",
		},
		{
			name: "interface",
			decl: &Type{Modifiers: []string{"public"}, Kind: KindInterface, Name: "IShape",
				Members: []Decl{
					&Property{Type: "double", Name: "Area", Accessors: []Accessor{{Keyword: "get"}}},
					&Method{ReturnType: "void", Name: "Scale", Params: []Parameter{{Type: "double", Name: "factor"}}},
				}},
			want: "public interface IShape\n{\n    double Area { get; }\n\n    void Scale(double factor);\n}\n",
		},
		{
			name: "abstract method",
			decl: &Type{Modifiers: []string{"public", "abstract"}, Kind: KindClass, Name: "Shape",
				Members: []Decl{&Method{Modifiers: []string{"public", "abstract"}, ReturnType: "double", Name: "Area"}}},
			want: "public abstract class Shape\n{\n    public abstract double Area();\n}\n",
		},
		{
			name: "record struct",
			decl: &Type{Kind: KindRecordStruct, Name: "Pair", Params: []Parameter{{Modifier: "in", Type: "int", Name: "A"}}},
			want: "record struct Pair(in int A);\n",
		},
		{
			name: "raw",
			decl: &Raw{Text: "public partial class Gen\n{\n}\n"},
			want: "public partial class Gen\n{\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, Unit{Groups: []Group{{Decls: []Decl{tt.decl}}}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderOptions(t *testing.T) {
	u := Unit{Groups: []Group{{Namespace: "N", Decls: []Decl{&Type{Kind: KindStruct, Name: "S"}}}}}
	text, err := Render(u, format.Options{Indent: "\t", EndOfLine: "\r\n"})
	require.NoError(t, err)
	assert.Equal(t, "namespace N\r\n{\r\n\tstruct S\r\n\t{\r\n\t}\r\n}\r\n", text)
}

func TestRenderFileScopeDeclsAreSeparated(t *testing.T) {
	u := Unit{Groups: []Group{{Decls: []Decl{
		&Type{Kind: KindClass, Name: "A"},
		&Type{Kind: KindClass, Name: "B"},
	}}}}
	assert.Equal(t, "class A\n{\n}\n\nclass B\n{\n}\n", render(t, u))
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{"nil decl", Unit{Groups: []Group{{Decls: []Decl{nil}}}}, "nil declaration"},
		{"empty type name", Unit{Groups: []Group{{Decls: []Decl{&Type{}}}}}, "class with empty name"},
		{"empty import", Unit{Imports: []Import{{}}, Groups: []Group{{Decls: []Decl{&Type{Name: "A"}}}}}, "import with empty name"},
		{
			"enum with field",
			Unit{Groups: []Group{{Namespace: "N", Decls: []Decl{&Type{Kind: KindEnum, Name: "E", Members: []Decl{&Field{Name: "x", Type: "int"}}}}}}},
			"is not an enum member",
		},
		{"empty raw", Unit{Groups: []Group{{Decls: []Decl{&Raw{Text: " \n"}}}}}, "empty raw declaration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.unit, format.DefaultOptions())
			var rerr *RenderError
			require.ErrorAs(t, err, &rerr)
			assert.Contains(t, rerr.Message, tt.want)
		})
	}
}

func TestRenderErrorPath(t *testing.T) {
	u := Unit{Groups: []Group{{Namespace: "Shop", Decls: []Decl{&Type{Name: "Gadget", Members: []Decl{&Property{Type: "int"}}}}}}}
	_, err := Render(u, format.DefaultOptions())
	assert.EqualError(t, err, "render Shop.Gadget: property with empty name")
}

func TestNormalizeImports(t *testing.T) {
	in := []Import{
		{Name: "System.Linq"},
		{Name: "System.Math", Static: true},
		{Name: "System"},
		{Name: "System.Linq"},
		{Name: "System.Math"},
		{Name: "System.Console", Static: true},
	}
	want := []Import{
		{Name: "System"},
		{Name: "System.Linq"},
		{Name: "System.Math"},
		{Name: "System.Console", Static: true},
		{Name: "System.Math", Static: true},
	}
	assert.Equal(t, want, NormalizeImports(in))
	assert.Empty(t, NormalizeImports(nil))
}

func TestUnitAccessors(t *testing.T) {
	u := Unit{Groups: []Group{
		{Namespace: "", Decls: []Decl{&Type{Name: "A"}}},
		{Namespace: "B", Decls: []Decl{&Type{Name: "C"}, &Raw{Text: "x"}}},
	}}
	assert.Equal(t, []string{"", "B"}, u.Namespaces())
	assert.Len(t, u.Decls(), 3)
	assert.False(t, u.IsEmpty())
	assert.True(t, Unit{Groups: []Group{{Namespace: "X"}}}.IsEmpty())
}
