package builder

import (
	"slices"

	"github.com/srcgen/srcgen/internal/syntax"
)

// TypeBuilder accumulates a type declaration together with the namespace
// and imports of the file it will be emitted into.
type TypeBuilder struct {
	kind        syntax.TypeKind
	name        string
	namespace   string
	access      Accessibility
	mods        []string
	doc         []string
	attributes  []string
	typeParams  []string
	constraints []string
	params      []ParameterBuilder
	bases       []string
	imports     []syntax.Import
	members     []member
	nested      []TypeBuilder
	order       []int // index into members (>= 0) or nested (< 0, as ^i)
}

func newType(kind syntax.TypeKind, name string) TypeBuilder {
	mustIdentifier(kind.Keyword()+" name", name)
	return TypeBuilder{kind: kind, name: name, access: Public}
}

// Class starts a public class.
func Class(name string) TypeBuilder { return newType(syntax.KindClass, name) }

// Struct starts a public struct.
func Struct(name string) TypeBuilder { return newType(syntax.KindStruct, name) }

// Record starts a public record class.
func Record(name string) TypeBuilder { return newType(syntax.KindRecord, name) }

// RecordStruct starts a public record struct.
func RecordStruct(name string) TypeBuilder { return newType(syntax.KindRecordStruct, name) }

// Interface starts a public interface.
func Interface(name string) TypeBuilder { return newType(syntax.KindInterface, name) }

// Enum starts a public enum.
func Enum(name string) TypeBuilder { return newType(syntax.KindEnum, name) }

func (b TypeBuilder) Name() string          { return b.name }
func (b TypeBuilder) Kind() syntax.TypeKind { return b.kind }
func (b TypeBuilder) Namespace() string     { return b.namespace }

// QualifiedName is Namespace.Name, or Name at file scope.
func (b TypeBuilder) QualifiedName() string {
	if b.namespace == "" {
		return b.name
	}
	return b.namespace + "." + b.name
}

// WithNamespace places the type in ns; "" means file scope.
func (b TypeBuilder) WithNamespace(ns string) TypeBuilder {
	if ns != "" {
		mustQualified("namespace", ns)
	}
	b.namespace = ns
	return b
}

func (b TypeBuilder) WithAccessibility(a Accessibility) TypeBuilder { b.access = a; return b }

// WithModifiers appends modifiers such as "static", "sealed", "abstract" or "partial".
func (b TypeBuilder) WithModifiers(mods ...string) TypeBuilder {
	b.mods = with(b.mods, mods...)
	return b
}

func (b TypeBuilder) WithDoc(lines ...string) TypeBuilder {
	b.doc = slices.Clone(lines)
	return b
}

func (b TypeBuilder) AddAttribute(attr string) TypeBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b TypeBuilder) AddTypeParameter(name string) TypeBuilder {
	mustIdentifier("type parameter", name)
	b.typeParams = with(b.typeParams, name)
	return b
}

// AddConstraint adds a where clause body, e.g. "T : new()".
func (b TypeBuilder) AddConstraint(c string) TypeBuilder {
	mustText("constraint", c)
	b.constraints = with(b.constraints, c)
	return b
}

// AddBase appends a base class or implemented interface.
func (b TypeBuilder) AddBase(base string) TypeBuilder {
	mustText("base type", base)
	b.bases = with(b.bases, base)
	return b
}

// AddPrimaryParameter adds a primary-constructor parameter
// (positional record member).
func (b TypeBuilder) AddPrimaryParameter(p ParameterBuilder) TypeBuilder {
	b.params = with(b.params, p)
	return b
}

// AddUsing records a namespace import for the emitted file.
func (b TypeBuilder) AddUsing(ns string) TypeBuilder {
	mustQualified("using", ns)
	b.imports = with(b.imports, syntax.Import{Name: ns})
	return b
}

// AddStaticUsing records a "using static" import for the emitted file.
func (b TypeBuilder) AddStaticUsing(typeName string) TypeBuilder {
	mustQualified("using static", typeName)
	b.imports = with(b.imports, syntax.Import{Name: typeName, Static: true})
	return b
}

func (b TypeBuilder) addMember(m member) TypeBuilder {
	b.order = with(b.order, len(b.members))
	b.members = with(b.members, m)
	return b
}

func (b TypeBuilder) AddField(f FieldBuilder) TypeBuilder           { return b.addMember(f) }
func (b TypeBuilder) AddProperty(p PropertyBuilder) TypeBuilder     { return b.addMember(p) }
func (b TypeBuilder) AddMethod(m MethodBuilder) TypeBuilder         { return b.addMember(m) }
func (b TypeBuilder) AddEnumMember(e EnumMemberBuilder) TypeBuilder { return b.addMember(e) }

// AddRaw appends verbatim member text.
func (b TypeBuilder) AddRaw(text string) TypeBuilder {
	mustText("raw member", text)
	return b.addMember(rawMember(text))
}

// AddNestedType nests t inside b. Its imports are hoisted to the file;
// its namespace is ignored.
func (b TypeBuilder) AddNestedType(t TypeBuilder) TypeBuilder {
	b.order = with(b.order, ^len(b.nested))
	b.nested = with(b.nested, t)
	return b
}

// Fields returns the field builders in declaration order.
func (b TypeBuilder) Fields() []FieldBuilder {
	var out []FieldBuilder
	for _, m := range b.members {
		if f, ok := m.(FieldBuilder); ok {
			out = append(out, f)
		}
	}
	return out
}

// Imports returns the imports of b and every nested type, in the order
// they were added. Duplicates are kept; the emitter normalizes them.
func (b TypeBuilder) Imports() []syntax.Import {
	out := slices.Clone(b.imports)
	for _, n := range b.nested {
		out = append(out, n.Imports()...)
	}
	return out
}

// Decl builds a fresh declaration node from the accumulated state.
func (b TypeBuilder) Decl() *syntax.Type {
	params := make([]syntax.Parameter, 0, len(b.params))
	for _, p := range b.params {
		params = append(params, p.node())
	}
	members := make([]syntax.Decl, 0, len(b.order))
	for _, idx := range b.order {
		if idx >= 0 {
			members = append(members, b.members[idx].decl())
		} else {
			members = append(members, b.nested[^idx].Decl())
		}
	}
	return &syntax.Type{
		Doc:         slices.Clone(b.doc),
		Attributes:  slices.Clone(b.attributes),
		Modifiers:   modifiers(b.access, b.mods...),
		Kind:        b.kind,
		Name:        b.name,
		TypeParams:  slices.Clone(b.typeParams),
		Params:      params,
		Bases:       slices.Clone(b.bases),
		Constraints: slices.Clone(b.constraints),
		Members:     members,
	}
}
