package builder

import (
	"slices"

	"github.com/srcgen/srcgen/internal/syntax"
)

// member is anything a TypeBuilder can hold.
type member interface {
	decl() syntax.Decl
}

// FieldBuilder accumulates one field declaration.
type FieldBuilder struct {
	name, typ   string
	access      Accessibility
	static      bool
	readOnly    bool
	constant    bool
	initializer string
	doc         []string
	attributes  []string
}

// Field starts a public field.
func Field(name, typ string) FieldBuilder {
	mustIdentifier("field name", name)
	mustText("field type", typ)
	return FieldBuilder{name: name, typ: typ, access: Public}
}

func (b FieldBuilder) Name() string { return b.name }

// IsMutable reports a non-readonly, non-const instance or static field.
func (b FieldBuilder) IsMutable() bool { return !b.readOnly && !b.constant }

func (b FieldBuilder) Access() Accessibility { return b.access }

func (b FieldBuilder) WithAccessibility(a Accessibility) FieldBuilder { b.access = a; return b }
func (b FieldBuilder) Static() FieldBuilder                           { b.static = true; return b }
func (b FieldBuilder) ReadOnly() FieldBuilder                         { b.readOnly = true; return b }
func (b FieldBuilder) Const() FieldBuilder                            { b.constant = true; return b }

func (b FieldBuilder) WithInitializer(expr string) FieldBuilder {
	b.initializer = expr
	return b
}

func (b FieldBuilder) WithDoc(lines ...string) FieldBuilder {
	b.doc = slices.Clone(lines)
	return b
}

func (b FieldBuilder) AddAttribute(attr string) FieldBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b FieldBuilder) decl() syntax.Decl {
	var mods []string
	switch {
	case b.constant:
		mods = modifiers(b.access, "const")
	case b.static:
		mods = modifiers(b.access, "static")
	default:
		mods = modifiers(b.access)
	}
	if b.readOnly && !b.constant {
		mods = with(mods, "readonly")
	}
	return &syntax.Field{
		Doc:         slices.Clone(b.doc),
		Attributes:  slices.Clone(b.attributes),
		Modifiers:   mods,
		Type:        b.typ,
		Name:        b.name,
		Initializer: b.initializer,
	}
}

// PropertyBuilder accumulates one property declaration.
type PropertyBuilder struct {
	name, typ   string
	access      Accessibility
	mods        []string
	accessors   []syntax.Accessor
	expression  string
	initializer string
	doc         []string
	attributes  []string
}

// Property starts a public { get; set; } auto-property.
func Property(name, typ string) PropertyBuilder {
	mustIdentifier("property name", name)
	mustText("property type", typ)
	return PropertyBuilder{
		name:      name,
		typ:       typ,
		access:    Public,
		accessors: []syntax.Accessor{{Keyword: "get"}, {Keyword: "set"}},
	}
}

func (b PropertyBuilder) Name() string { return b.name }

func (b PropertyBuilder) WithAccessibility(a Accessibility) PropertyBuilder { b.access = a; return b }

// WithModifiers appends modifiers such as "static", "virtual" or "required".
func (b PropertyBuilder) WithModifiers(mods ...string) PropertyBuilder {
	b.mods = with(b.mods, mods...)
	return b
}

// GetOnly makes the property { get; }.
func (b PropertyBuilder) GetOnly() PropertyBuilder {
	b.accessors = []syntax.Accessor{{Keyword: "get"}}
	return b
}

// InitOnly makes the property { get; init; }.
func (b PropertyBuilder) InitOnly() PropertyBuilder {
	b.accessors = []syntax.Accessor{{Keyword: "get"}, {Keyword: "init"}}
	return b
}

// WithSetterAccessibility restricts the set or init accessor.
func (b PropertyBuilder) WithSetterAccessibility(a Accessibility) PropertyBuilder {
	accessors := slices.Clone(b.accessors)
	for i := range accessors {
		if accessors[i].Keyword != "get" {
			accessors[i].Modifier = string(a)
		}
	}
	b.accessors = accessors
	return b
}

// WithExpression turns the property into "=> expr;".
func (b PropertyBuilder) WithExpression(expr string) PropertyBuilder {
	b.expression = expr
	return b
}

func (b PropertyBuilder) WithInitializer(expr string) PropertyBuilder {
	b.initializer = expr
	return b
}

func (b PropertyBuilder) WithDoc(lines ...string) PropertyBuilder {
	b.doc = slices.Clone(lines)
	return b
}

func (b PropertyBuilder) AddAttribute(attr string) PropertyBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b PropertyBuilder) decl() syntax.Decl {
	return &syntax.Property{
		Doc:         slices.Clone(b.doc),
		Attributes:  slices.Clone(b.attributes),
		Modifiers:   modifiers(b.access, b.mods...),
		Type:        b.typ,
		Name:        b.name,
		Accessors:   slices.Clone(b.accessors),
		Expression:  b.expression,
		Initializer: b.initializer,
	}
}

// ParameterBuilder accumulates one parameter.
type ParameterBuilder struct {
	name, typ  string
	modifier   string
	def        string
	attributes []string
}

// Parameter starts a parameter.
func Parameter(name, typ string) ParameterBuilder {
	mustIdentifier("parameter name", name)
	mustText("parameter type", typ)
	return ParameterBuilder{name: name, typ: typ}
}

func (b ParameterBuilder) Name() string { return b.name }

// WithModifier sets ref, out, in, params or this.
func (b ParameterBuilder) WithModifier(mod string) ParameterBuilder { b.modifier = mod; return b }

func (b ParameterBuilder) WithDefault(expr string) ParameterBuilder { b.def = expr; return b }

func (b ParameterBuilder) AddAttribute(attr string) ParameterBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b ParameterBuilder) node() syntax.Parameter {
	return syntax.Parameter{
		Attributes: slices.Clone(b.attributes),
		Modifier:   b.modifier,
		Type:       b.typ,
		Name:       b.name,
		Default:    b.def,
	}
}

// MethodBuilder accumulates a method or constructor.
type MethodBuilder struct {
	name        string
	constructor bool
	returnType  string
	access      Accessibility
	mods        []string
	typeParams  []string
	constraints []string
	params      []ParameterBuilder
	initializer string
	body        []string
	hasBody     bool
	expression  string
	doc         []string
	attributes  []string
}

// Method starts a public void method.
func Method(name string) MethodBuilder {
	mustIdentifier("method name", name)
	return MethodBuilder{name: name, returnType: "void", access: Public}
}

// Constructor starts a public constructor; it takes the enclosing type's name.
func Constructor() MethodBuilder {
	return MethodBuilder{constructor: true, access: Public}
}

func (b MethodBuilder) Name() string { return b.name }

func (b MethodBuilder) IsConstructor() bool { return b.constructor }

func (b MethodBuilder) WithReturnType(typ string) MethodBuilder {
	mustText("return type", typ)
	b.returnType = typ
	return b
}

func (b MethodBuilder) WithAccessibility(a Accessibility) MethodBuilder { b.access = a; return b }

// WithModifiers appends modifiers such as "static", "async" or "override".
func (b MethodBuilder) WithModifiers(mods ...string) MethodBuilder {
	b.mods = with(b.mods, mods...)
	return b
}

func (b MethodBuilder) AddTypeParameter(name string) MethodBuilder {
	mustIdentifier("type parameter", name)
	b.typeParams = with(b.typeParams, name)
	return b
}

// AddConstraint adds a where clause body, e.g. "T : class".
func (b MethodBuilder) AddConstraint(c string) MethodBuilder {
	mustText("constraint", c)
	b.constraints = with(b.constraints, c)
	return b
}

func (b MethodBuilder) AddParameter(p ParameterBuilder) MethodBuilder {
	b.params = with(b.params, p)
	return b
}

// WithInitializer sets a constructor initializer such as "base(name)".
func (b MethodBuilder) WithInitializer(call string) MethodBuilder {
	b.initializer = call
	return b
}

// WithBody replaces the statement list. An empty call still gives the
// method an empty block body.
func (b MethodBuilder) WithBody(stmts ...string) MethodBuilder {
	b.body = slices.Clone(stmts)
	b.hasBody = true
	b.expression = ""
	return b
}

// AddStatement appends one statement to the body.
func (b MethodBuilder) AddStatement(stmt string) MethodBuilder {
	b.body = with(b.body, stmt)
	b.hasBody = true
	b.expression = ""
	return b
}

// WithExpression makes the method expression-bodied.
func (b MethodBuilder) WithExpression(expr string) MethodBuilder {
	b.expression = expr
	b.body = nil
	b.hasBody = false
	return b
}

func (b MethodBuilder) WithDoc(lines ...string) MethodBuilder {
	b.doc = slices.Clone(lines)
	return b
}

func (b MethodBuilder) AddAttribute(attr string) MethodBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b MethodBuilder) decl() syntax.Decl {
	params := make([]syntax.Parameter, 0, len(b.params))
	for _, p := range b.params {
		params = append(params, p.node())
	}
	var body []string
	if b.hasBody {
		body = make([]string, len(b.body))
		copy(body, b.body)
	}
	return &syntax.Method{
		Doc:         slices.Clone(b.doc),
		Attributes:  slices.Clone(b.attributes),
		Modifiers:   modifiers(b.access, b.mods...),
		ReturnType:  b.returnType,
		Name:        b.name,
		Constructor: b.constructor,
		TypeParams:  slices.Clone(b.typeParams),
		Params:      params,
		Constraints: slices.Clone(b.constraints),
		Initializer: b.initializer,
		Body:        body,
		Expression:  b.expression,
	}
}

// EnumMemberBuilder accumulates one enum constant.
type EnumMemberBuilder struct {
	name       string
	value      string
	doc        []string
	attributes []string
}

// EnumMember starts an enum constant.
func EnumMember(name string) EnumMemberBuilder {
	mustIdentifier("enum member", name)
	return EnumMemberBuilder{name: name}
}

func (b EnumMemberBuilder) Name() string { return b.name }

func (b EnumMemberBuilder) WithValue(v string) EnumMemberBuilder { b.value = v; return b }

func (b EnumMemberBuilder) WithDoc(lines ...string) EnumMemberBuilder {
	b.doc = slices.Clone(lines)
	return b
}

func (b EnumMemberBuilder) AddAttribute(attr string) EnumMemberBuilder {
	mustText("attribute", attr)
	b.attributes = with(b.attributes, attr)
	return b
}

func (b EnumMemberBuilder) decl() syntax.Decl {
	return &syntax.EnumMember{
		Doc:        slices.Clone(b.doc),
		Attributes: slices.Clone(b.attributes),
		Name:       b.name,
		Value:      b.value,
	}
}

type rawMember string

func (r rawMember) decl() syntax.Decl { return &syntax.Raw{Text: string(r)} }
