// Package syntax holds the declaration tree of one C# compilation unit and
// its canonical text rendering. Trees are values: nothing in this package
// mutates a Unit after it has been built.
package syntax

// Import is a using directive. Static is part of its identity:
// "using X;" and "using static X;" are different imports.
type Import struct {
	Name   string `json:"name"`
	Static bool   `json:"static,omitempty"`
}

// String renders the directive without line ending.
func (i Import) String() string {
	if i.Static {
		return "using static " + i.Name + ";"
	}
	return "using " + i.Name + ";"
}

// Group is a run of top-level declarations sharing a namespace.
// The empty namespace means file scope.
type Group struct {
	Namespace string
	Decls     []Decl
}

// Unit is one compilable file.
type Unit struct {
	// Header is the leading trivia, one comment line per entry.
	Header  []string
	Imports []Import
	Groups  []Group
}

// Namespaces lists the group keys in tree order.
func (u Unit) Namespaces() []string {
	out := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		out = append(out, g.Namespace)
	}
	return out
}

// Decls returns every top-level declaration in tree order.
func (u Unit) Decls() []Decl {
	var out []Decl
	for _, g := range u.Groups {
		out = append(out, g.Decls...)
	}
	return out
}

// IsEmpty reports whether the unit declares nothing.
func (u Unit) IsEmpty() bool {
	for _, g := range u.Groups {
		if len(g.Decls) > 0 {
			return false
		}
	}
	return true
}

// Decl is a declaration node: *Type, *Field, *Property, *Method,
// *EnumMember or *Raw.
type Decl interface {
	// DeclName is the declared identifier; empty for raw text.
	DeclName() string
	decl()
}

// TypeKind is the keyword a type declaration is introduced with.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindRecord
	KindRecordStruct
	KindInterface
	KindEnum
)

// Keyword returns the C# keyword(s) for the kind.
func (k TypeKind) Keyword() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindRecord:
		return "record"
	case KindRecordStruct:
		return "record struct"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	default:
		return "class"
	}
}

func (k TypeKind) String() string { return k.Keyword() }

// Type is a class, struct, record, interface or enum declaration.
type Type struct {
	Doc         []string
	Attributes  []string
	Modifiers   []string
	Kind        TypeKind
	Name        string
	TypeParams  []string
	Params      []Parameter // primary constructor
	Bases       []string
	Constraints []string
	Members     []Decl
}

// Field is a field or constant.
type Field struct {
	Doc         []string
	Attributes  []string
	Modifiers   []string
	Type        string
	Name        string
	Initializer string
}

// Accessor is one property accessor such as "get" or "private set".
type Accessor struct {
	Modifier string
	Keyword  string
}

// Property is an auto-property or an expression-bodied property.
type Property struct {
	Doc         []string
	Attributes  []string
	Modifiers   []string
	Type        string
	Name        string
	Accessors   []Accessor
	Expression  string
	Initializer string
}

// Method is a method or, when Constructor is set, a constructor.
type Method struct {
	Doc         []string
	Attributes  []string
	Modifiers   []string
	ReturnType  string
	Name        string
	Constructor bool
	TypeParams  []string
	Params      []Parameter
	Constraints []string
	// Initializer is a constructor initializer such as "base(name)".
	Initializer string
	Body        []string
	Expression  string
}

// Parameter is a method or primary-constructor parameter.
type Parameter struct {
	Attributes []string
	Modifier   string
	Type       string
	Name       string
	Default    string
}

// EnumMember is one enum constant.
type EnumMember struct {
	Doc        []string
	Attributes []string
	Name       string
	Value      string
}

// Raw is verbatim member text, e.g. produced by a template.
type Raw struct {
	Text string
}

func (t *Type) DeclName() string       { return t.Name }
func (f *Field) DeclName() string      { return f.Name }
func (p *Property) DeclName() string   { return p.Name }
func (m *Method) DeclName() string     { return m.Name }
func (e *EnumMember) DeclName() string { return e.Name }
func (r *Raw) DeclName() string        { return "" }

func (*Type) decl()       {}
func (*Field) decl()      {}
func (*Property) decl()   {}
func (*Method) decl()     {}
func (*EnumMember) decl() {}
func (*Raw) decl()        {}
