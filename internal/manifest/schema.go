package manifest

// Manifest is the root of a generation manifest (JSON or HCL).
type Manifest struct {
	Metadata Metadata `json:"metadata" hcl:"metadata,block"`
	Types    []Type   `json:"types" hcl:"type,block"`

	// Dir is the directory template paths are resolved against.
	Dir string `json:"-"`
}

// Metadata holds manifest-level information.
type Metadata struct {
	Version     string `json:"version" hcl:"version,optional"`
	Name        string `json:"name,omitempty" hcl:"name,optional"`
	Description string `json:"description,omitempty" hcl:"description,optional"`
	Header      string `json:"header,omitempty" hcl:"header,optional"`
}

// Type declares one top-level C# type.
type Type struct {
	Name          string       `json:"name" hcl:"name,label"`
	Kind          string       `json:"kind,omitempty" hcl:"kind,optional"` // class, struct, record, record_struct, interface, enum
	Namespace     string       `json:"namespace,omitempty" hcl:"namespace,optional"`
	Accessibility string       `json:"accessibility,omitempty" hcl:"accessibility,optional"`
	Modifiers     []string     `json:"modifiers,omitempty" hcl:"modifiers,optional"`
	Doc           string       `json:"doc,omitempty" hcl:"doc,optional"`
	Attributes    []string     `json:"attributes,omitempty" hcl:"attributes,optional"`
	TypeParams    []string     `json:"type_params,omitempty" hcl:"type_params,optional"`
	Constraints   []string     `json:"constraints,omitempty" hcl:"constraints,optional"`
	Bases         []string     `json:"bases,omitempty" hcl:"bases,optional"`
	Usings        []string     `json:"usings,omitempty" hcl:"usings,optional"`
	StaticUsings  []string     `json:"static_usings,omitempty" hcl:"static_usings,optional"`
	DependsOn     []string     `json:"depends_on,omitempty" hcl:"depends_on,optional"`
	Template      string       `json:"template,omitempty" hcl:"template,optional"` // path of an override template
	Parameters    []Param      `json:"parameters,omitempty" hcl:"parameter,block"`  // primary constructor
	Fields        []Field      `json:"fields,omitempty" hcl:"field,block"`
	Properties    []Property   `json:"properties,omitempty" hcl:"property,block"`
	Methods       []Method     `json:"methods,omitempty" hcl:"method,block"`
	Members       []EnumMember `json:"members,omitempty" hcl:"member,block"`
}

// Field declares a field.
type Field struct {
	Name          string `json:"name" hcl:"name,label"`
	Type          string `json:"type" hcl:"type"`
	Accessibility string `json:"accessibility,omitempty" hcl:"accessibility,optional"`
	Static        bool   `json:"static,omitempty" hcl:"static,optional"`
	ReadOnly      bool   `json:"readonly,omitempty" hcl:"readonly,optional"`
	Const         bool   `json:"const,omitempty" hcl:"const,optional"`
	Initializer   string `json:"initializer,omitempty" hcl:"initializer,optional"`
	Doc           string `json:"doc,omitempty" hcl:"doc,optional"`
}

// Property declares a property.
type Property struct {
	Name          string   `json:"name" hcl:"name,label"`
	Type          string   `json:"type" hcl:"type"`
	Accessibility string   `json:"accessibility,omitempty" hcl:"accessibility,optional"`
	Modifiers     []string `json:"modifiers,omitempty" hcl:"modifiers,optional"`
	Access        string   `json:"access,omitempty" hcl:"access,optional"` // get_set (default), get, get_init
	SetterAccess  string   `json:"setter_accessibility,omitempty" hcl:"setter_accessibility,optional"`
	Expression    string   `json:"expression,omitempty" hcl:"expression,optional"`
	Initializer   string   `json:"initializer,omitempty" hcl:"initializer,optional"`
	Doc           string   `json:"doc,omitempty" hcl:"doc,optional"`
}

// Method declares a method, or a constructor when Constructor is set.
type Method struct {
	Name          string   `json:"name" hcl:"name,label"`
	Returns       string   `json:"returns,omitempty" hcl:"returns,optional"`
	Accessibility string   `json:"accessibility,omitempty" hcl:"accessibility,optional"`
	Modifiers     []string `json:"modifiers,omitempty" hcl:"modifiers,optional"`
	Constructor   bool     `json:"constructor,omitempty" hcl:"constructor,optional"`
	Initializer   string   `json:"initializer,omitempty" hcl:"initializer,optional"`
	TypeParams    []string `json:"type_params,omitempty" hcl:"type_params,optional"`
	Params        []Param  `json:"params,omitempty" hcl:"param,block"`
	Body          []string `json:"body,omitempty" hcl:"body,optional"`
	Expression    string   `json:"expression,omitempty" hcl:"expression,optional"`
	Doc           string   `json:"doc,omitempty" hcl:"doc,optional"`
}

// Param declares a method or primary-constructor parameter.
type Param struct {
	Name     string `json:"name" hcl:"name,label"`
	Type     string `json:"type" hcl:"type"`
	Modifier string `json:"modifier,omitempty" hcl:"modifier,optional"`
	Default  string `json:"default,omitempty" hcl:"default,optional"`
}

// EnumMember declares one enum constant.
type EnumMember struct {
	Name  string `json:"name" hcl:"name,label"`
	Value string `json:"value,omitempty" hcl:"value,optional"`
	Doc   string `json:"doc,omitempty" hcl:"doc,optional"`
}

// QualifiedName is Namespace.Name, or Name at file scope.
func (t *Type) QualifiedName() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// Resolve finds the type a reference made from the namespace of from
// names. A type with that simple name in the same namespace wins, then an
// exact qualified name, then the only type with that simple name.
// ambiguous is set when the simple name matches several types and nothing
// more specific decides. from may be nil (file scope).
func (m *Manifest) Resolve(name string, from *Type) (target *Type, ambiguous bool) {
	ns := ""
	if from != nil {
		ns = from.Namespace
	}
	var simple []*Type
	for i := range m.Types {
		t := &m.Types[i]
		if t.Name == name && t.Namespace == ns {
			return t, false
		}
		if t.Name == name {
			simple = append(simple, t)
		}
	}
	for i := range m.Types {
		if t := &m.Types[i]; t.QualifiedName() == name {
			return t, false
		}
	}
	switch len(simple) {
	case 0:
		return nil, false
	case 1:
		return simple[0], false
	}
	return nil, true
}
