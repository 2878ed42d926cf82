package syntax

import (
	"fmt"
	"strings"

	"github.com/srcgen/srcgen/internal/format"
)

// RenderError reports a tree the renderer cannot print.
type RenderError struct {
	Path    string
	Message string
}

func (e *RenderError) Error() string {
	if e.Path == "" {
		return "render: " + e.Message
	}
	return "render " + e.Path + ": " + e.Message
}

// Render prints u as canonical C# text using opts' indentation and line ending.
func Render(u Unit, opts format.Options) (string, error) {
	opts = opts.WithDefaults()
	p := &printer{w: writer{indent: opts.Indent, eol: opts.EndOfLine}}
	p.printUnit(u)
	if p.err != nil {
		return "", p.err
	}
	return p.w.String(), nil
}

// writer accumulates lines at the current indentation level.
type writer struct {
	indent string
	eol    string
	level  int
	buf    strings.Builder
}

func (w *writer) line(s string) {
	if s != "" {
		for range w.level {
			w.buf.WriteString(w.indent)
		}
		w.buf.WriteString(s)
	}
	w.buf.WriteString(w.eol)
}

func (w *writer) blank() { w.buf.WriteString(w.eol) }

func (w *writer) String() string { return w.buf.String() }

type printer struct {
	w    writer
	err  error
	path []string
}

func (p *printer) fail(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &RenderError{Path: strings.Join(p.path, "."), Message: fmt.Sprintf(format, args...)}
}

func (p *printer) push(name string) { p.path = append(p.path, name) }
func (p *printer) pop()             { p.path = p.path[:len(p.path)-1] }

func (p *printer) printUnit(u Unit) {
	first := true
	section := func() {
		if !first {
			p.w.blank()
		}
		first = false
	}

	if len(u.Header) > 0 {
		section()
		for _, line := range u.Header {
			p.w.line(line)
		}
	}
	if len(u.Imports) > 0 {
		section()
		for _, imp := range u.Imports {
			if strings.TrimSpace(imp.Name) == "" {
				p.fail("import with empty name")
				return
			}
			p.w.line(imp.String())
		}
	}
	for _, g := range u.Groups {
		if len(g.Decls) == 0 {
			continue
		}
		if g.Namespace == "" {
			for _, d := range g.Decls {
				section()
				p.printDecl(d, nil)
			}
			continue
		}
		section()
		p.w.line("namespace " + g.Namespace)
		p.w.line("{")
		p.w.level++
		p.push(g.Namespace)
		for i, d := range g.Decls {
			if i > 0 {
				p.w.blank()
			}
			p.printDecl(d, nil)
		}
		p.pop()
		p.w.level--
		p.w.line("}")
	}
}

func (p *printer) printDecl(d Decl, parent *Type) {
	if p.err != nil {
		return
	}
	switch n := d.(type) {
	case *Type:
		p.printType(n)
	case *Field:
		p.printField(n)
	case *Property:
		p.printProperty(n)
	case *Method:
		p.printMethod(n, parent)
	case *EnumMember:
		p.printEnumMember(n, false)
	case *Raw:
		p.printRaw(n)
	case nil:
		p.fail("nil declaration")
	default:
		p.fail("unsupported declaration %T", d)
	}
}

func (p *printer) printDoc(doc []string) {
	if len(doc) == 0 {
		return
	}
	p.w.line("/// <summary>")
	for _, line := range doc {
		p.w.line(strings.TrimRight("/// "+line, " "))
	}
	p.w.line("/// </summary>")
}

func (p *printer) printAttributes(attrs []string) {
	for _, a := range attrs {
		p.w.line("[" + a + "]")
	}
}

func (p *printer) requireName(kind, name string) bool {
	if strings.TrimSpace(name) == "" {
		p.fail("%s with empty name", kind)
		return false
	}
	return true
}

func (p *printer) printType(t *Type) {
	if !p.requireName(t.Kind.Keyword(), t.Name) {
		return
	}
	p.push(t.Name)
	defer p.pop()

	p.printDoc(t.Doc)
	p.printAttributes(t.Attributes)

	var sig strings.Builder
	sig.WriteString(prefix(t.Modifiers))
	sig.WriteString(t.Kind.Keyword())
	sig.WriteString(" ")
	sig.WriteString(t.Name)
	sig.WriteString(typeParams(t.TypeParams))
	if len(t.Params) > 0 {
		sig.WriteString(params(t.Params))
	}
	if len(t.Bases) > 0 {
		sig.WriteString(" : ")
		sig.WriteString(strings.Join(t.Bases, ", "))
	}

	if len(t.Members) == 0 && len(t.Params) > 0 && (t.Kind == KindRecord || t.Kind == KindRecordStruct) {
		if len(t.Constraints) == 0 {
			p.w.line(sig.String() + ";")
			return
		}
		p.w.line(sig.String())
		p.printConstraints(t.Constraints)
		p.w.level++
		p.w.line(";")
		p.w.level--
		return
	}

	p.w.line(sig.String())
	p.printConstraints(t.Constraints)
	p.w.line("{")
	p.w.level++
	if t.Kind == KindEnum {
		p.printEnumBody(t)
	} else {
		var prev Decl
		for _, m := range t.Members {
			if prev != nil && needsBlank(prev, m) {
				p.w.blank()
			}
			p.printDecl(m, t)
			prev = m
		}
	}
	p.w.level--
	p.w.line("}")
}

func (p *printer) printConstraints(constraints []string) {
	p.w.level++
	for _, c := range constraints {
		p.w.line("where " + c)
	}
	p.w.level--
}

func (p *printer) printEnumBody(t *Type) {
	for i, m := range t.Members {
		em, ok := m.(*EnumMember)
		if !ok {
			p.fail("enum %s: member %T is not an enum member", t.Name, m)
			return
		}
		p.printEnumMember(em, i < len(t.Members)-1)
	}
}

func (p *printer) printEnumMember(e *EnumMember, comma bool) {
	if !p.requireName("enum member", e.Name) {
		return
	}
	p.printDoc(e.Doc)
	p.printAttributes(e.Attributes)
	s := e.Name
	if e.Value != "" {
		s += " = " + e.Value
	}
	if comma {
		s += ","
	}
	p.w.line(s)
}

func (p *printer) printField(f *Field) {
	if !p.requireName("field", f.Name) {
		return
	}
	p.printDoc(f.Doc)
	p.printAttributes(f.Attributes)
	s := prefix(f.Modifiers) + f.Type + " " + f.Name
	if f.Initializer != "" {
		s += " = " + f.Initializer
	}
	p.w.line(s + ";")
}

func (p *printer) printProperty(pr *Property) {
	if !p.requireName("property", pr.Name) {
		return
	}
	p.printDoc(pr.Doc)
	p.printAttributes(pr.Attributes)
	s := prefix(pr.Modifiers) + pr.Type + " " + pr.Name
	if pr.Expression != "" {
		p.w.line(s + " => " + pr.Expression + ";")
		return
	}
	accessors := pr.Accessors
	if len(accessors) == 0 {
		accessors = []Accessor{{Keyword: "get"}, {Keyword: "set"}}
	}
	parts := make([]string, 0, len(accessors))
	for _, a := range accessors {
		parts = append(parts, prefix([]string{a.Modifier})+a.Keyword+";")
	}
	s += " { " + strings.Join(parts, " ") + " }"
	if pr.Initializer != "" {
		s += " = " + pr.Initializer + ";"
	}
	p.w.line(s)
}

func (p *printer) printMethod(m *Method, parent *Type) {
	name := m.Name
	if m.Constructor {
		if parent == nil {
			p.fail("constructor outside a type")
			return
		}
		name = parent.Name
	}
	if !p.requireName("method", name) {
		return
	}
	p.printDoc(m.Doc)
	p.printAttributes(m.Attributes)

	s := prefix(m.Modifiers)
	if !m.Constructor {
		ret := m.ReturnType
		if ret == "" {
			ret = "void"
		}
		s += ret + " "
	}
	s += name + typeParams(m.TypeParams) + params(m.Params)
	if m.Constructor && m.Initializer != "" {
		s += " : " + m.Initializer
	}

	switch {
	case m.Expression != "":
		if len(m.Constraints) == 0 {
			p.w.line(s + " => " + m.Expression + ";")
			return
		}
		p.w.line(s)
		p.printConstraints(m.Constraints)
		p.w.level++
		p.w.line("=> " + m.Expression + ";")
		p.w.level--
	case m.Body == nil && bodiless(m, parent):
		if len(m.Constraints) == 0 {
			p.w.line(s + ";")
			return
		}
		p.w.line(s)
		p.printConstraints(m.Constraints)
		p.w.level++
		p.w.line(";")
		p.w.level--
	default:
		p.w.line(s)
		p.printConstraints(m.Constraints)
		p.w.line("{")
		p.w.level++
		for _, stmt := range m.Body {
			p.printLines(stmt)
		}
		p.w.level--
		p.w.line("}")
	}
}

func (p *printer) printRaw(r *Raw) {
	text := strings.TrimRight(strings.ReplaceAll(r.Text, "\r\n", "\n"), "\n")
	if strings.TrimSpace(text) == "" {
		p.fail("empty raw declaration")
		return
	}
	p.printLines(text)
}

func (p *printer) printLines(text string) {
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		p.w.line(strings.TrimRight(line, " \t"))
	}
}

// bodiless reports whether a method without statements ends in ";".
func bodiless(m *Method, parent *Type) bool {
	if m.Constructor {
		return false
	}
	if parent != nil && parent.Kind == KindInterface && !hasModifier(m.Modifiers, "static") {
		return true
	}
	return hasModifier(m.Modifiers, "abstract") || hasModifier(m.Modifiers, "extern") || hasModifier(m.Modifiers, "partial")
}

// needsBlank keeps runs of fields together and separates everything else.
func needsBlank(prev, next Decl) bool {
	_, prevField := prev.(*Field)
	_, nextField := next.(*Field)
	return !(prevField && nextField)
}

func hasModifier(mods []string, want string) bool {
	for _, m := range mods {
		if m == want {
			return true
		}
	}
	return false
}

func prefix(mods []string) string {
	var b strings.Builder
	for _, m := range mods {
		if m == "" {
			continue
		}
		b.WriteString(m)
		b.WriteString(" ")
	}
	return b.String()
}

func typeParams(tp []string) string {
	if len(tp) == 0 {
		return ""
	}
	return "<" + strings.Join(tp, ", ") + ">"
}

func params(ps []Parameter) string {
	parts := make([]string, 0, len(ps))
	for _, prm := range ps {
		var b strings.Builder
		for _, a := range prm.Attributes {
			b.WriteString("[" + a + "] ")
		}
		b.WriteString(prefix([]string{prm.Modifier}))
		b.WriteString(prm.Type)
		b.WriteString(" ")
		b.WriteString(prm.Name)
		if prm.Default != "" {
			b.WriteString(" = ")
			b.WriteString(prm.Default)
		}
		parts = append(parts, b.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
