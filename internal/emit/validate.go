package emit

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/srcgen/srcgen/internal/format"
	"github.com/srcgen/srcgen/internal/result"
	"github.com/srcgen/srcgen/internal/syntax"
)

// Check runs the validation selected by opts.Validation.
func Check(u syntax.Unit, text string, opts format.Options) []result.Diagnostic {
	switch opts.Validation {
	case format.ValidationStructural:
		return checkStructure(u, text)
	case format.ValidationCompiler:
		return checkWithCompiler(text, opts.Validator)
	default:
		return nil
	}
}

func checkStructure(u syntax.Unit, text string) []result.Diagnostic {
	diags := checkDelimiters(text)
	for _, g := range u.Groups {
		diags = append(diags, checkDuplicates(g.Namespace, "", g.Decls)...)
		for _, d := range g.Decls {
			if t, ok := d.(*syntax.Type); ok {
				diags = append(diags, checkType(symbol(g.Namespace, t.Name), t)...)
			}
		}
	}
	return diags
}

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// checkDelimiters scans C#-like text, skipping comments, strings and
// character literals, and reports unbalanced brackets.
func checkDelimiters(text string) []result.Diagnostic {
	type open struct {
		r   rune
		pos scanner.Position
	}
	var (
		diags []result.Diagnostic
		stack []open
		s     scanner.Scanner
	)
	s.Init(strings.NewReader(text))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	s.Error = func(s *scanner.Scanner, msg string) {
		// Escape rules differ from C# (verbatim strings); only unterminated
		// literals and comments matter here.
		if !strings.Contains(msg, "not terminated") {
			return
		}
		diags = append(diags, result.Errorf(result.CodeUnbalanced, position(s.Pos()), "%s", msg))
	}
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		switch tok {
		case '(', '[', '{':
			stack = append(stack, open{r: tok, pos: s.Position})
		case ')', ']', '}':
			want := closers[tok]
			if len(stack) == 0 || stack[len(stack)-1].r != want {
				diags = append(diags, result.Errorf(result.CodeUnbalanced, position(s.Position), "unexpected %q", tok))
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
	for _, o := range stack {
		diags = append(diags, result.Errorf(result.CodeUnbalanced, position(o.pos), "%q is never closed", o.r))
	}
	return diags
}

func position(p scanner.Position) result.Location {
	return result.Location{Line: p.Line, Column: p.Column}
}

func checkType(sym string, t *syntax.Type) []result.Diagnostic {
	diags := checkDuplicates(sym, t.Name, t.Members)
	for _, m := range t.Members {
		if nested, ok := m.(*syntax.Type); ok {
			diags = append(diags, checkType(sym+"."+nested.Name, nested)...)
		}
	}
	return diags
}

// checkDuplicates reports members declared twice in one scope. Methods
// may overload and are skipped. owner is the enclosing type name, if any.
func checkDuplicates(sym, owner string, decls []syntax.Decl) []result.Diagnostic {
	var diags []result.Diagnostic
	seen := make(map[string]bool)
	for _, d := range decls {
		if _, isMethod := d.(*syntax.Method); isMethod {
			continue
		}
		name := d.DeclName()
		if name == "" {
			continue
		}
		loc := result.Location{Symbol: symbolOf(sym, name)}
		if owner != "" && name == owner {
			diags = append(diags, result.Errorf(result.CodeDuplicateName, loc,
				"member %q has the same name as its enclosing type", name))
		}
		if seen[name] {
			diags = append(diags, result.Errorf(result.CodeDuplicateName, loc, "%q is declared more than once", name))
			continue
		}
		seen[name] = true
	}
	return diags
}

func symbolOf(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

// compilerLine matches MSBuild-style output: "Gen.cs(3,17): error CS1002: ; expected [x.csproj]".
var (
	compilerLine  = regexp.MustCompile(`^(.*?)\((\d+),(\d+)\):\s*(error|warning|info)\s+([A-Za-z]+\d+)\s*:\s*(.*)$`)
	projectSuffix = regexp.MustCompile(`\s+\[[^\]]+\]$`)
)

func checkWithCompiler(text string, tool format.Tool) []result.Diagnostic {
	out, err := format.Run(tool, text)
	if err != nil {
		slog.Debug("compiler validation skipped", "command", tool.Command, "error", err)
		return nil
	}
	diags := parseCompilerOutput(out.Stdout + "\n" + out.Stderr)
	if out.ExitCode != 0 && len(diags) == 0 {
		slog.Debug("compiler validation skipped", "command", tool.Command, "exit_code", out.ExitCode)
		return nil
	}
	return diags
}

func parseCompilerOutput(output string) []result.Diagnostic {
	var diags []result.Diagnostic
	for _, line := range strings.Split(output, "\n") {
		m := compilerLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		ln, _ := strconv.Atoi(m[2])
		col, _ := strconv.Atoi(m[3])
		var sev result.Severity
		if err := sev.UnmarshalText([]byte(m[4])); err != nil {
			continue
		}
		diags = append(diags, result.Diagnostic{
			ID:       m[5],
			Severity: sev,
			Message:  projectSuffix.ReplaceAllString(m[6], ""),
			Location: result.Location{File: strings.TrimSpace(m[1]), Line: ln, Column: col},
		})
	}
	return diags
}
