package generator

import (
	"fmt"
	"strings"
)

// fileSet collects rendered files keyed by name.
type fileSet struct {
	files map[string][]byte
}

func newFileSet() *fileSet {
	return &fileSet{files: make(map[string][]byte)}
}

func (s *fileSet) has(name string) bool {
	_, ok := s.files[name]
	return ok
}

// add stores text under name. Empty text is skipped; a name that is already
// taken is reported as false.
func (s *fileSet) add(name, text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	if s.has(name) {
		return false
	}
	s.files[name] = []byte(text)
	return true
}

// build returns filename -> content.
func (s *fileSet) build() map[string][]byte {
	out := make(map[string][]byte, len(s.files))
	for n, b := range s.files {
		out[n] = b
	}
	return out
}

// fileName is the split-mode file for a declaration: <Name>.cs, then
// <Namespace>.<Name>.cs when the simple name is already used (file-scope
// declarations use "global" as namespace), then <Namespace>.<Name>.<n>.cs
// counting from 2.
func (s *fileSet) fileName(name, namespace string) string {
	if f := name + ".cs"; !s.has(f) {
		return f
	}
	if namespace == "" {
		namespace = "global"
	}
	qualified := namespace + "." + name
	if f := qualified + ".cs"; !s.has(f) {
		return f
	}
	for n := 2; ; n++ {
		if f := fmt.Sprintf("%s.%d.cs", qualified, n); !s.has(f) {
			return f
		}
	}
}
