// Package registry maps manifest declaration kinds to the handlers that
// validate and build them.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/srcgen/srcgen/internal/builder"
	"github.com/srcgen/srcgen/internal/manifest"
	"github.com/srcgen/srcgen/internal/result"
)

// Handler validates and builds one declaration kind.
type Handler interface {
	Kind() string
	Validate(t *manifest.Type) []result.Diagnostic
	Build(t *manifest.Type, m *manifest.Manifest) (builder.TypeBuilder, error)
}

// UnknownKindError is returned by Lookup for a kind nothing is registered for.
type UnknownKindError struct {
	Kind      string
	Supported []string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unsupported declaration kind: %s", e.Kind)
}

// Default is the registry the handler package registers into.
var Default = New()

// Registry holds handlers by canonical kind plus alternative spellings.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	aliases  map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]Handler), aliases: make(map[string]string)}
}

// Normalize folds a kind as written in a manifest ("Record Struct",
// "record-struct") to its canonical form ("record_struct").
func Normalize(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	return strings.Join(strings.FieldsFunc(kind, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	}), "_")
}

// Register adds h under h.Kind() and the given aliases. Registering a
// kind or alias twice panics.
func (r *Registry) Register(h Handler, aliases ...string) {
	kind := Normalize(h.Kind())
	if kind == "" {
		panic("registry: handler with empty kind")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(kind) {
		panic("registry: kind registered twice: " + kind)
	}
	r.handlers[kind] = h
	for _, a := range aliases {
		a = Normalize(a)
		if r.taken(a) {
			panic("registry: alias registered twice: " + a)
		}
		r.aliases[a] = kind
	}
}

func (r *Registry) taken(name string) bool {
	_, h := r.handlers[name]
	_, a := r.aliases[name]
	return h || a
}

// Get returns the handler for kind or one of its aliases.
func (r *Registry) Get(kind string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kind = Normalize(kind)
	if canonical, ok := r.aliases[kind]; ok {
		kind = canonical
	}
	h, ok := r.handlers[kind]
	return h, ok
}

// Lookup is Get with an *UnknownKindError listing the supported kinds.
func (r *Registry) Lookup(kind string) (Handler, error) {
	if h, ok := r.Get(kind); ok {
		return h, nil
	}
	return nil, &UnknownKindError{Kind: kind, Supported: r.ListSupportedKinds()}
}

// ListSupportedKinds returns the canonical kinds, sorted. Aliases are not listed.
func (r *Registry) ListSupportedKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.handlers))
}
