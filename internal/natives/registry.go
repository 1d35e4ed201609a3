// Package natives implements the native-library registry: the
// `@`-prefixed import namespace resolved by factory functions that
// populate a fresh heap Object (spec §4.5, §4.6).
package natives

import (
	"fmt"
	"strings"

	"github.com/shiroscript/shiro/internal/heap"
	"github.com/shiroscript/shiro/internal/value"
)

// Factory populates a freshly allocated Object aggregate with a native
// library's members, usually native functions.
type Factory func(obj *heap.Aggregate)

// Registry maps `@`-prefixed import paths to Factory functions.
type Registry struct {
	libs map[string]Factory
}

// NewRegistry creates an empty registry. Callers typically follow with
// Register calls for every library internal/stdlib provides, then pass
// the registry to eval.New (the runtime driver does this in runtime.New).
func NewRegistry() *Registry {
	return &Registry{libs: make(map[string]Factory)}
}

// Register binds name (e.g. "@std/io") to factory. Re-registering a name
// replaces the previous factory.
func (r *Registry) Register(name string, factory Factory) {
	r.libs[name] = factory
}

// IsNativePath reports whether path carries the leading `@` convention
// native libraries are named under. This is a naming-convention check
// only, NOT a recognition check: an `@`-prefixed path the registry does
// not recognize still falls through to stdlib-root-relative source
// module resolution (spec §4.5 item 2, §6 "Environment"). Use Has to
// decide whether a path actually dispatches to a native factory.
func IsNativePath(path string) bool {
	return strings.HasPrefix(path, "@")
}

// Has reports whether the registry recognizes path as a registered
// native library. evalImport gates the native-vs-module-loader dispatch
// on this, not on IsNativePath's bare prefix check (spec §4.5 item 1:
// "if the registry recognizes path as native").
func (r *Registry) Has(path string) bool {
	_, ok := r.libs[path]
	return ok
}

// Load resolves a native library path against h, allocating a fresh
// Object and running its factory. Every `use "@std/io" as io` evaluates
// the factory again — native libraries are not cached, matching source
// modules (spec §4.5).
func (r *Registry) Load(path string, h *heap.Heap) (value.Value, error) {
	factory, ok := r.libs[path]
	if !ok {
		return nil, fmt.Errorf("unknown native library %q", path)
	}
	ref := h.AllocObject()
	heapRef, ok := ref.(*value.HeapRefValue)
	if !ok {
		return nil, fmt.Errorf("internal error: AllocObject did not return a HeapRef")
	}
	obj, err := h.Deref(heapRef.Addr)
	if err != nil {
		return nil, err
	}
	factory(obj)
	return ref, nil
}
