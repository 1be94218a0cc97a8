// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"fmt"
	"reflect"
	"sort"
	"unsafe"
)

// AttrFunc is a module function that takes the proxied value as its first argument.
type AttrFunc[T any] func(self *T, args ...interface{}) (interface{}, error)

// Module is the origin of proxies: a name and the functions its proxies can call.
type Module[T any] struct {
	name  string
	attrs map[string]AttrFunc[T]
}

// DefaultModule is the name used by NewProxy.
const DefaultModule = "main"

// NewModule returns a module with the given name and attribute functions.
func NewModule[T any](name string, attrs map[string]AttrFunc[T]) *Module[T] {
	m := &Module[T]{
		name:  name,
		attrs: make(map[string]AttrFunc[T], len(attrs)),
	}
	for k, f := range attrs {
		m.attrs[k] = f
	}
	return m
}

// Name returns the module name.
func (m *Module[T]) Name() string { return m.name }

// Attrs returns the sorted names of the module functions.
func (m *Module[T]) Attrs() []string {
	names := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Wrap returns a proxy for ref.
func (m *Module[T]) Wrap(ref *T) *Proxy[T] {
	return &Proxy[T]{ref: ref, origin: m}
}

// Proxy wraps a reference. Equality and hashing only consider the identity of the referent,
// never its value.
type Proxy[T any] struct {
	ref    *T
	origin *Module[T]
}

var _ Equaler = (*Proxy[int])(nil)

// NewProxy returns a proxy for ref that belongs to a module named DefaultModule without functions.
func NewProxy[T any](ref *T) *Proxy[T] {
	return NewModule[T](DefaultModule, nil).Wrap(ref)
}

// Self returns the referent.
func (p *Proxy[T]) Self() *T { return p.ref }

// Origin returns the module that created the proxy.
func (p *Proxy[T]) Origin() *Module[T] { return p.origin }

// Equal is Equal if other is a *Proxy[T] of the same referent and NotApplicable if it isn't a *Proxy[T] at all.
func (p *Proxy[T]) Equal(other interface{}) Cmp {
	o, ok := other.(*Proxy[T])
	if !ok || o == nil {
		return NotApplicable
	}
	return cmpOf(p.ref == o.ref)
}

// Hash is derived from the address of the referent.
func (p *Proxy[T]) Hash() uint64 {
	return hashIdentity(uintptr(unsafe.Pointer(p.ref)))
}

// Call invokes the module function name with the referent as first argument.
func (p *Proxy[T]) Call(name string, args ...interface{}) (interface{}, error) {
	f, ok := p.origin.attrs[name]
	if !ok {
		return nil, &AttributeError{Module: p.origin.name, Name: name}
	}
	return f(p.ref, args...)
}

// String returns something like <main wrapper of bytes.Buffer object>.
func (p *Proxy[T]) String() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Interface && p.ref != nil {
		if dyn := reflect.ValueOf(*p.ref); dyn.IsValid() {
			t = dyn.Type()
		}
	}
	return fmt.Sprintf("<%s wrapper of %s object>", p.origin.name, typeName(t))
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
