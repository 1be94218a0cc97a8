// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
)

// View is a read-only view of a backing Sequence.
//
// All reads are forwarded to the backing sequence, so changes its owner makes
// are visible through the view. A View itself is immutable.
type View[T comparable] struct {
	backing Sequence[T]
}

var (
	_ Sequence[int]   = (*View[int])(nil)
	_ Iterable[int]   = (*View[int])(nil)
	_ Reversible[int] = (*View[int])(nil)
	_ Counter[int]    = (*View[int])(nil)
	_ Equaler         = (*View[int])(nil)
)

// New returns a view of s.
func New[T comparable](s Sequence[T]) (*View[T], error) {
	if s == nil {
		return nil, &TypeConstraintError{Type: "nil"}
	}
	if isNilPointer(s) {
		return nil, &TypeConstraintError{Type: fmt.Sprintf("nil %T", s)}
	}
	return &View[T]{backing: s}, nil
}

func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Backing returns the wrapped sequence.
func (v *View[T]) Backing() Sequence[T] { return v.backing }

// Len returns the current length of the backing sequence.
func (v *View[T]) Len() int { return v.backing.Len() }

// At returns the element at position i. Negative positions count from the end.
func (v *View[T]) At(i int) (T, error) {
	if i < 0 {
		i += v.backing.Len()
	}
	return v.backing.At(i)
}

// Slice returns a new view over a copy of the selected elements.
//
// The bounds follow the usual clamping rules: negative values count from the
// end, out of range values are clamped and a negative step walks backwards.
// Use Begin and End for omitted bounds.
func (v *View[T]) Slice(start, stop, step int) (*View[T], error) {
	if s, ok := v.backing.(Slicer[T]); ok {
		sub, err := s.Slice(start, stop, step)
		if err != nil {
			return nil, err
		}
		return &View[T]{backing: sub}, nil
	}

	start, _, n, err := Bounds(start, stop, step, v.backing.Len())
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, n)
	for i, j := 0, start; i < n; i, j = i+1, j+step {
		el, err := v.backing.At(j)
		if err != nil {
			return nil, err
		}
		items = append(items, el)
	}
	return &View[T]{backing: &Slice[T]{p: &items}}, nil
}

// Contains reports whether el is in the backing sequence.
func (v *View[T]) Contains(el T) (bool, error) {
	return v.backing.Contains(el)
}

// Index returns the position of the first element equal to el.
func (v *View[T]) Index(el T) (int, error) {
	return v.IndexRange(el, 0, End)
}

// IndexRange is like Index but only considers positions in [start, stop).
func (v *View[T]) IndexRange(el T, start, stop int) (int, error) {
	start, stop = window(start, stop, v.backing.Len())

	if idx, ok := v.backing.(Indexer[T]); ok {
		return idx.Index(el, start, stop)
	}

	for i := start; i < stop; i++ {
		cur, err := v.backing.At(i)
		if err != nil {
			return -1, err
		}
		if ElemEqual(cur, el) {
			return i, nil
		}
	}
	return -1, &NotFoundError{Value: el}
}

// Count returns the number of elements equal to el.
func (v *View[T]) Count(el T) (int, error) {
	if c, ok := v.backing.(Counter[T]); ok {
		return c.Count(el)
	}

	var n int
	for cur, err := range v.All() {
		if err != nil {
			return 0, err
		}
		if ElemEqual(cur, el) {
			n++
		}
	}
	return n, nil
}

// All iterates the elements in order. Each call starts a new traversal.
// A read error is yielded once and ends the traversal.
func (v *View[T]) All() iter.Seq2[T, error] {
	if it, ok := v.backing.(Iterable[T]); ok {
		return it.All()
	}

	return func(yield func(T, error) bool) {
		for i := 0; i < v.backing.Len(); i++ {
			el, err := v.backing.At(i)
			if err != nil {
				yield(el, err)
				return
			}
			if !yield(el, nil) {
				return
			}
		}
	}
}

// Backward iterates the elements in reverse order.
// Backing sequences that can't walk backwards themselves are read completely first.
func (v *View[T]) Backward() iter.Seq2[T, error] {
	if r, ok := v.backing.(Reversible[T]); ok {
		return r.Backward()
	}

	return func(yield func(T, error) bool) {
		items, err := v.Values()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i], nil) {
				return
			}
		}
	}
}

// Values returns the current elements as a new slice.
func (v *View[T]) Values() ([]T, error) {
	items := make([]T, 0, v.backing.Len())
	for el, err := range v.All() {
		if err != nil {
			return nil, err
		}
		items = append(items, el)
	}
	return items, nil
}

// Equal compares the backing sequence with other.
//
// If the backing sequence implements Equaler the comparison is left to it.
// Otherwise other has to be a view, a Sequence[T], a []T or a *[]T and is
// compared element by element. Other operands, and read errors, give NotApplicable.
func (v *View[T]) Equal(other interface{}) Cmp {
	if eq, ok := v.backing.(Equaler); ok {
		return eq.Equal(other)
	}

	o, ok := asSequence[T](other)
	if !ok {
		return NotApplicable
	}

	c, err := compareSeq(v.backing, o, func(a, b T) int {
		if ElemEqual(a, b) {
			return 0
		}
		return 1
	})
	if err != nil {
		return NotApplicable
	}
	return cmpOf(c == 0)
}

// Copy returns v. Views are immutable so there is nothing to copy.
func (v *View[T]) Copy() *View[T] { return v }

// DeepCopy returns v. memo is accepted for symmetry with recursive copy helpers and ignored.
func (v *View[T]) DeepCopy(memo map[uintptr]interface{}) *View[T] { return v }

// Hash is derived from the identity of the backing sequence.
// Views of the same backing sequence, directly or through other views, hash equal.
func (v *View[T]) Hash() uint64 {
	return hashIdentity(v.identity())
}

func (v *View[T]) identity() uintptr {
	return identityOf(v.backing)
}

// String returns the view type name followed by the backing sequence, e.g. View[int]([1, 2, 3]).
func (v *View[T]) String() string {
	name := reflect.TypeOf(*v).Name()
	if s, ok := v.backing.(fmt.Stringer); ok {
		return name + "(" + s.String() + ")"
	}
	return fmt.Sprintf("%s(%v)", name, v.backing)
}

// Compare orders the view against other, lexicographically unless the backing sequence is an Orderer.
func Compare[T cmp.Ordered](v *View[T], other interface{}) (int, Cmp) {
	return CompareFunc(v, other, cmp.Compare[T])
}

// CompareFunc is like Compare but uses cmpFn to order elements.
func CompareFunc[T comparable](v *View[T], other interface{}, cmpFn func(a, b T) int) (int, Cmp) {
	if o, ok := v.backing.(Orderer); ok {
		return o.Compare(other)
	}

	o, ok := asSequence[T](other)
	if !ok {
		return 0, NotApplicable
	}

	c, err := compareSeq(v.backing, o, cmpFn)
	if err != nil {
		return 0, NotApplicable
	}
	return c, cmpOf(c == 0)
}

func asSequence[T comparable](other interface{}) (Sequence[T], bool) {
	switch o := other.(type) {
	case Sequence[T]:
		if o == nil || isNilPointer(o) {
			return nil, false
		}
		return o, true
	case []T:
		return fromValue(o), true
	case *[]T:
		if o == nil {
			return nil, false
		}
		return FromSlice(o), true
	}
	return nil, false
}

func compareSeq[T any](a, b Sequence[T], cmpFn func(x, y T) int) (int, error) {
	la, lb := a.Len(), b.Len()
	for i := 0; i < min(la, lb); i++ {
		x, err := a.At(i)
		if err != nil {
			return 0, err
		}
		y, err := b.At(i)
		if err != nil {
			return 0, err
		}
		if c := cmpFn(x, y); c != 0 {
			return c, nil
		}
	}
	return cmp.Compare(la, lb), nil
}
