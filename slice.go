// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"
)

// Slice is a Sequence backed by a Go slice.
// It is not safe for concurrent use while the underlying slice is being appended to.
type Slice[T comparable] struct {
	p *[]T

	// address of the caller's backing array, set for slices passed by value
	data uintptr
}

var (
	_ Sequence[int]   = (*Slice[int])(nil)
	_ Iterable[int]   = (*Slice[int])(nil)
	_ Reversible[int] = (*Slice[int])(nil)
	_ Slicer[int]     = (*Slice[int])(nil)
	_ Indexer[int]    = (*Slice[int])(nil)
	_ Counter[int]    = (*Slice[int])(nil)
)

// Of returns a Slice holding a private copy of items.
func Of[T comparable](items ...T) *Slice[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Slice[T]{p: &cp}
}

// FromSlice returns a Slice that reads through p.
// Changes the owner makes to *p, including appends, are visible through it.
func FromSlice[T comparable](p *[]T) *Slice[T] {
	if p == nil {
		p = new([]T)
	}
	return &Slice[T]{p: p}
}

// fromValue reads s like FromSlice, but identifies the Slice by the backing array of s,
// so wrapping the same slice twice yields the same identity.
func fromValue[T comparable](s []T) *Slice[T] {
	seq := &Slice[T]{p: &s}
	if cap(s) > 0 {
		seq.data = uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	}
	return seq
}

func (s *Slice[T]) Len() int { return len(*s.p) }

func (s *Slice[T]) At(i int) (T, error) {
	items := *s.p
	if err := CheckIndex(i, len(items)); err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}

func (s *Slice[T]) Contains(v T) (bool, error) {
	for _, item := range *s.p {
		if ElemEqual(item, v) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Slice[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < len(*s.p); i++ {
			if !yield((*s.p)[i], nil) {
				return
			}
		}
	}
}

func (s *Slice[T]) Backward() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := len(*s.p) - 1; i >= 0; i-- {
			if i >= len(*s.p) {
				// shrunk while walking
				continue
			}
			if !yield((*s.p)[i], nil) {
				return
			}
		}
	}
}

// Slice copies the selected elements into a new Slice.
func (s *Slice[T]) Slice(start, stop, step int) (Sequence[T], error) {
	items := *s.p
	start, _, n, err := Bounds(start, stop, step, len(items))
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i, j := 0, start; i < n; i, j = i+1, j+step {
		out[i] = items[j]
	}
	return &Slice[T]{p: &out}, nil
}

func (s *Slice[T]) Index(v T, start, stop int) (int, error) {
	items := *s.p
	start, stop = window(start, stop, len(items))
	for i := start; i < stop; i++ {
		if ElemEqual(items[i], v) {
			return i, nil
		}
	}
	return -1, &NotFoundError{Value: v}
}

func (s *Slice[T]) Count(v T) (int, error) {
	var n int
	for _, item := range *s.p {
		if ElemEqual(item, v) {
			n++
		}
	}
	return n, nil
}

// Values returns a copy of the current elements.
func (s *Slice[T]) Values() []T {
	cp := make([]T, len(*s.p))
	copy(cp, *s.p)
	return cp
}

func (s *Slice[T]) identity() uintptr {
	if s.data != 0 {
		return s.data
	}
	return uintptr(unsafe.Pointer(s.p))
}

// String formats the elements like [1, 2, 3].
func (s *Slice[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range *s.p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte(']')
	return sb.String()
}
