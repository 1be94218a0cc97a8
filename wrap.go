// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"fmt"
	"reflect"
)

// Wrap checks at runtime whether v can be viewed as a sequence of T and returns a view over it.
//
// Accepted are a Sequence[T], a *[]T (read live), a []T, any slice or array
// whose elements are assignable to T, and strings when T is rune or byte.
// Everything else returns a *TypeConstraintError.
func Wrap[T comparable](v interface{}) (*View[T], error) {
	switch s := v.(type) {
	case nil:
		return nil, &TypeConstraintError{Type: "nil"}
	case Sequence[T]:
		return New(s)
	case *[]T:
		if s == nil {
			return nil, &TypeConstraintError{Type: fmt.Sprintf("%T", v)}
		}
		return New[T](FromSlice(s))
	case []T:
		return New[T](fromValue(s))
	case string:
		if seq, ok := fromString[T](s); ok {
			return New(seq)
		}
	}

	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		if rv.Type().Elem().AssignableTo(reflect.TypeOf((*T)(nil)).Elem()) {
			return New[T](&reflectSeq[T]{rv: rv})
		}
	}

	return nil, &TypeConstraintError{Type: reflect.TypeOf(v).String()}
}

// MustWrap is like Wrap but panics if v is not a sequence.
func MustWrap[T comparable](v interface{}) *View[T] {
	view, err := Wrap[T](v)
	if err != nil {
		panic(err)
	}
	return view
}

func fromString[T comparable](s string) (Sequence[T], bool) {
	var zero T
	switch interface{}(zero).(type) {
	case rune:
		items := interface{}([]rune(s)).([]T)
		return FromSlice(&items), true
	case byte:
		items := interface{}([]byte(s)).([]T)
		return FromSlice(&items), true
	}
	return nil, false
}

// reflectSeq reads slices and arrays of types other than []T.
type reflectSeq[T comparable] struct {
	rv reflect.Value
}

func (s *reflectSeq[T]) Len() int { return s.rv.Len() }

func (s *reflectSeq[T]) At(i int) (T, error) {
	if err := CheckIndex(i, s.rv.Len()); err != nil {
		var zero T
		return zero, err
	}
	return s.elem(i), nil
}

func (s *reflectSeq[T]) Contains(v T) (bool, error) {
	for i := 0; i < s.rv.Len(); i++ {
		if ElemEqual(s.elem(i), v) {
			return true, nil
		}
	}
	return false, nil
}

func (s *reflectSeq[T]) elem(i int) T {
	// nil interface elements come out as the zero value
	v, _ := s.rv.Index(i).Interface().(T)
	return v
}

func (s *reflectSeq[T]) identity() uintptr {
	if s.rv.Kind() == reflect.Slice {
		return s.rv.Pointer()
	}
	return 0
}

func (s *reflectSeq[T]) String() string {
	return fmt.Sprintf("%v", s.rv.Interface())
}
