// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import "reflect"

// ElemEqual reports whether a and b are equal elements.
//
// Types that can be compared with == safely use it. For interface types, and
// structs or arrays that contain them, == panics when both dynamic values are
// maps, slices or funcs; those values are compared with reflect.DeepEqual.
func ElemEqual[T comparable](a, b T) bool {
	if strictlyComparable(reflect.TypeFor[T]()) {
		return a == b
	}

	av, bv := interface{}(a), interface{}(b)
	ta, tb := reflect.TypeOf(av), reflect.TypeOf(bv)
	if ta != tb {
		return false
	}
	if ta == nil || strictlyComparable(ta) {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// strictlyComparable reports whether == on values of t can never panic.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return t.Comparable()
	}
}
