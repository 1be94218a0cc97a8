// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// identifier is implemented by sequences whose identity isn't the address of the value itself,
// like a Slice reading through a pointer or a View forwarding to its backing.
type identifier interface {
	identity() uintptr
}

// identityOf returns the address that identifies v.
// Values without reference semantics have no identity and return 0.
func identityOf(v interface{}) uintptr {
	if id, ok := v.(identifier); ok {
		return id.identity()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer()
	default:
		return 0
	}
}

func hashIdentity(p uintptr) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p))
	return xxhash.Sum64(buf[:])
}
