// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package persist is a small key-value abstraction the kv sequence is stored in.
package persist

import (
	"errors"
	"io"
)

type Key []byte

// Pair is a key and the data to store under it.
type Pair struct {
	Key  Key
	Data []byte
}

var ErrNotFound = errors.New("persist: item not found")

type Saver interface {
	Put(Key, []byte) error
	Get(Key) ([]byte, error)

	// PutAll stores all pairs in one transaction.
	PutAll([]Pair) error

	List() ([]Key, error)

	io.Closer
}
