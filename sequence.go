// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package seqview provides read-only views over ordered sequences.
//
// A View holds a single reference to a backing Sequence and forwards every
// read to it. It never mutates the backing sequence and never copies it,
// except when slicing, which materializes a snapshot of the selected range.
//
// Storage backed sequences live in the sub packages mem, sqlite and kv.
package seqview // import "github.com/ssbc/seqview"

import (
	"iter"
)

// Sequence is the capability set a backing sequence needs to be viewed.
type Sequence[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at position i, 0 <= i < Len().
	// Positions outside of that range return an *OutOfRangeError.
	At(i int) (T, error)

	// Contains reports whether v is an element of the sequence.
	Contains(v T) (bool, error)
}

// Iterable is implemented by sequences that have their own way of walking their elements in order.
type Iterable[T any] interface {
	All() iter.Seq2[T, error]
}

// Reversible is implemented by sequences that can walk their elements back to front.
type Reversible[T any] interface {
	Backward() iter.Seq2[T, error]
}

// Slicer is implemented by sequences that can produce a sub-sequence themselves.
// The bounds mean the same as for View.Slice, and the returned
// sequence must not share state with the receiver.
type Slicer[T any] interface {
	Slice(start, stop, step int) (Sequence[T], error)
}

// Indexer is implemented by sequences that can look up the position of an element.
// start and stop are normalized to 0 <= start <= stop <= Len().
type Indexer[T any] interface {
	Index(v T, start, stop int) (int, error)
}

// Counter is implemented by sequences that can count occurrences of an element.
type Counter[T any] interface {
	Count(v T) (int, error)
}

// Equaler is implemented by sequences that define their own equality.
type Equaler interface {
	Equal(other any) Cmp
}

// Orderer is implemented by sequences that define their own ordering.
// The int result is only meaningful when the Cmp is not NotApplicable.
type Orderer interface {
	Compare(other any) (int, Cmp)
}
