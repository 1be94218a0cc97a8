// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package mem is an in-memory, append-only sequence that is safe for concurrent use.
package mem // import "github.com/ssbc/seqview/mem"

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"

	"github.com/ssbc/seqview"
)

// TODO optimization idea: skip list
type memlogElem[T any] struct {
	v    T
	idx  int
	next *memlogElem[T]
	prev *memlogElem[T]
}

// Log is an append-only sequence kept in a doubly linked list.
type Log[T comparable] struct {
	l sync.Mutex

	// head is a sentinel before the first element
	head, tail *memlogElem[T]
	n          int

	closed bool
}

var (
	_ seqview.Sequence[int]   = (*Log[int])(nil)
	_ seqview.Iterable[int]   = (*Log[int])(nil)
	_ seqview.Reversible[int] = (*Log[int])(nil)
	_ seqview.Counter[int]    = (*Log[int])(nil)
	_ io.Closer               = (*Log[int])(nil)
)

// New returns a new in-memory log
func New[T comparable]() *Log[T] {
	root := &memlogElem[T]{idx: -1}

	return &Log[T]{
		head: root,
		tail: root,
	}
}

func (log *Log[T]) Close() error {
	log.l.Lock()
	defer log.l.Unlock()
	if log.closed {
		return io.ErrClosedPipe // already closed
	}
	log.closed = true
	return nil
}

// Len returns the number of appended elements.
func (log *Log[T]) Len() int {
	log.l.Lock()
	defer log.l.Unlock()
	return log.n
}

func (log *Log[T]) At(i int) (T, error) {
	log.l.Lock()
	defer log.l.Unlock()

	var zero T
	if log.closed {
		return zero, io.ErrClosedPipe // already closed
	}
	if err := seqview.CheckIndex(i, log.n); err != nil {
		return zero, err
	}

	var cur *memlogElem[T]
	if i < log.n/2 {
		cur = log.head.next
		for cur.idx < i {
			cur = cur.next
		}
	} else {
		cur = log.tail
		for cur.idx > i {
			cur = cur.prev
		}
	}

	if cur.idx != i {
		panic("datastructure borked, sequence number missing")
	}

	return cur.v, nil
}

func (log *Log[T]) Contains(v T) (bool, error) {
	n, err := log.Count(v)
	return n > 0, err
}

func (log *Log[T]) Count(v T) (int, error) {
	log.l.Lock()
	defer log.l.Unlock()
	if log.closed {
		return 0, io.ErrClosedPipe // already closed
	}

	var n int
	for cur := log.head.next; cur != nil; cur = cur.next {
		if seqview.ElemEqual(cur.v, v) {
			n++
		}
	}
	return n, nil
}

// Append adds v to the end of the log and returns its position.
func (log *Log[T]) Append(v T) (int, error) {
	log.l.Lock()
	defer log.l.Unlock()
	if log.closed {
		return -1, io.ErrClosedPipe // already closed
	}

	nxt := &memlogElem[T]{
		v:    v,
		idx:  log.tail.idx + 1,
		prev: log.tail,
	}

	log.tail.next = nxt
	log.tail = nxt
	log.n++

	return nxt.idx, nil
}

// All walks the list front to back. Elements appended while walking are included.
func (log *Log[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		log.l.Lock()
		cur := log.head
		for {
			if log.closed {
				log.l.Unlock()
				var zero T
				yield(zero, io.ErrClosedPipe)
				return
			}
			cur = cur.next
			if cur == nil {
				log.l.Unlock()
				return
			}
			v := cur.v

			// don't hold the lock while the consumer runs
			log.l.Unlock()
			if !yield(v, nil) {
				return
			}
			log.l.Lock()
		}
	}
}

// Backward walks the list from the element that is last when the walk starts.
func (log *Log[T]) Backward() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		log.l.Lock()
		cur := log.tail
		for {
			if log.closed {
				log.l.Unlock()
				var zero T
				yield(zero, io.ErrClosedPipe)
				return
			}
			if cur == log.head {
				log.l.Unlock()
				return
			}
			v := cur.v
			cur = cur.prev

			log.l.Unlock()
			if !yield(v, nil) {
				return
			}
			log.l.Lock()
		}
	}
}

func (log *Log[T]) String() string {
	log.l.Lock()
	defer log.l.Unlock()

	var sb strings.Builder
	sb.WriteString("mem.Log[")
	for cur := log.head.next; cur != nil; cur = cur.next {
		if cur != log.head.next {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", cur.v)
	}
	sb.WriteByte(']')
	return sb.String()
}
