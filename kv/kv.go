// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package kv stores a sequence in a key-value store, badger or modernc.org/kv.
//
// Every element is stored under its position. Next to it, a roaring bitmap of
// positions is kept per hash of the encoded element, which answers Contains,
// Index and Count without scanning the whole sequence.
package kv // import "github.com/ssbc/seqview/kv"

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/sroar"
	"github.com/pkg/errors"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/internal/persist"
	"github.com/ssbc/seqview/internal/persist/badger"
	"github.com/ssbc/seqview/internal/persist/mkv"
)

var (
	countKey   = persist.Key("n")
	itemPrefix = []byte("i/")
	hashPrefix = []byte("h/")
)

func itemKey(i int) persist.Key {
	k := make([]byte, len(itemPrefix)+8)
	copy(k, itemPrefix)
	binary.BigEndian.PutUint64(k[len(itemPrefix):], uint64(i))
	return k
}

func hashKey(data []byte) persist.Key {
	k := make([]byte, len(hashPrefix)+8)
	copy(k, hashPrefix)
	binary.BigEndian.PutUint64(k[len(hashPrefix):], xxhash.Sum64(data))
	return k
}

// Sequence is a sequence kept in a persist.Saver.
type Sequence[T comparable] struct {
	// serializes appends, which read and rewrite the count and the bitmaps
	l sync.Mutex

	s persist.Saver
	c seqview.Codec
}

var (
	_ seqview.Sequence[int]   = (*Sequence[int])(nil)
	_ seqview.Iterable[int]   = (*Sequence[int])(nil)
	_ seqview.Reversible[int] = (*Sequence[int])(nil)
	_ seqview.Indexer[int]    = (*Sequence[int])(nil)
	_ seqview.Counter[int]    = (*Sequence[int])(nil)
)

// New returns a sequence stored in s. The sequence takes ownership of s.
// An empty store is initialized with a count of zero.
func New[T comparable](s persist.Saver, c seqview.Codec) (*Sequence[T], error) {
	seq := &Sequence[T]{s: s, c: c}

	_, err := s.Get(countKey)
	if err == persist.ErrNotFound {
		err = s.Put(countKey, encodeCount(0))
		if err != nil {
			return nil, errors.Wrap(err, "kv: failed to initialize count")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "kv: failed to read count")
	}

	if _, err := seq.count(); err != nil {
		return nil, err
	}
	return seq, nil
}

// FromBadger returns a sequence kept under prefix in an open badger database.
// Several sequences can share one database as long as their prefixes differ.
// Closing the sequence leaves db open.
func FromBadger[T comparable](db *badgerdb.DB, prefix []byte, c seqview.Codec) (*Sequence[T], error) {
	s, err := badger.NewShared(db, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "kv: failed to share badger")
	}
	return New[T](s, c)
}

// OpenBadger opens or creates a badger backed sequence in the directory path.
func OpenBadger[T comparable](path string, c seqview.Codec) (*Sequence[T], error) {
	s, err := badger.New(path)
	if err != nil {
		return nil, errors.Wrap(err, "kv: failed to open badger")
	}
	seq, err := New[T](s, c)
	if err != nil {
		s.Close()
		return nil, err
	}
	return seq, nil
}

// OpenMKV opens or creates a modernc.org/kv backed sequence in the directory path.
func OpenMKV[T comparable](path string, c seqview.Codec) (*Sequence[T], error) {
	s, err := mkv.New(filepath.Join(path, "seq.kv"))
	if err != nil {
		return nil, errors.Wrap(err, "kv: failed to open modernc kv")
	}
	seq, err := New[T](s, c)
	if err != nil {
		s.Close()
		return nil, err
	}
	return seq, nil
}

func (seq *Sequence[T]) Close() error {
	return seq.s.Close()
}

func encodeCount(n int) []byte {
	cnt := make([]byte, 8)
	binary.BigEndian.PutUint64(cnt, uint64(n))
	return cnt
}

func (seq *Sequence[T]) count() (int, error) {
	data, err := seq.s.Get(countKey)
	if err == persist.ErrNotFound {
		return 0, nil
	} else if err != nil {
		return 0, errors.Wrap(err, "kv: failed to read count")
	}
	if len(data) != 8 {
		return 0, errors.Errorf("kv: invalid count of %d bytes", len(data))
	}
	return int(binary.BigEndian.Uint64(data)), nil
}

// Len reads the stored count. A failing store reads as empty.
func (seq *Sequence[T]) Len() int {
	n, err := seq.count()
	if err != nil {
		return 0
	}
	return n
}

func (seq *Sequence[T]) raw(i int) ([]byte, error) {
	if i < 0 {
		return nil, &seqview.OutOfRangeError{Index: i, Len: seq.Len()}
	}
	data, err := seq.s.Get(itemKey(i))
	if err == persist.ErrNotFound {
		return nil, &seqview.OutOfRangeError{Index: i, Len: seq.Len()}
	} else if err != nil {
		return nil, errors.Wrapf(err, "kv/at(%d): failed to read item", i)
	}
	return data, nil
}

func (seq *Sequence[T]) At(i int) (T, error) {
	var zero T
	data, err := seq.raw(i)
	if err != nil {
		return zero, err
	}
	return seq.decode(data)
}

func (seq *Sequence[T]) decode(data []byte) (T, error) {
	var zero T
	v, err := seq.c.Unmarshal(data)
	if err != nil {
		return zero, errors.Wrap(err, "kv: failed to decode value")
	}
	tv, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("kv: decoded %T, expected %T", v, zero)
	}
	return tv, nil
}

func (seq *Sequence[T]) positions(data []byte) (*sroar.Bitmap, error) {
	buf, err := seq.s.Get(hashKey(data))
	if err == persist.ErrNotFound {
		return sroar.NewBitmap(), nil
	} else if err != nil {
		return nil, errors.Wrap(err, "kv: failed to read positions")
	}
	return sroar.FromBufferWithCopy(buf), nil
}

// Append stores v as the new last element and returns its position.
func (seq *Sequence[T]) Append(v T) (int, error) {
	seq.l.Lock()
	defer seq.l.Unlock()

	data, err := seq.c.Marshal(v)
	if err != nil {
		return -1, errors.Wrap(err, "kv/append: failed to encode value")
	}

	n, err := seq.count()
	if err != nil {
		return -1, err
	}

	bm, err := seq.positions(data)
	if err != nil {
		return -1, err
	}
	bm.Set(uint64(n))

	err = seq.s.PutAll([]persist.Pair{
		{Key: itemKey(n), Data: data},
		{Key: hashKey(data), Data: bm.ToBuffer()},
		{Key: countKey, Data: encodeCount(n + 1)},
	})
	if err != nil {
		return -1, errors.Wrap(err, "kv/append: failed to store value")
	}
	return n, nil
}

// matches walks the positions in [start, stop) that hold exactly the encoding of v.
func (seq *Sequence[T]) matches(v T, start, stop int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		data, err := seq.c.Marshal(v)
		if err != nil {
			yield(-1, errors.Wrap(err, "kv: failed to encode value"))
			return
		}

		bm, err := seq.positions(data)
		if err != nil {
			yield(-1, err)
			return
		}

		for _, p := range bm.ToArray() {
			i := int(p)
			if i < start {
				continue
			}
			if i >= stop {
				return
			}

			// hashes may collide
			got, err := seq.raw(i)
			if err != nil {
				yield(-1, err)
				return
			}
			if !bytes.Equal(got, data) {
				continue
			}
			if !yield(i, nil) {
				return
			}
		}
	}
}

func (seq *Sequence[T]) Contains(v T) (bool, error) {
	for _, err := range seq.matches(v, 0, seq.Len()) {
		return err == nil, err
	}
	return false, nil
}

func (seq *Sequence[T]) Index(v T, start, stop int) (int, error) {
	for i, err := range seq.matches(v, start, stop) {
		return i, err
	}
	return -1, &seqview.NotFoundError{Value: v}
}

func (seq *Sequence[T]) Count(v T) (int, error) {
	var n int
	for _, err := range seq.matches(v, 0, seq.Len()) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func (seq *Sequence[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < seq.Len(); i++ {
			v, err := seq.At(i)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func (seq *Sequence[T]) Backward() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := seq.Len() - 1; i >= 0; i-- {
			v, err := seq.At(i)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Check lists the stored keys and verifies that exactly the positions 0 to Len()-1 hold an item.
func (seq *Sequence[T]) Check() error {
	seq.l.Lock()
	defer seq.l.Unlock()

	n, err := seq.count()
	if err != nil {
		return err
	}

	keys, err := seq.s.List()
	if err != nil {
		return errors.Wrap(err, "kv/check: failed to list keys")
	}

	present := sroar.NewBitmap()
	for _, k := range keys {
		if !bytes.HasPrefix(k, itemPrefix) {
			continue
		}
		if len(k) != len(itemPrefix)+8 {
			return errors.Errorf("kv/check: malformed item key %x", []byte(k))
		}
		pos := binary.BigEndian.Uint64(k[len(itemPrefix):])
		if pos >= uint64(n) {
			return errors.Errorf("kv/check: item at position %d but count is %d", pos, n)
		}
		present.Set(pos)
	}

	if got := present.GetCardinality(); got != n {
		return errors.Errorf("kv/check: %d of %d items present", got, n)
	}
	return nil
}

func (seq *Sequence[T]) String() string {
	return fmt.Sprintf("kv.Sequence(%d items)", seq.Len())
}
