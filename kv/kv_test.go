// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package kv

import (
	"os"
	"path/filepath"
	"testing"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/codecfakes"
	"github.com/ssbc/seqview/codec/msgpack"
	"github.com/ssbc/seqview/internal/persist/badger"
)

type openFunc func(string, seqview.Codec) (*Sequence[string], error)

func stores() map[string]openFunc {
	return map[string]openFunc{
		"badger": OpenBadger[string],
		"mkv":    OpenMKV[string],
	}
}

func testPath(t *testing.T) string {
	p := filepath.Join("testrun", t.Name())
	require.NoError(t, os.RemoveAll(p))
	t.Cleanup(func() { os.RemoveAll(p) })
	return p
}

func TestReopen(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			p := testPath(t)

			seq, err := open(p, msgpack.New(""))
			r.NoError(err)

			for i, v := range []string{"x", "y", "x", "z", "x"} {
				pos, err := seq.Append(v)
				r.NoError(err)
				r.Equal(i, pos)
			}
			r.NoError(seq.Close())

			seq, err = open(p, msgpack.New(""))
			r.NoError(err)
			defer seq.Close()

			view, err := seqview.New[string](seq)
			r.NoError(err)
			a.Equal(5, view.Len())

			n, err := view.Count("x")
			r.NoError(err)
			a.Equal(3, n)

			i, err := view.IndexRange("x", 1, 4)
			r.NoError(err)
			a.Equal(2, i)

			_, err = view.IndexRange("x", 3, 4)
			a.True(seqview.IsNotFound(err))

			ok, err := view.Contains("z")
			r.NoError(err)
			a.True(ok)

			ok, err = view.Contains("w")
			r.NoError(err)
			a.False(ok)

			var back []string
			for v, err := range view.Backward() {
				r.NoError(err)
				back = append(back, v)
			}
			a.Equal([]string{"x", "z", "x", "y", "x"}, back)
		})
	}
}

func TestDecodeError(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			p := testPath(t)

			errBroken := errors.New("broken")

			fc := new(codecfakes.FakeCodec)
			fc.MarshalReturns([]byte("v"), nil)
			fc.UnmarshalReturns(nil, errBroken)

			seq, err := open(p, fc)
			r.NoError(err)
			defer seq.Close()

			_, err = seq.Append("v")
			r.NoError(err)

			view, err := seqview.New[string](seq)
			r.NoError(err)

			_, err = view.At(0)
			a.Equal(errBroken, errors.Cause(err))

			// lookups compare encodings and never decode
			n, err := view.Count("v")
			r.NoError(err)
			a.Equal(1, n)
			a.Equal(1, fc.UnmarshalCallCount())

			a.Equal(seqview.NotApplicable, view.Equal([]string{"v"}))
		})
	}
}

func TestCheck(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)
			p := testPath(t)

			seq, err := open(p, msgpack.New(""))
			r.NoError(err)
			defer seq.Close()

			r.NoError(seq.Check(), "fresh store")

			for _, v := range []string{"a", "b", "a"} {
				_, err := seq.Append(v)
				r.NoError(err)
			}
			r.NoError(seq.Check())

			r.NoError(seq.s.Put(itemKey(7), []byte("stray")))
			err = seq.Check()
			r.Error(err)
			a.Contains(err.Error(), "position 7")
		})
	}
}

func TestFromBadger(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	p := testPath(t)

	db, err := badgerdb.Open(badger.BadgerOpts(p))
	r.NoError(err)

	foo, err := FromBadger[string](db, []byte("foo/"), msgpack.New(""))
	r.NoError(err)
	bar, err := FromBadger[string](db, []byte("bar/"), msgpack.New(""))
	r.NoError(err)

	for _, v := range []string{"x", "y"} {
		_, err := foo.Append(v)
		r.NoError(err)
	}
	_, err = bar.Append("z")
	r.NoError(err)

	a.Equal(2, foo.Len())
	a.Equal(1, bar.Len())

	ok, err := bar.Contains("x")
	r.NoError(err)
	a.False(ok, "sequences sharing a db must not see each other")

	r.NoError(foo.Check())
	r.NoError(bar.Check())

	r.NoError(foo.Close())
	v, err := bar.At(0)
	r.NoError(err, "closing a shared sequence leaves the db open")
	a.Equal("z", v)

	r.NoError(db.Close())

	_, err = FromBadger[string](db, nil, msgpack.New(""))
	a.Error(err, "a shared sequence needs a prefix")
}
