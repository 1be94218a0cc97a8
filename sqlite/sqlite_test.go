// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/codecfakes"
	"github.com/ssbc/seqview/codec/json"
)

func testPath(t *testing.T) string {
	p := filepath.Join("testrun", t.Name())
	require.NoError(t, os.RemoveAll(p))
	t.Cleanup(func() { os.RemoveAll(p) })
	return p
}

func TestReopen(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	p := testPath(t)

	seq, err := Open[string](p, json.New(""))
	r.NoError(err)

	for i, v := range []string{"a", "b", "a"} {
		pos, err := seq.Append(v)
		r.NoError(err)
		r.Equal(i, pos)
	}
	r.NoError(seq.Close())

	seq, err = Open[string](p, json.New(""))
	r.NoError(err)
	defer seq.Close()

	view, err := seqview.New[string](seq)
	r.NoError(err)

	a.Equal(3, view.Len())
	a.Equal(seqview.Equal, view.Equal([]string{"a", "b", "a"}))

	n, err := view.Count("a")
	r.NoError(err)
	a.Equal(2, n)

	i, err := view.IndexRange("a", 1, seqview.End)
	r.NoError(err)
	a.Equal(2, i)

	_, err = view.Index("c")
	a.True(seqview.IsNotFound(err))

	a.Equal("View[string](sqlite.Sequence(3 items))", view.String())
}

func TestFilePath(t *testing.T) {
	r := require.New(t)
	p := testPath(t)

	seq, err := Open[int](filepath.Join(p, "custom.sqlite"), json.New(0))
	r.NoError(err)
	r.NoError(seq.Close())

	_, err = os.Stat(filepath.Join(p, "custom.sqlite"))
	r.NoError(err)
}

func TestDecodeError(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	p := testPath(t)

	errBroken := errors.New("broken")

	fc := new(codecfakes.FakeCodec)
	fc.MarshalReturns([]byte(`1`), nil)
	fc.UnmarshalReturns(nil, errBroken)

	seq, err := Open[int](p, fc)
	r.NoError(err)
	defer seq.Close()

	_, err = seq.Append(1)
	r.NoError(err)
	a.Equal(1, fc.MarshalCallCount())

	view, err := seqview.New[int](seq)
	r.NoError(err)

	_, err = view.At(0)
	a.Equal(errBroken, errors.Cause(err))

	for _, err := range view.All() {
		a.Equal(errBroken, errors.Cause(err))
	}

	a.Equal(seqview.NotApplicable, view.Equal([]int{1}))

	fc.UnmarshalReturns("one", nil)
	_, err = view.At(0)
	a.Error(err, "wrong decoded type")
}
