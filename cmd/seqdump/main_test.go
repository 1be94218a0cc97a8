// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
	seqjson "github.com/ssbc/seqview/codec/json"
	"github.com/ssbc/seqview/codec/msgpack"
)

func TestParseSlice(t *testing.T) {
	type testcase struct {
		in                string
		start, stop, step int
		err               bool
	}

	tcs := []testcase{
		{in: ":", start: seqview.Begin, stop: seqview.End, step: 1},
		{in: "1:3", start: 1, stop: 3, step: 1},
		{in: "::2", start: seqview.Begin, stop: seqview.End, step: 2},
		{in: "::-1", start: seqview.End, stop: seqview.Begin, step: -1},
		{in: "-2:", start: -2, stop: seqview.End, step: 1},
		{in: "5", start: 5, stop: seqview.End, step: 1},
		{in: "a:b", err: true},
		{in: "1:2:3:4", err: true},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			a := assert.New(t)

			start, stop, step, err := parseSlice(tc.in)
			if tc.err {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(tc.start, start, "start")
			a.Equal(tc.stop, stop, "stop")
			a.Equal(tc.step, step, "step")
		})
	}
}

func TestOpen(t *testing.T) {
	for _, backend := range []string{"sqlite", "badger", "mkv"} {
		t.Run(backend, func(t *testing.T) {
			r := require.New(t)

			p := filepath.Join("testrun", t.Name())
			r.NoError(os.RemoveAll(p))
			t.Cleanup(func() { os.RemoveAll(p) })

			o := options{backend: backend, codec: "msgpack"}
			st, err := o.open(p)
			r.NoError(err)

			_, err = st.Append("first")
			r.NoError(err)
			_, err = st.Append(int64(2))
			r.NoError(err)
			r.NoError(st.Close())

			st, err = o.open(p)
			r.NoError(err)
			defer st.Close()

			view, err := seqview.New[interface{}](st)
			r.NoError(err)
			r.Equal(2, view.Len())

			v, err := view.At(0)
			r.NoError(err)
			r.Equal("first", v)
		})
	}

	_, err := (&options{backend: "nope", codec: "json"}).open(t.TempDir())
	assert.Error(t, err)

	_, err = (&options{backend: "sqlite", codec: "nope"}).open(t.TempDir())
	assert.Error(t, err)
}

func TestAppendAndDump(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	p := filepath.Join("testrun", t.Name())
	r.NoError(os.RemoveAll(p))
	t.Cleanup(func() { os.RemoveAll(p) })

	o := options{backend: "mkv", codec: "msgpack"}
	st, err := o.open(p)
	r.NoError(err)
	defer st.Close()

	input := strings.NewReader(`"a" 2 {"k": "v"} [1, 2]`)
	seqs, err := appendFrom(st, seqjson.New(nil).NewDecoder(input))
	r.NoError(err)
	a.Equal([]int{0, 1, 2, 3}, seqs)

	_, err = appendFrom(st, seqjson.New(nil).NewDecoder(strings.NewReader(`{broken`)))
	a.Error(err)

	c, ok := st.(checker)
	r.True(ok, "kv stores can be checked")
	r.NoError(c.Check())

	view, err := seqview.New[interface{}](st)
	r.NoError(err)

	var buf bytes.Buffer
	n, err := dump(&buf, view, seqview.Begin, 2, 1, false, nil)
	r.NoError(err)
	a.Equal(2, n)
	a.Equal("0: a\n1: 2\n", buf.String())

	buf.Reset()
	n, err = dump(&buf, view, seqview.Begin, seqview.End, 1, true, msgpack.New(nil).NewEncoder(&buf))
	r.NoError(err)
	a.Equal(4, n)

	dec := msgpack.New(nil).NewDecoder(&buf)
	first, err := dec.Decode()
	r.NoError(err)
	a.Equal([]interface{}{1.0, 2.0}, first, "reversed, so the list comes first")

	_, err = dump(&buf, view, 0, 1, 0, false, nil)
	a.Equal(seqview.ErrZeroStep, errors.Cause(err))
}
