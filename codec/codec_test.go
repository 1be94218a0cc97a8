// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package codec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/cbor"
	"github.com/ssbc/seqview/codec/json"
	"github.com/ssbc/seqview/codec/msgpack"
)

type testStruct struct {
	Name string
	N    int
}

var codecs = map[string]seqview.NewCodecFunc{
	"json":    json.New,
	"msgpack": msgpack.New,
	"cbor":    cbor.New,
}

func TestRoundtrip(t *testing.T) {
	for name, newCodec := range codecs {
		t.Run(name, func(t *testing.T) {
			t.Run("value", func(t *testing.T) {
				r := require.New(t)
				c := newCodec(testStruct{})

				in := testStruct{Name: "hello", N: 23}
				data, err := c.Marshal(in)
				r.NoError(err)

				out, err := c.Unmarshal(data)
				r.NoError(err)
				r.Equal(in, out)
			})

			t.Run("pointer", func(t *testing.T) {
				r := require.New(t)
				c := newCodec(&testStruct{})

				in := &testStruct{Name: "ptr", N: -1}
				data, err := c.Marshal(in)
				r.NoError(err)

				out, err := c.Unmarshal(data)
				r.NoError(err)
				r.Equal(in, out)
			})

			t.Run("stream", func(t *testing.T) {
				a := assert.New(t)
				r := require.New(t)
				c := newCodec(0)

				var buf bytes.Buffer
				enc := c.NewEncoder(&buf)
				for _, v := range []int{1, 2, 3} {
					r.NoError(enc.Encode(v))
				}

				dec := c.NewDecoder(&buf)
				for _, want := range []int{1, 2, 3} {
					got, err := dec.Decode()
					r.NoError(err)
					a.Equal(want, got)
				}
			})

			t.Run("untyped", func(t *testing.T) {
				r := require.New(t)
				c := newCodec(nil)

				data, err := c.Marshal("text")
				r.NoError(err)

				out, err := c.Unmarshal(data)
				r.NoError(err)
				r.Equal("text", out)
			})
		})
	}
}
