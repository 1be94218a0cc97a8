// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src luigi.Source) []interface{} {
	var out []interface{}
	for {
		v, err := src.Next(context.TODO())
		if luigi.IsEOS(err) {
			return out
		}
		require.NoError(t, err)
		out = append(out, v)
	}
}

func TestQuery(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	v := MustWrap[int]([]int{0, 1, 2, 3, 4, 5})

	src, err := v.Query(Gt(1), Lte(4))
	r.NoError(err)
	a.Equal([]interface{}{2, 3, 4}, drain(t, src))

	src, err = v.Query(Reverse(true), Limit(2))
	r.NoError(err)
	a.Equal([]interface{}{5, 4}, drain(t, src))

	src, err = v.Query(Limit(0))
	r.NoError(err)
	a.Empty(drain(t, src))

	src, err = v.Query(Gte(10))
	r.NoError(err)
	a.Empty(drain(t, src))

	src, err = v.Query(Gte(4), Reverse(true), IndexWrap(true))
	r.NoError(err)
	out := drain(t, src)
	r.Len(out, 2)
	iw := out[0].(IndexWrapper)
	a.Equal(5, iw.Index())
	a.Equal(5, iw.Value())

	_, err = v.Query(Lt(1), Lte(1))
	a.EqualError(err, "upper bound already set")

	_, err = v.Query(Gt(-1))
	a.Error(err)

	errSpec := errors.New("bad spec")
	_, err = v.Query(MergeQuerySpec(Gt(0), ErrorQuerySpec(errSpec)))
	a.Equal(errSpec, err)
}

func TestQueryLive(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	items := []int{1}
	v := MustWrap[int](&items)

	src, err := v.Query()
	r.NoError(err)

	el, err := src.Next(context.TODO())
	r.NoError(err)
	a.Equal(1, el)

	_, err = src.Next(context.TODO())
	a.True(luigi.IsEOS(err))

	items = append(items, 2)
	el, err = src.Next(context.TODO())
	r.NoError(err)
	a.Equal(2, el, "the stream reads through the view")
}

func TestQueryExtremeBounds(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	v := MustWrap[int]([]int{1, 2, 3})

	src, err := v.Query(Gt(math.MaxInt))
	r.NoError(err)
	a.Empty(drain(t, src))

	src, err = v.Query(Gt(math.MaxInt), Reverse(true))
	r.NoError(err)
	a.Empty(drain(t, src))

	src, err = v.Query(Lte(math.MaxInt))
	r.NoError(err)
	a.Equal([]interface{}{1, 2, 3}, drain(t, src))

	src, err = v.Query(Gte(1), Lte(math.MaxInt), Reverse(true))
	r.NoError(err)
	a.Equal([]interface{}{3, 2}, drain(t, src))
}
