// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func LogTestQuery(f NewLogFunc) func(*testing.T) {
	type testcase struct {
		name    string
		values  []int
		specs   []seqview.QuerySpec
		result  []interface{}
		errStr  string
		qryErr  bool
		seqWrap bool
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			_, view := makeView(t, f, tc.values...)

			src, err := view.Query(tc.specs...)
			if tc.qryErr {
				r.Error(err, "expected query construction to fail")
				return
			}
			r.NoError(err, "error querying log")

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var v_ interface{}
			for _, v := range tc.result {
				v_, err = src.Next(ctx)
				if err != nil {
					break
				}
				if tc.seqWrap {
					sw := v.(seqview.IndexWrapper)
					sw_, ok := v_.(seqview.IndexWrapper)
					r.True(ok, "expected IndexWrapper, got %T", v_)

					a.Equal(sw.Index(), sw_.Index(), "index doesn't match")
					a.Equal(sw.Value(), sw_.Value(), "value doesn't match")
				} else {
					a.EqualValues(v, v_, "values don't match")
				}
			}

			if err != nil && tc.errStr == "" {
				t.Errorf("unexpected error %+v", err)
			} else if err == nil && tc.errStr != "" {
				t.Errorf("expected error %q but got nil", tc.errStr)
			} else if tc.errStr != "" && err.Error() != tc.errStr {
				t.Errorf("expected error %q but got %q", tc.errStr, err)
			}

			v, err := src.Next(ctx)
			if !luigi.IsEOS(err) {
				t.Errorf("expected end-of-stream but got %+v (value: %v)", err, v)
			}
		}
	}

	tcs := []testcase{
		{
			name:   "simple",
			values: []int{1, 2, 3},
			result: []interface{}{1, 2, 3},
		},

		{
			name:   "reverse",
			values: []int{1, 2, 3, 4, 5},
			result: []interface{}{5, 4, 3, 2, 1},
			specs:  []seqview.QuerySpec{seqview.Reverse(true)},
		},

		{
			name:   "reverse-false",
			values: []int{1, 2, 3, 4, 5},
			result: []interface{}{1, 2, 3, 4, 5},
			specs:  []seqview.QuerySpec{seqview.Reverse(false)},
		},

		{
			name:   "gt0",
			values: []int{1, 2, 3},
			result: []interface{}{2, 3},
			specs:  []seqview.QuerySpec{seqview.Gt(0)},
		},

		{
			name:   "gte1",
			values: []int{1, 2, 3},
			result: []interface{}{2, 3},
			specs:  []seqview.QuerySpec{seqview.Gte(1)},
		},

		{
			name:   "lt2",
			values: []int{1, 2, 3},
			result: []interface{}{1, 2},
			specs:  []seqview.QuerySpec{seqview.Lt(2)},
		},

		{
			name:   "lte1",
			values: []int{1, 2, 3},
			result: []interface{}{1, 2},
			specs:  []seqview.QuerySpec{seqview.Lte(1)},
		},

		{
			name:   "limit2",
			values: []int{1, 2, 3},
			result: []interface{}{1, 2},
			specs:  []seqview.QuerySpec{seqview.Limit(2)},
		},

		{
			name:   "reverse-window",
			values: []int{1, 2, 3, 4, 5, 6},
			result: []interface{}{5, 4, 3},
			specs: []seqview.QuerySpec{
				seqview.MergeQuerySpec(seqview.Gte(2), seqview.Lt(5)),
				seqview.Reverse(true),
			},
		},

		{
			name:   "EOS",
			values: []int{1, 2},
			result: []interface{}{1, 2, nil},
			errStr: "end of stream",
		},

		{
			name:   "empty",
			values: nil,
			result: []interface{}{nil},
			errStr: "end of stream",
		},

		{
			name:    "indexWrap",
			values:  []int{4, 5, 6},
			result:  []interface{}{seqview.WrapWithIndex(5, 1), seqview.WrapWithIndex(6, 2)},
			specs:   []seqview.QuerySpec{seqview.Gt(0), seqview.IndexWrap(true)},
			seqWrap: true,
		},

		{
			name:   "double lower bound",
			values: []int{1},
			specs:  []seqview.QuerySpec{seqview.Gt(0), seqview.Gte(0)},
			qryErr: true,
		},

		{
			name:   "spec error",
			values: []int{1},
			specs:  []seqview.QuerySpec{seqview.ErrorQuerySpec(errors.New("nope"))},
			qryErr: true,
		},
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}

		t.Run("canceled", func(t *testing.T) {
			r := require.New(t)

			_, view := makeView(t, f, 1, 2, 3)
			src, err := view.Query()
			r.NoError(err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err = src.Next(ctx)
			r.Equal(context.Canceled, errors.Cause(err))
		})
	}
}
