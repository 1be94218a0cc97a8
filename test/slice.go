// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func LogTestSlice(f NewLogFunc) func(*testing.T) {
	type testcase struct {
		name              string
		values            []int
		start, stop, step int
		result            []int
		err               error
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			_, view := makeView(t, f, tc.values...)

			sub, err := view.Slice(tc.start, tc.stop, tc.step)
			if tc.err != nil {
				r.Equal(tc.err, err)
				return
			}
			r.NoError(err)
			r.NotNil(sub)
			a.NotSame(view, sub, "slicing has to return a new view")

			got, err := sub.Values()
			r.NoError(err)
			if len(tc.result) == 0 {
				a.Empty(got)
			} else {
				a.Equal(tc.result, got)
			}
			a.Equal(seqview.Equal, sub.Equal(tc.result))
		}
	}

	tcs := []testcase{
		{name: "middle", values: []int{10, 20, 30, 40}, start: 1, stop: 3, step: 1, result: []int{20, 30}},
		{name: "full", values: []int{1, 2, 3}, start: seqview.Begin, stop: seqview.End, step: 1, result: []int{1, 2, 3}},
		{name: "head", values: []int{0, 1, 2, 3, 4, 5}, start: seqview.Begin, stop: 3, step: 1, result: []int{0, 1, 2}},
		{name: "tail", values: []int{0, 1, 2, 3, 4, 5}, start: 3, stop: seqview.End, step: 1, result: []int{3, 4, 5}},
		{name: "every2nd", values: []int{0, 1, 2, 3, 4, 5}, start: seqview.Begin, stop: seqview.End, step: 2, result: []int{0, 2, 4}},
		{name: "every5th", values: []int{0, 1, 2, 3, 4, 5}, start: seqview.Begin, stop: seqview.End, step: 5, result: []int{0, 5}},
		{name: "negative", values: []int{0, 1, 2, 3, 4, 5}, start: -3, stop: -1, step: 1, result: []int{3, 4}},
		{name: "clamped", values: []int{1, 2, 3}, start: -100, stop: 100, step: 1, result: []int{1, 2, 3}},
		{name: "empty", values: []int{1, 2, 3}, start: 2, stop: 1, step: 1, result: nil},
		{name: "past end", values: []int{1, 2, 3}, start: 5, stop: 10, step: 1, result: nil},
		{name: "reversed", values: []int{1, 2, 3}, start: seqview.End, stop: seqview.Begin, step: -1, result: []int{3, 2, 1}},
		{name: "reversed partial", values: []int{0, 1, 2, 3, 4, 5}, start: 4, stop: 1, step: -2, result: []int{4, 2}},
		{name: "zero step", values: []int{1, 2, 3}, start: 0, stop: 3, step: 0, err: seqview.ErrZeroStep},
	}

	return func(t *testing.T) {
		for _, tc := range tcs {
			t.Run(tc.name, mkTest(tc))
		}

		t.Run("snapshot", func(t *testing.T) {
			r := require.New(t)

			log, view := makeView(t, f, 1, 2, 3)
			sub, err := view.Slice(seqview.Begin, seqview.End, 1)
			r.NoError(err)

			_, err = log.Append(4)
			r.NoError(err)

			r.Equal(4, view.Len())
			r.Equal(3, sub.Len(), "slice must not follow the backing sequence")
		})
	}
}
