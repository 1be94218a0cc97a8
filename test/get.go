// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func LogTestGet(f NewLogFunc) func(*testing.T) {
	type testcase struct {
		values []int
		index  int
		result int
		oob    bool
	}

	mkTest := func(tc testcase) func(*testing.T) {
		return func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			log, view := makeView(t, f, tc.values...)
			r.Equal(log.Len(), view.Len(), "length mismatch")

			v, err := view.At(tc.index)
			if tc.oob {
				r.Error(err)
				a.True(seqview.IsOutOfRange(err), "expected out of range, got %+v", err)
				return
			}
			r.NoError(err, "error getting value at position", tc.index)
			a.Equal(tc.result, v, "value mismatch at position", tc.index)

			if tc.index >= 0 {
				direct, err := log.At(tc.index)
				r.NoError(err)
				a.Equal(direct, v, "view and backing disagree")
			}
		}
	}

	tcs := []testcase{
		{values: []int{1, 2, 3}, index: 0, result: 1},
		{values: []int{1, 2, 3}, index: 2, result: 3},
		{values: []int{10, 20, 30}, index: -1, result: 30},
		{values: []int{10, 20, 30}, index: -3, result: 10},
		{values: []int{1, 2, 3}, index: 5, oob: true},
		{values: []int{1, 2, 3}, index: 3, oob: true},
		{values: []int{1, 2, 3}, index: -4, oob: true},
		{values: nil, index: 0, oob: true},
	}

	return func(t *testing.T) {
		for i, tc := range tcs {
			t.Run(fmt.Sprint(i), mkTest(tc))
		}

		t.Run("live", func(t *testing.T) {
			r := require.New(t)

			log, view := makeView(t, f, 1, 2, 3)
			r.Equal(3, view.Len())

			_, err := log.Append(4)
			r.NoError(err)
			r.Equal(4, view.Len(), "view should see appends")

			v, err := view.At(-1)
			r.NoError(err)
			r.Equal(4, v)
		})
	}
}
