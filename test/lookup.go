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

func LogTestLookup(f NewLogFunc) func(*testing.T) {
	return func(t *testing.T) {
		values := []int{0, 1, 2, 3, 2, 5, 2}

		t.Run("contains", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			log, view := makeView(t, f, values...)
			for _, probe := range []int{0, 2, 5, 4, 42, -1} {
				got, err := view.Contains(probe)
				r.NoError(err)

				direct, err := log.Contains(probe)
				r.NoError(err)
				a.Equal(direct, got, "containment of %d", probe)
			}

			ok, err := view.Contains(5)
			r.NoError(err)
			a.True(ok)

			ok, err = view.Contains(42)
			r.NoError(err)
			a.False(ok)
		})

		t.Run("index", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			_, view := makeView(t, f, values...)

			i, err := view.Index(2)
			r.NoError(err)
			a.Equal(2, i)

			i, err = view.Index(5)
			r.NoError(err)
			a.Equal(5, i)

			i, err = view.IndexRange(2, 3, seqview.End)
			r.NoError(err)
			a.Equal(4, i)

			i, err = view.IndexRange(2, -2, seqview.End)
			r.NoError(err)
			a.Equal(6, i)

			_, err = view.IndexRange(5, 0, 5)
			r.Error(err)
			a.True(seqview.IsNotFound(err), "expected not found, got %+v", err)

			_, err = view.Index(42)
			r.Error(err)
			a.True(seqview.IsNotFound(err), "expected not found, got %+v", err)
		})

		t.Run("count", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			_, view := makeView(t, f, values...)

			for probe, want := range map[int]int{0: 1, 2: 3, 5: 1, 4: 0} {
				n, err := view.Count(probe)
				r.NoError(err)
				a.Equal(want, n, "count of %d", probe)
			}
		})
	}
}
