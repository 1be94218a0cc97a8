// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func LogTestIterate(f NewLogFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("restartable", func(t *testing.T) {
			r := require.New(t)

			_, view := makeView(t, f, 3, 1, 4, 1, 5)

			collect := func() []int {
				var out []int
				for v, err := range view.All() {
					r.NoError(err)
					out = append(out, v)
				}
				return out
			}

			first := collect()
			r.Equal([]int{3, 1, 4, 1, 5}, first)
			r.Equal(first, collect(), "second traversal differs")
		})

		t.Run("stop early", func(t *testing.T) {
			r := require.New(t)

			_, view := makeView(t, f, 1, 2, 3, 4)

			var out []int
			for v, err := range view.All() {
				r.NoError(err)
				out = append(out, v)
				if len(out) == 2 {
					break
				}
			}
			r.Equal([]int{1, 2}, out)
		})

		t.Run("backward", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			_, view := makeView(t, f, 1, 2, 3, 4)

			var out []int
			for v, err := range view.Backward() {
				r.NoError(err)
				out = append(out, v)
			}
			a.Equal([]int{4, 3, 2, 1}, out)
		})

		t.Run("empty", func(t *testing.T) {
			r := require.New(t)

			_, view := makeView(t, f)
			for range view.All() {
				t.Fatal("empty view yielded a value")
			}
			for range view.Backward() {
				t.Fatal("empty view yielded a value backwards")
			}

			vals, err := view.Values()
			r.NoError(err)
			r.Empty(vals)
		})
	}
}
