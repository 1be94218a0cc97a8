// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

func LogTestCompare(f NewLogFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("equal", func(t *testing.T) {
			a := assert.New(t)

			log, view := makeView(t, f, 1, 2, 3)

			a.Equal(seqview.Equal, view.Equal([]int{1, 2, 3}))
			a.Equal(seqview.Equal, view.Equal(view))
			a.Equal(seqview.Equal, view.Equal(seqview.Of(1, 2, 3)))
			a.Equal(seqview.Equal, view.Equal(seqview.MustWrap[int]([]int{1, 2, 3})))
			a.Equal(seqview.Equal, view.Equal(log))

			a.Equal(seqview.NotEqual, view.Equal([]int{1, 2}))
			a.Equal(seqview.NotEqual, view.Equal([]int{1, 2, 4}))
			a.Equal(seqview.NotApplicable, view.Equal("123"))
			a.Equal(seqview.NotApplicable, view.Equal(42))
		})

		t.Run("order", func(t *testing.T) {
			a := assert.New(t)

			_, view := makeView(t, f, 1, 2, 3)

			c, ok := seqview.Compare(view, []int{1, 2, 4})
			a.Equal(seqview.NotEqual, ok)
			a.Equal(-1, c)

			c, ok = seqview.Compare(view, []int{1, 2})
			a.Equal(seqview.NotEqual, ok)
			a.Equal(1, c)

			c, ok = seqview.Compare(view, []int{1, 2, 3})
			a.Equal(seqview.Equal, ok)
			a.Equal(0, c)

			_, ok = seqview.Compare(view, 3.5)
			a.Equal(seqview.NotApplicable, ok)
		})

		t.Run("identity", func(t *testing.T) {
			a := assert.New(t)
			r := require.New(t)

			log, view := makeView(t, f, 1, 2, 3)

			r.Same(view, view.Copy())
			r.Same(view, view.DeepCopy(nil))

			again, err := seqview.New[int](log)
			r.NoError(err)
			a.Equal(view.Hash(), again.Hash(), "views of the same backing hash equal")

			nested, err := seqview.New[int](view)
			r.NoError(err)
			a.Equal(view.Hash(), nested.Hash(), "nested views hash like their backing")
			a.Equal(seqview.Equal, nested.Equal(view))

			a.True(strings.HasPrefix(view.String(), "View[int]("), "got %s", view.String())
		})
	}
}
