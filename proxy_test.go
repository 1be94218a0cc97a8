// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyIdentity(t *testing.T) {
	a := assert.New(t)

	x, y := 1, 1

	px := NewProxy(&x)
	a.Equal(Equal, px.Equal(NewProxy(&x)))
	a.Equal(NotEqual, px.Equal(NewProxy(&y)), "equal values but different referents")
	a.Equal(px.Hash(), NewProxy(&x).Hash())
	a.NotEqual(px.Hash(), NewProxy(&y).Hash())

	a.Equal(NotApplicable, px.Equal(&x))
	a.Equal(NotApplicable, px.Equal(1))
	a.Equal(NotApplicable, px.Equal((*Proxy[int])(nil)))

	s := "1"
	a.Equal(NotApplicable, px.Equal(NewProxy(&s)))

	a.Same(&x, px.Self())
	a.Equal(DefaultModule, px.Origin().Name())
}

func TestProxyString(t *testing.T) {
	a := assert.New(t)

	var buf bytes.Buffer
	a.Equal("<main wrapper of bytes.Buffer object>", NewProxy(&buf).String())

	n := 3
	a.Equal("<main wrapper of int object>", NewProxy(&n).String())

	var w io.Writer = &buf
	m := NewModule[io.Writer]("sink", nil)
	a.Equal("<sink wrapper of *bytes.Buffer object>", m.Wrap(&w).String())
}

func TestProxyCall(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	m := NewModule("counter", map[string]AttrFunc[int]{
		"add": func(self *int, args ...interface{}) (interface{}, error) {
			for _, arg := range args {
				d, ok := arg.(int)
				if !ok {
					return nil, fmt.Errorf("add: expected int, got %T", arg)
				}
				*self += d
			}
			return *self, nil
		},
		"get": func(self *int, _ ...interface{}) (interface{}, error) {
			return *self, nil
		},
	})
	a.Equal([]string{"add", "get"}, m.Attrs())

	n := 1
	p := m.Wrap(&n)

	v, err := p.Call("add", 2, 3)
	r.NoError(err)
	a.Equal(6, v)
	a.Equal(6, n, "the referent is modified, not a copy")

	_, err = p.Call("sub", 1)
	r.Error(err)
	a.True(IsAttribute(err))
	a.EqualError(err, `module "counter" has no attribute "sub"`)
}
