// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

// IndexWrapper is an element together with its position, as yielded by queries using IndexWrap.
type IndexWrapper interface {
	Index() int
	Value() interface{}
}

type indexWrapper struct {
	idx int
	v   interface{}
}

func (iw *indexWrapper) Index() int {
	return iw.idx
}

func (iw *indexWrapper) Value() interface{} {
	return iw.v
}

// WrapWithIndex returns an IndexWrapper for v at position idx.
func WrapWithIndex(v interface{}, idx int) IndexWrapper {
	return &indexWrapper{
		idx: idx,
		v:   v,
	}
}
