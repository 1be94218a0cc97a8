// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
)

const unset = -1

// Query returns a stream over the elements of the view, constrained by specs.
// The stream reads through the view on every Next and ends with luigi.EOS.
func (v *View[T]) Query(specs ...QuerySpec) (luigi.Source, error) {
	qry := &viewQuery[T]{
		view: v,

		gt:  unset,
		gte: unset,
		lt:  unset,
		lte: unset,

		limit: -1, //i.e. no limit
	}

	for _, spec := range specs {
		err := spec(qry)
		if err != nil {
			return nil, err
		}
	}

	return qry, nil
}

type viewQuery[T comparable] struct {
	view *View[T]

	gt, gte, lt, lte int

	limit     int
	indexWrap bool
	reverse   bool

	started bool
	cur     int
}

func (qry *viewQuery[T]) Gt(i int) error {
	if qry.gt != unset || qry.gte != unset {
		return errors.Errorf("lower bound already set")
	}
	if i < 0 {
		return errors.Errorf("invalid lower bound %d", i)
	}

	qry.gt = i
	return nil
}

func (qry *viewQuery[T]) Gte(i int) error {
	if qry.gt != unset || qry.gte != unset {
		return errors.Errorf("lower bound already set")
	}
	if i < 0 {
		return errors.Errorf("invalid lower bound %d", i)
	}

	qry.gte = i
	return nil
}

func (qry *viewQuery[T]) Lt(i int) error {
	if qry.lt != unset || qry.lte != unset {
		return errors.Errorf("upper bound already set")
	}
	if i < 0 {
		return errors.Errorf("invalid upper bound %d", i)
	}

	qry.lt = i
	return nil
}

func (qry *viewQuery[T]) Lte(i int) error {
	if qry.lt != unset || qry.lte != unset {
		return errors.Errorf("upper bound already set")
	}
	if i < 0 {
		return errors.Errorf("invalid upper bound %d", i)
	}

	qry.lte = i
	return nil
}

func (qry *viewQuery[T]) Limit(n int) error {
	qry.limit = n
	return nil
}

func (qry *viewQuery[T]) Reverse(yes bool) error {
	qry.reverse = yes
	return nil
}

func (qry *viewQuery[T]) IndexWrap(wrap bool) error {
	qry.indexWrap = wrap
	return nil
}

// lower is the first position the query may yield.
func (qry *viewQuery[T]) lower() int {
	switch {
	case qry.gt == math.MaxInt:
		return math.MaxInt
	case qry.gt != unset:
		return qry.gt + 1
	case qry.gte != unset:
		return qry.gte
	default:
		return 0
	}
}

// upper is the position after the last one the query may yield, given the current length.
func (qry *viewQuery[T]) upper(length int) int {
	up := length
	if qry.lt != unset {
		up = min(up, qry.lt)
	} else if qry.lte != unset && qry.lte < up {
		up = qry.lte + 1
	}
	return up
}

func (qry *viewQuery[T]) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if qry.limit == 0 {
		return nil, luigi.EOS{}
	}

	length := qry.view.Len()
	if !qry.started {
		qry.started = true
		if qry.reverse {
			qry.cur = qry.upper(length) - 1
		} else {
			qry.cur = qry.lower()
		}
	}

	if qry.reverse {
		if qry.cur < qry.lower() || qry.cur >= length {
			return nil, luigi.EOS{}
		}
	} else if qry.cur >= qry.upper(length) {
		return nil, luigi.EOS{}
	}

	idx := qry.cur
	v, err := qry.view.backing.At(idx)
	if err != nil {
		return nil, err
	}

	if qry.reverse {
		qry.cur--
	} else {
		qry.cur++
	}
	if qry.limit > 0 {
		qry.limit--
	}

	if qry.indexWrap {
		return WrapWithIndex(v, idx), nil
	}
	return v, nil
}
