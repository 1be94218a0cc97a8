// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

// Query is the set of constraints a QuerySpec can apply to a stream over a view.
// Bounds are element positions.
type Query interface {
	Gt(int) error
	Gte(int) error
	Lt(int) error
	Lte(int) error
	Limit(int) error

	Reverse(bool) error
	IndexWrap(bool) error
}

// QuerySpec configures a Query.
type QuerySpec func(Query) error

// MergeQuerySpec returns a QuerySpec that applies all of spec in order.
func MergeQuerySpec(spec ...QuerySpec) QuerySpec {
	return func(qry Query) error {
		for _, f := range spec {
			err := f(qry)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// ErrorQuerySpec returns a QuerySpec that fails with err.
func ErrorQuerySpec(err error) QuerySpec {
	return func(Query) error {
		return err
	}
}

func Gt(i int) QuerySpec {
	return func(q Query) error {
		return q.Gt(i)
	}
}

func Gte(i int) QuerySpec {
	return func(q Query) error {
		return q.Gte(i)
	}
}

func Lt(i int) QuerySpec {
	return func(q Query) error {
		return q.Lt(i)
	}
}

func Lte(i int) QuerySpec {
	return func(q Query) error {
		return q.Lte(i)
	}
}

func Limit(n int) QuerySpec {
	return func(q Query) error {
		return q.Limit(n)
	}
}

func Reverse(yes bool) QuerySpec {
	return func(q Query) error {
		return q.Reverse(yes)
	}
}

// IndexWrap makes the stream yield IndexWrapper values instead of plain elements.
func IndexWrap(wrap bool) QuerySpec {
	return func(q Query) error {
		return q.IndexWrap(wrap)
	}
}
