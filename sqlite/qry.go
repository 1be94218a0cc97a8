// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"iter"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

// All reads the rows in id order with a single query.
func (sl *Sequence[T]) All() iter.Seq2[T, error] {
	return sl.rows("id ASC")
}

// Backward reads the rows in reverse id order with a single query.
func (sl *Sequence[T]) Backward() iter.Seq2[T, error] {
	return sl.rows("id DESC")
}

func (sl *Sequence[T]) rows(order string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		rows, err := squirrel.Select("data").From(table).OrderBy(order).RunWith(sl.db).Query()
		if err != nil {
			yield(zero, errors.Wrap(err, "sqlite/query: failed to init rows"))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var data []byte
			if err := rows.Scan(&data); err != nil {
				yield(zero, errors.Wrap(err, "sqlite/query: failed to scan data"))
				return
			}

			v, err := sl.decode(data)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(zero, errors.Wrap(err, "sqlite/query: failed to read rows"))
		}
	}
}
