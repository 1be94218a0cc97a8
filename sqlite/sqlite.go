// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package sqlite stores a sequence in a sqlite table.
// Containment, lookups and counting are answered by the database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ssbc/seqview"
)

const table = "seqview_items"

const schemaVersion1 = `
CREATE TABLE IF NOT EXISTS seqview_items (
	id INTEGER PRIMARY KEY,
	data blob
);
CREATE INDEX IF NOT EXISTS seqview_items_data ON seqview_items(data);
PRAGMA user_version = 1;
`

// Sequence is a sequence stored in sqlite. Position i is the row with id i+1.
type Sequence[T comparable] struct {
	db *sql.DB
	c  seqview.Codec

	// last successfully read length, returned when counting fails
	n atomic.Int64
}

var (
	_ seqview.Sequence[int]   = (*Sequence[int])(nil)
	_ seqview.Iterable[int]   = (*Sequence[int])(nil)
	_ seqview.Reversible[int] = (*Sequence[int])(nil)
	_ seqview.Indexer[int]    = (*Sequence[int])(nil)
	_ seqview.Counter[int]    = (*Sequence[int])(nil)
)

// Open opens or creates the database at path. If path is a directory, the file seq.db inside it is used.
func Open[T comparable](path string, c seqview.Codec) (*Sequence[T], error) {
	s, err := os.Stat(path)
	if os.IsNotExist(err) {
		dir := filepath.Dir(path)
		if filepath.Ext(path) == "" {
			dir = path
			path = filepath.Join(path, "seq.db")
		}
		err = os.MkdirAll(dir, 0700)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create path location")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to stat path location")
	} else if s.IsDir() {
		path = filepath.Join(path, "seq.db")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite file: %s", path)
	}

	var version int
	err = db.QueryRow(`PRAGMA user_version`).Scan(&version)
	if err == sql.ErrNoRows || version == 0 { // new file
		if _, err := db.Exec(schemaVersion1); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "seqview/sqlite: failed to init schema v1")
		}
	} else if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "seqview/sqlite: schema version lookup failed %s", path)
	}

	seq := &Sequence[T]{
		db: db,
		c:  c,
	}
	if _, err := seq.count(); err != nil {
		db.Close()
		return nil, err
	}
	return seq, nil
}

// DB returns the underlying database handle.
func (sl *Sequence[T]) DB() *sql.DB { return sl.db }

func (sl *Sequence[T]) Close() error {
	return sl.db.Close()
}

func (sl *Sequence[T]) count() (int, error) {
	var cnt int64
	err := squirrel.Select("count(*)").From(table).RunWith(sl.db).QueryRow().Scan(&cnt)
	if err != nil {
		return 0, errors.Wrap(err, "sqlite/len: failed to count rows")
	}
	sl.n.Store(cnt)
	return int(cnt), nil
}

// Len counts the rows. If that fails the last known count is returned.
func (sl *Sequence[T]) Len() int {
	n, err := sl.count()
	if err != nil {
		return int(sl.n.Load())
	}
	return n
}

func (sl *Sequence[T]) At(i int) (T, error) {
	var zero T
	if i < 0 {
		return zero, &seqview.OutOfRangeError{Index: i, Len: sl.Len()}
	}

	var data []byte
	err := squirrel.Select("data").From(table).
		Where(squirrel.Eq{"id": i + 1}).
		RunWith(sl.db).QueryRow().Scan(&data)
	if err == sql.ErrNoRows {
		return zero, &seqview.OutOfRangeError{Index: i, Len: sl.Len()}
	} else if err != nil {
		return zero, errors.Wrapf(err, "sqlite/at(%d): failed to execute query", i)
	}

	return sl.decode(data)
}

func (sl *Sequence[T]) decode(data []byte) (T, error) {
	var zero T
	v, err := sl.c.Unmarshal(data)
	if err != nil {
		return zero, errors.Wrap(err, "sqlite: failed to decode value")
	}
	tv, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("sqlite: decoded %T, expected %T", v, zero)
	}
	return tv, nil
}

func (sl *Sequence[T]) encode(v T) ([]byte, error) {
	data, err := sl.c.Marshal(v)
	return data, errors.Wrap(err, "sqlite: failed to encode value")
}

// Append stores v as the new last element and returns its position.
func (sl *Sequence[T]) Append(v T) (int, error) {
	data, err := sl.encode(v)
	if err != nil {
		return -1, err
	}

	res, err := squirrel.Insert(table).Columns("data").Values(data).RunWith(sl.db).Exec()
	if err != nil {
		return -1, errors.Wrap(err, "sqlite/append: failed insert new value")
	}

	newID, err := res.LastInsertId()
	if err != nil {
		return -1, errors.Wrap(err, "sqlite/append: failed to establish ID")
	}
	sl.n.Store(newID)
	return int(newID - 1), nil
}

func (sl *Sequence[T]) Contains(v T) (bool, error) {
	data, err := sl.encode(v)
	if err != nil {
		return false, err
	}

	var one int
	err = squirrel.Select("1").From(table).
		Where(squirrel.Expr("data = ?", data)).Limit(1).
		RunWith(sl.db).QueryRow().Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, errors.Wrap(err, "sqlite/contains: failed to execute query")
	}
	return true, nil
}

func (sl *Sequence[T]) Index(v T, start, stop int) (int, error) {
	data, err := sl.encode(v)
	if err != nil {
		return -1, err
	}

	var id sql.NullInt64
	err = squirrel.Select("min(id)").From(table).
		Where(squirrel.And{
			squirrel.Expr("data = ?", data),
			squirrel.GtOrEq{"id": start + 1},
			squirrel.LtOrEq{"id": stop},
		}).
		RunWith(sl.db).QueryRow().Scan(&id)
	if err != nil {
		return -1, errors.Wrap(err, "sqlite/index: failed to execute query")
	}
	if !id.Valid {
		return -1, &seqview.NotFoundError{Value: v}
	}
	return int(id.Int64 - 1), nil
}

func (sl *Sequence[T]) Count(v T) (int, error) {
	data, err := sl.encode(v)
	if err != nil {
		return 0, err
	}

	var cnt int
	err = squirrel.Select("count(*)").From(table).
		Where(squirrel.Expr("data = ?", data)).
		RunWith(sl.db).QueryRow().Scan(&cnt)
	if err != nil {
		return 0, errors.Wrap(err, "sqlite/count: failed to execute query")
	}
	return cnt, nil
}

func (sl *Sequence[T]) String() string {
	return fmt.Sprintf("sqlite.Sequence(%d items)", sl.Len())
}
