// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/seqview/internal/persist"
)

type BadgerSaver struct {
	db *badger.DB

	// prefix is prepended to every key
	prefix []byte

	// shared savers don't own db
	shared bool
}

var _ persist.Saver = (*BadgerSaver)(nil)

// New opens the badger database at path.
func New(path string) (*BadgerSaver, error) {
	db, err := badger.Open(BadgerOpts(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create KV %s", path)
	}

	return &BadgerSaver{db: db}, nil
}

// NewShared returns a saver that keeps its keys under prefix in an already open db.
// Closing it does not close db.
func NewShared(db *badger.DB, prefix []byte) (*BadgerSaver, error) {
	if len(prefix) == 0 {
		return nil, errors.New("persist/badger: shared saver needs a prefix")
	}

	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &BadgerSaver{
		db:     db,
		prefix: p,
		shared: true,
	}, nil
}

func (s *BadgerSaver) Close() error {
	if s.shared {
		return nil
	}
	return s.db.Close()
}
