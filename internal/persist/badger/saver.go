// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/seqview/internal/persist"
)

func (s *BadgerSaver) key(k persist.Key) []byte {
	if len(s.prefix) == 0 {
		return k
	}
	full := make([]byte, 0, len(s.prefix)+len(k))
	full = append(full, s.prefix...)
	return append(full, k...)
}

func (s *BadgerSaver) Put(key persist.Key, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key(key), data)
	})
}

func (s *BadgerSaver) PutAll(pairs []persist.Pair) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for i, p := range pairs {
			if err := txn.Set(s.key(p.Key), p.Data); err != nil {
				return errors.Wrapf(err, "persist/badger: failed to set pair #%d", i)
			}
		}
		return nil
	})
}

func (s *BadgerSaver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		it, err := txn.Get(s.key(key))
		if err != nil {
			return err
		}
		data, err = it.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, persist.ErrNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "persist/badger: get failed")
	}

	if len(data) == 0 {
		return nil, persist.ErrNotFound
	}

	return data, nil
}

func (s *BadgerSaver) List() ([]persist.Key, error) {
	var keys []persist.Key

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = s.prefix
		iter := txn.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			k := iter.Item().KeyCopy(nil)
			keys = append(keys, persist.Key(k[len(s.prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
