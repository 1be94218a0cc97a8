// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package mkv

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/seqview/internal/persist"
)

func (s *ModernSaver) Put(key persist.Key, data []byte) error {
	return s.db.Set(key, data)
}

func (s *ModernSaver) PutAll(pairs []persist.Pair) error {
	if err := s.db.BeginTransaction(); err != nil {
		return errors.Wrap(err, "persist/mkv: failed to begin transaction")
	}

	for i, p := range pairs {
		if err := s.db.Set(p.Key, p.Data); err != nil {
			if rerr := s.db.Rollback(); rerr != nil {
				return errors.Wrapf(rerr, "persist/mkv: rollback after failed set #%d (%s)", i, err)
			}
			return errors.Wrapf(err, "persist/mkv: failed to set pair #%d", i)
		}
	}

	return errors.Wrap(s.db.Commit(), "persist/mkv: failed to commit")
}

func (s *ModernSaver) Get(key persist.Key) ([]byte, error) {
	data, err := s.db.Get(nil, key)
	if err != nil {
		return nil, errors.Wrap(err, "persist/mkv: get failed")
	}
	if data == nil {
		return nil, persist.ErrNotFound
	}
	return data, nil
}

func (s *ModernSaver) List() ([]persist.Key, error) {
	var keys []persist.Key
	iter, err := s.db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return keys, nil
		}
		return nil, err
	}
	for {
		k, _, err := iter.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		keys = append(keys, k)
	}
	return keys, nil
}
