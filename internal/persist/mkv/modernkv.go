// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package mkv

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"modernc.org/kv"

	"github.com/ssbc/seqview/internal/persist"
)

type ModernSaver struct {
	db *kv.DB
}

var _ persist.Saver = (*ModernSaver)(nil)

func (sl *ModernSaver) Close() error {
	return sl.db.Close()
}

// New opens the kv file at path, creating it if it doesn't exist.
func New(path string) (*ModernSaver, error) {
	var ms ModernSaver

	opts := &kv.Options{}
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, errors.Wrap(err, "failed to create path location")
		}
		ms.db, err = kv.Create(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create KV")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to stat path location")
	} else {
		ms.db, err = kv.Open(path, opts)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open KV")
		}
	}

	return &ms, nil
}
