// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

//go:build lite
// +build lite

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// BadgerOpts are the options New opens a database with.
// The lite build keeps tables and caches small, for constrained devices.
func BadgerOpts(dbPath string) badger.Options {
	return badger.DefaultOptions(dbPath).
		WithMemTableSize(1 << 24).
		WithValueLogFileSize(1 << 24).
		WithNumMemtables(4).
		WithNumLevelZeroTables(2).
		WithNumLevelZeroTablesStall(5).
		WithNumCompactors(2).
		WithIndexCacheSize(1 << 25).
		WithBlockCacheSize(1 << 25).
		WithLogger(nil)
}
