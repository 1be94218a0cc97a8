// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

//go:build !lite
// +build !lite

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// BadgerOpts are the options New opens a database with.
// Badger's own logging is turned off, errors are returned instead.
func BadgerOpts(dbPath string) badger.Options {
	return badger.DefaultOptions(dbPath).
		WithLogger(nil)
}
