// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package test holds the tests every sequence backend has to pass when viewed.
// Backends register themselves from their own test package, see Register.
package test // import "github.com/ssbc/seqview/test"

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/seqview"
)

// Log is a sequence of ints that can be appended to.
type Log interface {
	seqview.Sequence[int]

	Append(int) (int, error)
}

// NewLogFunc creates an empty Log. name is unique per test and can be used as a file name.
type NewLogFunc func(name string) (Log, error)

func SequenceTest(f NewLogFunc) func(*testing.T) {
	return func(t *testing.T) {
		t.Run("Get", LogTestGet(f))
		t.Run("Slice", LogTestSlice(f))
		t.Run("Lookup", LogTestLookup(f))
		t.Run("Iterate", LogTestIterate(f))
		t.Run("Compare", LogTestCompare(f))
		t.Run("Query", LogTestQuery(f))
		t.Run("Concurrent", LogTestConcurrent(f))
	}
}

// makeLog creates a log through f, fills it with values and removes it again when the test is done.
func makeLog(t *testing.T, f NewLogFunc, values ...int) Log {
	r := require.New(t)

	log, err := f(t.Name())
	r.NoError(err, "error creating log")
	r.NotNil(log, "returned log is nil")

	t.Cleanup(func() {
		if c, ok := log.(io.Closer); ok {
			c.Close()
		}
		if namer, ok := log.(interface{ FileName() string }); ok {
			os.RemoveAll(namer.FileName())
		}
	})

	for i, v := range values {
		seq, err := log.Append(v)
		r.NoError(err, "error appending to log")
		r.Equal(i, seq, "sequence missmatch")
	}
	return log
}

func makeView(t *testing.T, f NewLogFunc, values ...int) (Log, *seqview.View[int]) {
	log := makeLog(t, f, values...)
	v, err := seqview.New[int](log)
	require.NoError(t, err, "error creating view")
	return log, v
}
