// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test // import "github.com/ssbc/seqview/test"

import (
	"sort"
	"testing"
)

// NewLogFuncs holds every registered backend by name.
var NewLogFuncs map[string]NewLogFunc

func init() {
	NewLogFuncs = map[string]NewLogFunc{}
}

// Register makes a backend part of RunTests.
func Register(name string, f NewLogFunc) {
	NewLogFuncs[name] = f
}

// RunTests runs SequenceTest against every registered backend.
func RunTests(t *testing.T) {
	names := make([]string, 0, len(NewLogFuncs))
	for name := range NewLogFuncs {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		t.Skip("no backends registered")
	}

	for _, name := range names {
		t.Run(name, SequenceTest(NewLogFuncs[name]))
	}
}
