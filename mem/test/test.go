// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"github.com/ssbc/seqview/mem"
	stest "github.com/ssbc/seqview/test"
)

func init() {
	stest.Register("mem", func(string) (stest.Log, error) {
		return mem.New[int](), nil
	})
}
