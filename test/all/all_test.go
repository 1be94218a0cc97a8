// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package all

import (
	"testing"

	stest "github.com/ssbc/seqview/test"
)

func TestSequences(t *testing.T) {
	stest.RunTests(t)
}
